package chatapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeGetter decodes a canned JSON value, mirroring paramstore.Client.GetJSON.
type fakeGetter struct {
	val   string
	err   error
	calls int
	names []string
}

func (f *fakeGetter) GetJSON(_ context.Context, name string, v any) error {
	f.calls++
	f.names = append(f.names, name)
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.val), v)
}

func newTestClient(t *testing.T, srv *httptest.Server) (*Client, *fakeGetter) {
	t.Helper()
	g := &fakeGetter{val: `{"token":"bot-secret"}`}
	c, err := NewClient(g, srv.URL, "/burrito-bot/", WithHTTPClient(&http.Client{Timeout: 2 * time.Second}))
	require.NoError(t, err)
	return c, g
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(nil, "http://localhost", "/burrito-bot")
	require.ErrorContains(t, err, "nil")

	_, err = NewClient(&fakeGetter{}, " ", "/burrito-bot")
	require.ErrorContains(t, err, "base URL")

	_, err = NewClient(&fakeGetter{}, "http://localhost", "")
	require.ErrorContains(t, err, "prefix")
}

func TestActivitiesURL(t *testing.T) {
	cases := []struct {
		base string
		conv string
		want string
	}{
		{"https://smba.example.com", "conv-1", "https://smba.example.com/v3/conversations/conv-1/activities"},
		{"https://smba.example.com/", "conv-1", "https://smba.example.com/v3/conversations/conv-1/activities"},
		{"http://localhost:8080", "19:abc@thread.v2", "http://localhost:8080/v3/conversations/19:abc@thread.v2/activities"},
		{"http://localhost:8080", "a/b", "http://localhost:8080/v3/conversations/a%2Fb/activities"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, activitiesURL(tc.base, tc.conv), "base=%q conv=%q", tc.base, tc.conv)
	}
}

func TestSendReply_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v3/conversations/conv-1/activities", r.URL.Path)
		require.Equal(t, "Bearer bot-secret", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"message","text":"🌯 Alex gave 1 burrito to Sam!"}`, string(raw))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"activity-1"}`))
	}))
	defer srv.Close()

	c, g := newTestClient(t, srv)
	require.NoError(t, c.SendReply(context.Background(), "conv-1", "🌯 Alex gave 1 burrito to Sam!"))
	require.Equal(t, []string{"/burrito-bot/bot-token"}, g.names)
}

func TestSendReply_TokenFetchedOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, g := newTestClient(t, srv)
	for i := 0; i < 3; i++ {
		require.NoError(t, c.SendReply(context.Background(), "conv-1", "hi"))
	}
	require.Equal(t, 1, g.calls, "the parameter store must only be read once per process lifetime")
}

func TestSendReply_TokenErrors(t *testing.T) {
	cases := []struct {
		name   string
		getter *fakeGetter
		want   string
	}{
		{name: "getter error", getter: &fakeGetter{err: errors.New("ssm unavailable")}, want: "ssm unavailable"},
		{name: "empty token", getter: &fakeGetter{val: `{"other":"value"}`}, want: "token is empty"},
		{name: "malformed", getter: &fakeGetter{val: `{"broken`}, want: "fetch bot token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewClient(tc.getter, "http://127.0.0.1:1", "/burrito-bot")
			require.NoError(t, err)

			err = c.SendReply(context.Background(), "conv-1", "hi")
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestSendReply_Non2xx(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			c, _ := newTestClient(t, srv)
			err := c.SendReply(context.Background(), "conv-1", "hi")

			var statusErr *HTTPStatusError
			require.ErrorAs(t, err, &statusErr)
			require.Equal(t, status, statusErr.HTTPStatusCode())
			require.Contains(t, statusErr.Body, "nope")
			require.Contains(t, err.Error(), "unexpected status")
		})
	}
}

func TestSendReply_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	require.Error(t, c.SendReply(context.Background(), "conv-1", "hi"))
}

func TestSendReply_NetworkError(t *testing.T) {
	c, err := NewClient(&fakeGetter{val: `{"token":"bot-secret"}`}, "http://127.0.0.1:1", "/burrito-bot",
		WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}))
	require.NoError(t, err)

	err = c.SendReply(context.Background(), "conv-1", "hi")
	require.ErrorContains(t, err, "request failed")
}

func TestSendReply_EmptyConversation(t *testing.T) {
	c, err := NewClient(&fakeGetter{val: `{"token":"bot-secret"}`}, "http://localhost", "/burrito-bot")
	require.NoError(t, err)
	require.ErrorContains(t, c.SendReply(context.Background(), " ", "hi"), "conversation id")
}
