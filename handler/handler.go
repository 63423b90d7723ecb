package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"burrito-bot/internal/domain"
	"burrito-bot/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

// Dialogue runs one inbound event through the bot.
type Dialogue interface {
	Handle(ctx context.Context, ev domain.Event, sink usecase.ReplySink) error
}

type eventResponse struct {
	ConversationID string   `json:"conversationId"`
	Replies        []string `json:"replies"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Replies []string `json:"replies,omitempty"`
}

// Handler adapts API Gateway webhook requests to the Dialogue.
type Handler struct {
	dialogue Dialogue
	sender   ReplySender
	validate *validator.Validate
	log      *slog.Logger
	botID    string
}

type Option func(*Handler)

// WithBotID sets the bot id applied to events that do not carry one.
func WithBotID(botID string) Option {
	return func(h *Handler) {
		h.botID = strings.TrimSpace(botID)
	}
}

// NewHandler builds a Handler. sender may be nil, in which case replies are
// only returned in the response body.
func NewHandler(dialogue Dialogue, sender ReplySender, log *slog.Logger, opts ...Option) (*Handler, error) {
	if dialogue == nil {
		return nil, errors.New("handler: dialogue must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		dialogue: dialogue,
		sender:   sender,
		validate: validator.New(),
		log:      log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	log := h.log.With("correlation_id", correlationID)

	ev, err := h.decodeEvent(req)
	if err != nil {
		log.Warn("rejected event", "err", err)
		return errorResponseFor(correlationID, http.StatusBadRequest, usecase.ErrorInvalidInput), nil
	}
	log = log.With("conversation_id", ev.ConversationID, "event_type", ev.Type)

	sink := &collectingSink{conversationID: ev.ConversationID, sender: h.sender, replies: []string{}}
	if err := h.dialogue.Handle(ctx, ev, sink); err != nil {
		status, code := statusFor(err)
		log.Error("event handling failed", "err", err, "status", status)
		// The apology must reach the caller even when no sender is configured.
		return jsonResponse(correlationID, status, errorResponse{Error: string(code), Replies: sink.replies}), nil
	}

	log.Info("event handled", "replies", len(sink.replies))
	return jsonResponse(correlationID, http.StatusOK, eventResponse{
		ConversationID: ev.ConversationID,
		Replies:        sink.replies,
	}), nil
}

func (h *Handler) decodeEvent(req events.APIGatewayProxyRequest) (domain.Event, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return domain.Event{}, err
		}
		body = decoded
	}

	var ev domain.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return domain.Event{}, err
	}
	if err := h.validate.Struct(ev); err != nil {
		return domain.Event{}, err
	}
	if ev.BotID == "" {
		ev.BotID = h.botID
	}
	return ev, nil
}

// collectingSink keeps every reply for the response body and forwards it to
// the connector when one is configured.
type collectingSink struct {
	conversationID string
	sender         ReplySender
	replies        []string
}

func (s *collectingSink) Send(ctx context.Context, text string) error {
	if s.sender != nil {
		if err := s.sender.SendReply(ctx, s.conversationID, text); err != nil {
			return err
		}
	}
	s.replies = append(s.replies, text)
	return nil
}

func statusFor(err error) (int, usecase.ErrorCode) {
	var uerr *usecase.Error
	if errors.As(err, &uerr) && uerr.Code == usecase.ErrorInvalidInput {
		return http.StatusBadRequest, usecase.ErrorInvalidInput
	}
	return http.StatusInternalServerError, usecase.ErrorInternal
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func errorResponseFor(correlationID string, status int, code usecase.ErrorCode) events.APIGatewayProxyResponse {
	return jsonResponse(correlationID, status, errorResponse{Error: string(code)})
}

func jsonResponse(correlationID string, status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(body),
	}
}
