//go:generate go run go.uber.org/mock/mockgen -source=sender.go -destination=../internal/mocks/mock_sender.go -package=mocks
package handler

import "context"

// ReplySender pushes a reply into a conversation through the chat connector.
type ReplySender interface {
	SendReply(ctx context.Context, conversationID, text string) error
}
