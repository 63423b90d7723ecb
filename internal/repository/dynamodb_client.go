package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"burrito-bot/internal/domain"
)

const skState = "STATE#"

// dynamodbAPI is the minimal DynamoDB interface required by DynamoStore.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore persists one item per conversation in a DynamoDB table keyed by
// PK/SK.
//
// TODO: split awards into AWARD# items before a ledger nears the 400KB item limit.
type DynamoStore struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

// NewDynamoStore creates a DynamoStore backed by tableName.
func NewDynamoStore(api dynamodbAPI, tableName string) (*DynamoStore, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &DynamoStore{api: api, tableName: tableName, now: time.Now}, nil
}

// convPK returns the DynamoDB partition key for a conversation.
func convPK(conversationID string) string {
	return "CONV#" + conversationID
}

// Get loads the state of conversationID. A missing item yields a fresh
// state; it is written on the first Save.
func (c *DynamoStore) Get(ctx context.Context, conversationID string) (*domain.ConversationState, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: convPK(conversationID)},
			"SK": &types.AttributeValueMemberS{Value: skState},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: Get get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.NewConversationState(conversationID), nil
	}

	raw, err := strAttr(out.Item, "state")
	if err != nil {
		return nil, fmt.Errorf("repository: Get: %w", err)
	}
	state, err := decodeState(conversationID, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("repository: Get: %w", err)
	}
	return state, nil
}

// Save writes or replaces the conversation item.
func (c *DynamoStore) Save(ctx context.Context, state *domain.ConversationState) error {
	if state == nil || state.ConversationID == "" {
		return errors.New("repository: Save: conversation id is required")
	}
	raw, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("repository: Save: %w", err)
	}
	_, err = c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      stateItem(state, raw, c.now()),
	})
	if err != nil {
		return fmt.Errorf("repository: Save: %w", err)
	}
	return nil
}

func stateItem(state *domain.ConversationState, raw []byte, at time.Time) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":             &types.AttributeValueMemberS{Value: convPK(state.ConversationID)},
		"SK":             &types.AttributeValueMemberS{Value: skState},
		"conversationId": &types.AttributeValueMemberS{Value: state.ConversationID},
		"state":          &types.AttributeValueMemberS{Value: string(raw)},
		"awards":         &types.AttributeValueMemberN{Value: strconv.Itoa(len(state.Awards))},
		"admins":         &types.AttributeValueMemberN{Value: strconv.Itoa(len(state.Admins))},
		"updatedAt":      &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
	}
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

