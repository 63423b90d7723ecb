package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"burrito-bot/handler"
	"burrito-bot/internal/command"
	"burrito-bot/internal/config"
	"burrito-bot/internal/integrations/chatapi"
	"burrito-bot/internal/integrations/paramstore"
	"burrito-bot/internal/repository"
	"burrito-bot/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	log := cfg.JSONLogger(os.Stdout)
	slog.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		log.Error("failed to load timezone", "err", err)
		os.Exit(1)
	}

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	store, err := newStore(cfg, awsCfg, log)
	if err != nil {
		log.Error("failed to create conversation store", "backend", cfg.StoreBackend, "err", err)
		os.Exit(1)
	}

	var sender handler.ReplySender
	if cfg.ConnectorBaseURL != "" {
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			log.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		connector, err := chatapi.NewClient(ssmClient, cfg.ConnectorBaseURL, cfg.ParamPrefix)
		if err != nil {
			log.Error("failed to create connector client", "err", err)
			os.Exit(1)
		}
		sender = connector
	}

	// ---- Handler ----
	parser, err := command.NewParser()
	if err != nil {
		log.Error("failed to build command parser", "err", err)
		os.Exit(1)
	}
	service, err := usecase.NewBurritoService(store, parser,
		usecase.WithLogger(log),
		usecase.WithLocation(loc),
	)
	if err != nil {
		log.Error("failed to create burrito service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(service, sender, log, handler.WithBotID(cfg.BotID))
	if err != nil {
		log.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	log.Info("burrito bot ready", "backend", cfg.StoreBackend, "push_replies", sender != nil)
	lambda.Start(h.Handle)
}

func newStore(cfg config.Config, awsCfg aws.Config, log *slog.Logger) (usecase.ConversationStore, error) {
	switch cfg.StoreBackend {
	case config.BackendDynamoDB:
		return repository.NewDynamoStore(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable)
	case config.BackendBadger:
		db, err := repository.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		return repository.NewBadgerStore(db, log)
	default:
		return repository.NewMemoryStore(), nil
	}
}
