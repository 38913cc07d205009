package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/dynamo"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/metrics"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/proxy"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Service *proxy.Service
	Metrics *metrics.Metrics
	Logger  *zerolog.Logger
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	bedrockClient, err := bedrock.NewClient(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	dynamoClient, err := dynamo.NewClient(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	logger.Info().
		Str("region", cfg.AWSRegion).
		Str("model", bedrockClient.ModelID).
		Str("dynamodb_endpoint", cfg.DynamoDBEndpoint).
		Msg("AWS clients initialized")

	m := metrics.New()

	return &Dependencies{
		Service: proxy.NewService(bedrockClient, dynamoClient, m, logger),
		Metrics: m,
		Logger:  logger,
	}, nil
}
