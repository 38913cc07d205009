package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/llm"
)

// Titan text request format (what Bedrock expects)
type titanTextRequest struct {
	InputText            string               `json:"inputText"`
	TextGenerationConfig textGenerationConfig `json:"textGenerationConfig"`
}

type textGenerationConfig struct {
	MaxTokenCount int     `json:"maxTokenCount"`
	Temperature   float64 `json:"temperature"`
}

func (c *Client) InvokeModel(ctx context.Context, request llm.TextRequest) (*llm.TextResponse, error) {
	payload := titanTextRequest{
		InputText: request.Prompt,
		TextGenerationConfig: textGenerationConfig{
			MaxTokenCount: request.MaxTokens,
			Temperature:   request.Temperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal titan request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	// Body is handed back verbatim
	return &llm.TextResponse{
		Body: string(output.Body),
	}, nil
}
