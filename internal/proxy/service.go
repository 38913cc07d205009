package proxy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/llm"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/metrics"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	DefaultPrompt = "Hello Bedrock"

	// Generation parameters are fixed; callers only control the prompt.
	MaxTokenCount = 50
	Temperature   = 0.7
)

// Operation names used for logs and metrics.
const (
	OpGenerate   = "generate"
	OpListTables = "list_tables"
)

type InferenceClient interface {
	InvokeModel(ctx context.Context, request llm.TextRequest) (*llm.TextResponse, error)
}

type TableLister interface {
	ListTableNames(ctx context.Context) ([]string, error)
}

type Service struct {
	inference InferenceClient
	tables    TableLister
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
}

func NewService(inference InferenceClient, tables TableLister, m *metrics.Metrics, logger *zerolog.Logger) *Service {
	return &Service{
		inference: inference,
		tables:    tables,
		metrics:   m,
		logger:    logger,
	}
}

// Generate sends prompt to the inference endpoint and returns the provider
// body as text, unparsed.
func (s *Service) Generate(ctx context.Context, prompt string) Result[string] {
	return call(s, OpGenerate, func() (string, error) {
		resp, err := s.inference.InvokeModel(ctx, llm.TextRequest{
			Prompt:      prompt,
			MaxTokens:   MaxTokenCount,
			Temperature: Temperature,
		})
		if err != nil {
			return "", err
		}
		if resp == nil {
			return "", errors.New("empty response from inference endpoint")
		}
		return resp.Body, nil
	})
}

// ListTables returns every table name in the order the database reports.
func (s *Service) ListTables(ctx context.Context) Result[[]string] {
	return call(s, OpListTables, func() ([]string, error) {
		names, err := s.tables.ListTableNames(ctx)
		if err != nil {
			return nil, err
		}
		if names == nil {
			names = []string{}
		}
		return names, nil
	})
}

// call runs fn and turns any error, including a panic, into a failed Result.
func call[T any](s *Service, operation string, fn func() (T, error)) (result Result[T]) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Fail[T](fmt.Errorf("%v", r))
		}

		outcome := metrics.OutcomeSuccess
		if result.Failed {
			outcome = metrics.OutcomeError
			s.logger.Warn().
				Str("operation", operation).
				Str("error", result.ErrMsg).
				Msg("Upstream call failed")
		}

		if s.metrics != nil {
			s.metrics.ObserveUpstream(operation, outcome, time.Since(start))
		}
	}()

	value, err := fn()
	if err != nil {
		return Fail[T](err)
	}

	return Ok(value)
}
