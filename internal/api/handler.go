package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/proxy"
	"github.com/rs/zerolog"
)

const Greeting = "Hello from FastAPI with Bedrock and DynamoDB!"

type Handler struct {
	service *proxy.Service
	logger  *zerolog.Logger
}

func NewHandler(service *proxy.Service, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, MessageResponse{Message: Greeting})
}

// GET /generate?prompt=...
// Upstream failures are reported in the body with status 200.
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	prompt := proxy.DefaultPrompt
	if values, ok := req.Request.URL.Query()["prompt"]; ok && len(values) > 0 {
		prompt = values[0]
	}

	h.logger.Debug().Int("prompt_length", len(prompt)).Msg("Generate text")

	result := h.service.Generate(req.Request.Context(), prompt)
	if result.Failed {
		resp.WriteHeaderAndEntity(http.StatusOK, middleware.ErrorResponse{Error: result.ErrMsg})
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, GenerateResponse{Response: result.Value})
}

// GET /db-test
// Upstream failures are reported in the body with status 200.
func (h *Handler) ListTables(req *restful.Request, resp *restful.Response) {
	result := h.service.ListTables(req.Request.Context())
	if result.Failed {
		resp.WriteHeaderAndEntity(http.StatusOK, middleware.ErrorResponse{Error: result.ErrMsg})
		return
	}

	h.logger.Debug().Int("count", len(result.Value)).Msg("Listed tables")

	resp.WriteHeaderAndEntity(http.StatusOK, TablesResponse{Tables: result.Value})
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
