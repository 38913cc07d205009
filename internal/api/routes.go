package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/metrics"
)

// NewContainer installs the request filters and registers the routes.
// Metrics runs outside RecoverPanic so recovered 500s are counted.
func NewContainer(handler *Handler, m *metrics.Metrics) *restful.Container {
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.Metrics(m))
	container.Filter(middleware.RecoverPanic)

	RegisterRoutes(container, handler)

	return container
}

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		// Any Accept header gets JSON; clients never see 406.
		Produces(restful.MIME_JSON, "*/*")

	ws.
		Route(ws.GET("/").
			To(handler.Root).
			Doc("Greeting").
			Metadata(restfulspec.KeyOpenAPITags, []string{"root"}).
			Writes(MessageResponse{}).
			Returns(200, "OK", MessageResponse{}))

	ws.
		Route(ws.GET("/generate").
			To(handler.Generate).
			Doc("Generate text with Amazon Titan. Failures return 200 with an error body").
			Metadata(restfulspec.KeyOpenAPITags, []string{"bedrock"}).
			Param(ws.QueryParameter("prompt", "Input text (default: Hello Bedrock)").DataType("string").Required(false)).
			Writes(GenerateResponse{}).
			Returns(200, "OK", GenerateResponse{}))

	ws.
		Route(ws.GET("/db-test").
			To(handler.ListTables).
			Doc("List DynamoDB tables. Failures return 200 with an error body").
			Metadata(restfulspec.KeyOpenAPITags, []string{"dynamodb"}).
			Writes(TablesResponse{}).
			Returns(200, "OK", TablesResponse{}))

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	container.Add(ws)
}
