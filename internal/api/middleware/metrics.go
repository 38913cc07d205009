package middleware

import (
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/metrics"
)

// Metrics records request counts and latency labelled by the matched route.
func Metrics(m *metrics.Metrics) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()

		chain.ProcessFilter(req, resp)

		route := req.SelectedRoutePath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, resp.StatusCode(), time.Since(start))
	}
}
