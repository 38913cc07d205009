package llm

// TextRequest is a single text generation call.
type TextRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// TextResponse carries the provider body decoded as text. It is not parsed.
type TextResponse struct {
	Body string
}
