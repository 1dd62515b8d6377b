package outbound

import "context"

type ChatCompletionRequest struct {
	ApiKey       string
	Model        string
	Temperature  float32
	SystemPrompt string
	UserPrompt   string
}

type ChatCompletionPort interface {
	Complete(ctx context.Context, req ChatCompletionRequest) (string, error)
}
