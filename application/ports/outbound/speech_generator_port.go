package outbound

import (
	"context"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/samber/mo"
)

type GenerateSpeechRequest struct {
	ApiKey string
	Prompt string
}

// SpeechGeneratorPort fails with *domain.UpstreamRejectedError, *domain.TransportFailureError
// or *domain.MalformedResponseError.
type SpeechGeneratorPort interface {
	Generate(ctx context.Context, req GenerateSpeechRequest) mo.Result[domain.SpeechPayload]
}
