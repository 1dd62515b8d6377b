package inbound

import (
	"context"
	"github.com/Kubica-10/contador-historias-api/domain"
)

type AudioSynthesizerPort interface {
	Synthesize(ctx context.Context, req domain.AudioRequest) (domain.AudioResponse, error)
}
