package inbound

import (
	"context"
	"github.com/Kubica-10/contador-historias-api/domain"
)

type StoryGeneratorPort interface {
	Generate(ctx context.Context, req domain.StoryRequest) (domain.StoryResponse, error)
}
