package services

import (
	"context"
	"github.com/Kubica-10/contador-historias-api/application/ports/inbound"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"strings"
)

const (
	StoryModel       = "llama-3.3-70b-versatile"
	StoryTemperature = 0.9

	logInputLength = 80
)

const storySystemPrompt = "Você é um contador de histórias infantis. Sua voz é gentil, mágica e cativante.\n" +
	"Sua missão é criar uma história infantil curta (máximo 10 parágrafos) baseada no tema do usuário.\n" +
	"REGRAS:\n" +
	"1. A história deve ser 100% segura para crianças (sem violência, sem temas assustadores).\n" +
	"2. A história deve ter uma moral ou lição positiva no final.\n" +
	"3. Use linguagem simples e descritiva que uma criança possa entender.\n" +
	"4. NÃO inclua títulos, apenas comece a história (ex: 'Era uma vez...')."

type storyGenerator struct {
	logger         outbound.LoggerPort
	credentials    *config.Credentials
	chatCompletion outbound.ChatCompletionPort
	workerPool     outbound.TaskDispatcher
}

func NewStoryGenerator(logger outbound.LoggerPort, credentials *config.Credentials,
	chatCompletion outbound.ChatCompletionPort, workerPool outbound.TaskDispatcher) inbound.StoryGeneratorPort {
	return &storyGenerator{
		logger:         logger,
		credentials:    credentials,
		chatCompletion: chatCompletion,
		workerPool:     workerPool,
	}
}

func (s *storyGenerator) Generate(ctx context.Context, req domain.StoryRequest) (domain.StoryResponse, error) {
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		return domain.StoryResponse{}, domain.NewInvalidInputError("query must not be empty")
	}

	apiKey, err := s.credentials.RequireChatCompletionKey()
	if err != nil {
		s.logger.Error(err, "Story generation is not configured")
		return domain.StoryResponse{}, err
	}

	fields := map[string]any{
		"theme": lo.Ellipsis(theme, logInputLength),
		"model": StoryModel,
	}
	s.logger.InfoWithFields("Generating story", fields)

	res := runOnPool(ctx, s.workerPool, func(ctx context.Context) mo.Result[string] {
		return mo.TupleToResult(s.chatCompletion.Complete(ctx, outbound.ChatCompletionRequest{
			ApiKey:       apiKey,
			Model:        StoryModel,
			Temperature:  StoryTemperature,
			SystemPrompt: storySystemPrompt,
			UserPrompt:   "O tema da história é: " + theme,
		}))
	})

	storyText, err := res.Get()
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to generate story", fields)
		if domain.KindOf(err) == domain.ServiceBusyKind {
			return domain.StoryResponse{}, err
		}
		return domain.StoryResponse{}, domain.NewUnexpectedFailureError("failed to generate story", err)
	}

	return domain.StoryResponse{StoryText: storyText}, nil
}
