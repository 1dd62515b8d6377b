package controllers

import (
	"context"
	"errors"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/Kubica-10/contador-historias-api/infrastructure/adapters"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubStoryGenerator struct {
	res   domain.StoryResponse
	err   error
	calls int
}

func (s *stubStoryGenerator) Generate(_ context.Context, _ domain.StoryRequest) (domain.StoryResponse, error) {
	s.calls++
	return s.res, s.err
}

type stubAudioSynthesizer struct {
	res   domain.AudioResponse
	err   error
	calls int
}

func (s *stubAudioSynthesizer) Synthesize(_ context.Context, _ domain.AudioRequest) (domain.AudioResponse, error) {
	s.calls++
	return s.res, s.err
}

func newTestEngine(story *stubStoryGenerator, audio *stubAudioSynthesizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := adapters.NewZerologWrapper()
	engine := gin.New()
	NewStoryController(logger, story).RegisterRoutes(engine)
	NewAudioController(logger, audio).RegisterRoutes(engine)
	NewHealthController().RegisterRoutes(engine)
	return engine
}

func perform(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestStatusFor(t *testing.T) {
	tests := map[domain.ErrorKind]int{
		domain.InvalidInputKind:              http.StatusUnprocessableEntity,
		domain.ConfigurationKind:             http.StatusInternalServerError,
		domain.CredentialRejectedKind:        http.StatusForbidden,
		domain.TransportFailureKind:          http.StatusBadGateway,
		domain.MalformedUpstreamResponseKind: http.StatusInternalServerError,
		domain.UpstreamStatusKind:            http.StatusInternalServerError,
		domain.ServiceBusyKind:               http.StatusServiceUnavailable,
		domain.UnexpectedFailureKind:         http.StatusInternalServerError,
		domain.ErrorKind("unknown"):          http.StatusInternalServerError,
	}

	for kind, status := range tests {
		assert.Equal(t, status, StatusFor(kind), kind)
	}
}

func TestStoryController_GenerateStory(t *testing.T) {
	story := &stubStoryGenerator{res: domain.StoryResponse{StoryText: "Era uma vez..."}}
	engine := newTestEngine(story, &stubAudioSynthesizer{})

	w := perform(engine, http.MethodPost, "/gerar_historia", `{"query": "um dragão medroso"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"story_text": "Era uma vez..."}`, w.Body.String())
}

func TestStoryController_BadBody(t *testing.T) {
	tests := map[string]string{
		"not json":      `query=dragon`,
		"missing field": `{}`,
		"empty query":   `{"query": ""}`,
		"wrong type":    `{"query": 42}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			story := &stubStoryGenerator{}
			engine := newTestEngine(story, &stubAudioSynthesizer{})

			w := perform(engine, http.MethodPost, "/gerar_historia", body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), `"detail"`)
			assert.Zero(t, story.calls)
		})
	}
}

func TestStoryController_ConfigurationError(t *testing.T) {
	story := &stubStoryGenerator{err: domain.NewConfigurationError("GROQ_API_KEY")}
	engine := newTestEngine(story, &stubAudioSynthesizer{})

	w := perform(engine, http.MethodPost, "/gerar_historia", `{"query": "dragão"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail": "GROQ_API_KEY is not configured"}`, w.Body.String())
}

func TestAudioController_GenerateAudio(t *testing.T) {
	audio := &stubAudioSynthesizer{res: domain.AudioResponse{AudioBase64: "QUJD", MimeType: "audio/L16;rate=24000"}}
	engine := newTestEngine(&stubStoryGenerator{}, audio)

	w := perform(engine, http.MethodPost, "/gerar_audio", `{"text_to_speak": "hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"audio_base64": "QUJD", "mime_type": "audio/L16;rate=24000"}`, w.Body.String())
}

func TestAudioController_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"configuration", domain.NewConfigurationError("GEMINI_API_KEY"), http.StatusInternalServerError},
		{"credential rejected", domain.NewCredentialRejectedError("Gemini", nil), http.StatusForbidden},
		{"transport", domain.NewTransportFailureError(errors.New("connection refused")), http.StatusBadGateway},
		{"malformed", domain.NewMalformedUpstreamResponseError(errors.New("missing field inlineData.data")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audio := &stubAudioSynthesizer{err: tt.err}
			engine := newTestEngine(&stubStoryGenerator{}, audio)

			w := perform(engine, http.MethodPost, "/gerar_audio", `{"text_to_speak": "hello"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"detail"`)
		})
	}
}

func TestHealthController_Health(t *testing.T) {
	engine := newTestEngine(&stubStoryGenerator{}, &stubAudioSynthesizer{})

	w := perform(engine, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "Contador de Histórias AI está no ar!"}`, w.Body.String())
}
