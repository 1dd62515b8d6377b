package adapters

import (
	"context"
	"encoding/json"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

const speechSuccessBody = `{"candidates":[{"content":{"parts":[{"inlineData":{"data":"QUJD","mimeType":"audio/L16;rate=24000"}}]}}]}`

func newSpeechGenerator(t *testing.T, handler http.HandlerFunc) outbound.SpeechGeneratorPort {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := NewZerologWrapper()
	return NewGeminiSpeechGenerator(
		NewContentFetcher(logger, time.Second),
		&config.GeminiConfig{ApiUrl: server.URL + "/v1beta", Timeout: time.Second},
		logger,
	)
}

func TestGeminiSpeechGenerator_Generate(t *testing.T) {
	var received geminiSpeechRequest
	generator := newSpeechGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/"+SpeechModel+":generateContent", r.URL.Path)
		assert.Equal(t, "gemini-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(speechSuccessBody))
	})

	payload, err := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{
		ApiKey: "gemini-key",
		Prompt: "Say in a gentle children's storyteller voice: hello",
	}).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.SpeechPayload{Data: "QUJD", MimeType: "audio/L16;rate=24000"}, payload)

	require.Len(t, received.Contents, 1)
	require.Len(t, received.Contents[0].Parts, 1)
	assert.Equal(t, "Say in a gentle children's storyteller voice: hello", received.Contents[0].Parts[0].Text)
	assert.Equal(t, []string{"AUDIO"}, received.GenerationConfig.ResponseModalities)
	assert.Equal(t, SpeechVoice, received.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
	assert.Equal(t, SpeechModel, received.Model)
}

func TestGeminiSpeechGenerator_MalformedResponses(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "no candidates", body: `{"candidates":[]}`, field: "candidates"},
		{name: "no content", body: `{"candidates":[{}]}`, field: "candidates[0].content.parts"},
		{name: "no parts", body: `{"candidates":[{"content":{"parts":[]}}]}`, field: "candidates[0].content.parts"},
		{name: "text only", body: `{"candidates":[{"content":{"parts":[{"text":"hi"}]}}]}`, field: "inlineData"},
		{name: "no data", body: `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16"}}]}}]}`, field: "inlineData.data"},
		{name: "no mime type", body: `{"candidates":[{"content":{"parts":[{"inlineData":{"data":"QUJD"}}]}}]}`, field: "inlineData.mimeType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := newSpeechGenerator(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			res := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{ApiKey: "gemini-key", Prompt: "hello"})
			require.True(t, res.IsError())

			var malformed *domain.MalformedResponseError
			require.ErrorAs(t, res.Error(), &malformed)
			assert.Equal(t, tt.field, malformed.Field)
		})
	}
}

func TestGeminiSpeechGenerator_InvalidJSON(t *testing.T) {
	generator := newSpeechGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	res := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{ApiKey: "gemini-key", Prompt: "hello"})

	var malformed *domain.MalformedResponseError
	require.ErrorAs(t, res.Error(), &malformed)
	assert.Error(t, malformed.Err)
}

func TestGeminiSpeechGenerator_Forbidden(t *testing.T) {
	generator := newSpeechGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid.","status":"PERMISSION_DENIED"}}`))
	})

	res := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{ApiKey: "bad-key", Prompt: "hello"})

	var rejected *domain.UpstreamRejectedError
	require.ErrorAs(t, res.Error(), &rejected)
	assert.Equal(t, http.StatusForbidden, rejected.Status)
}

func TestGeminiSpeechGenerator_InvalidApiUrl(t *testing.T) {
	logger := NewZerologWrapper()
	generator := NewGeminiSpeechGenerator(
		NewContentFetcher(logger, time.Second),
		&config.GeminiConfig{ApiUrl: "://bad", Timeout: time.Second},
		logger,
	)

	res := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{ApiKey: "secret-key", Prompt: "hello"})
	require.True(t, res.IsError())

	var urlErr *url.Error
	require.ErrorAs(t, res.Error(), &urlErr)
	assert.Equal(t, "://bad", urlErr.URL)
	assert.NotContains(t, res.Error().Error(), "secret-key")
}
