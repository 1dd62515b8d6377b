package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/Kubica-10/contador-historias-api/application/services"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/Kubica-10/contador-historias-api/infrastructure/adapters"
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface"
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface/controllers"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func newRootCommand() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:          "contador-historias-api",
		Short:        "Serves children's stories and their narration generated by Groq and Gemini",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("host") {
				conf.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				if err := config.ValidatePort(port); err != nil {
					return err
				}
				conf.Server.Port = port
			}

			return run(cmd.Context(), conf)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "interface to listen on, overrides HOST")
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on, overrides PORT")

	return cmd
}

func run(ctx context.Context, conf *config.Config) error {
	if err := adapters.SetLogLevel(conf.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zeroLogger := adapters.NewZerologWrapper()

	if conf.Credentials.ChatCompletionKey == "" {
		zeroLogger.Warn(config.GroqApiKeyEnv + " is not set, /gerar_historia will answer with a configuration error")
	}
	if conf.Credentials.SpeechKey == "" {
		zeroLogger.Warn(config.GeminiApiKeyEnv + " is not set, /gerar_audio will answer with a configuration error")
	}

	panicHandler := func(p any) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	// One pool per endpoint so a backlog of slow story calls cannot starve audio.
	storyPool, err := ants.NewPool(conf.Server.UpstreamConcurrency, ants.WithPanicHandler(panicHandler), ants.WithNonblocking(true))
	if err != nil {
		return fmt.Errorf("failed to create story worker pool: %w", err)
	}
	defer storyPool.Release()

	audioPool, err := ants.NewPool(conf.Server.UpstreamConcurrency, ants.WithPanicHandler(panicHandler), ants.WithNonblocking(true))
	if err != nil {
		return fmt.Errorf("failed to create audio worker pool: %w", err)
	}
	defer audioPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger, conf.Gemini.Timeout)
	chatCompletion := adapters.NewGroqChatCompletion(conf.Groq, zeroLogger)
	speechGenerator := adapters.NewGeminiSpeechGenerator(contentFetcher, conf.Gemini, zeroLogger)

	storyGenerator := services.NewStoryGenerator(zeroLogger, conf.Credentials, chatCompletion, storyPool)
	audioSynthesizer := services.NewAudioSynthesizer(zeroLogger, conf.Credentials, speechGenerator, audioPool)

	router, err := gin_interface.NewRouter(zeroLogger,
		controllers.NewStoryController(zeroLogger, storyGenerator),
		controllers.NewAudioController(zeroLogger, audioSynthesizer),
	)
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	server := &http.Server{
		Addr:              conf.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		zeroLogger.InfoWithFields("Starting server", map[string]any{"addr": server.Addr})
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zeroLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
