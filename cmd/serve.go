package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sampath-kumaramd/mathlearn-project/internal/config"
	"github.com/sampath-kumaramd/mathlearn-project/internal/feedback"
	"github.com/sampath-kumaramd/mathlearn-project/internal/lessons"
	"github.com/sampath-kumaramd/mathlearn-project/internal/llm"
	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
	"github.com/sampath-kumaramd/mathlearn-project/internal/server"
	"github.com/sampath-kumaramd/mathlearn-project/internal/speech"
	"github.com/sampath-kumaramd/mathlearn-project/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tutoring server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	registry := profile.NewRegistry(st.ProfileRepo(), logger)

	var gen problems.Generator = problems.NewCultural(nil, nil)
	if cfg.LLM.Enabled {
		provider, err := llm.NewProvider(cmd.Context(), cfg.LLMProviderConfig(), logger)
		if err != nil {
			return fmt.Errorf("init LLM generator: %w", err)
		}
		gen = problems.NewLLM(provider, nil, nil)
		logger.Info("problem generation via LLM", zap.String("provider", cfg.LLM.Provider))
	}

	var speaker *speech.Speaker
	if cfg.Speech.Enabled {
		speaker = speech.NewSpeaker(speech.NewGoogleTTS(nil, cfg.Speech.Language, logger))
	}

	handler := server.NewHandler(
		server.NewSessionStore(),
		registry,
		lessons.NewAssembler(gen, nil, logger),
		feedback.NewEngine(nil, logger),
		speaker,
		logger,
		nil,
	)
	router := server.NewRouter(server.RouterConfig{
		Handler:      handler,
		Logger:       logger,
		AllowOrigins: []string{"http://localhost:3000"},
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
