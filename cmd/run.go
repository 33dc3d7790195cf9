package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/app"
	"github.com/edgeai/edgeai/internal/llm"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Catalog: e.catalog,
		Logger:  e.logger,
		Connect: func(ctx context.Context, key string) (llm.Provider, error) {
			return llm.NewProvider(ctx, llm.ConfigFromEnv().WithGeminiKey(key), eventRepo, e.logger)
		},
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo, e.logger)
	if err != nil {
		e.logger.Info("LLM provider not configured", zap.Error(err))
		fmt.Fprintln(os.Stderr, "AI provider not configured; you will be asked for a Gemini API key.")
	} else {
		opts.Provider = provider
	}

	e.logger.Info("starting tui", zap.Bool("provider", opts.Provider != nil))
	return app.Run(opts)
}
