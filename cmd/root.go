package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/config"
	"github.com/edgeai/edgeai/internal/content"
	"github.com/edgeai/edgeai/internal/logging"
	"github.com/edgeai/edgeai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edgeai",
	Short: "Gender equality learning companion",
	Long: `EDGE-AI: a terminal learning platform on gender equality in the Philippines.
Read articles and laws, explore PSA statistics, take the quiz, and talk to the AI companion.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDGEAI_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a content catalog YAML file (overrides EDGEAI_CATALOG)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides EDGEAI_LOG_FILE)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs before it does real work.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *content.Catalog
}

// loadEnv reads configuration, opens the log file and loads the catalog.
// Flags win over environment variables.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg := config.Load()

	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if cfg.LogFile == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		cfg.LogFile = p
	}
	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel, debug)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	catalog, err := content.Load(cfg.CatalogPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	logger.Debug("environment loaded",
		zap.String("catalog", catalog.Version()),
		zap.String("catalog_path", cfg.CatalogPath),
	)
	return &env{cfg: cfg, logger: logger, catalog: catalog}, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDGEAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
