package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"dabuild/internal/config"
	"dabuild/internal/server"
	"dabuild/internal/storage"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interview builder HTTP API",
	Long: `Run the HTTP API that backs the visual editor frontend.

Endpoints: /health, /parse, /validate, /variables, /fields, /save.
The listen address comes from the config file and can be overridden with
--listen or the DABUILD_LISTEN environment variable (a .env file is loaded
when present).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load(GetConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if v := os.Getenv("DABUILD_LISTEN"); v != "" {
			cfg.Server.Listen = v
		}
		if v := os.Getenv("DABUILD_SAVE_ROOT"); v != "" {
			cfg.Storage.SaveRoot = v
		}
		if serveListen != "" {
			cfg.Server.Listen = serveListen
		}

		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		srv := server.New(newAnalyzer(cfg), storage.New(cfg.Storage.SaveRoot), logger)

		logger.Info("starting API server",
			zap.String("listen", cfg.Server.Listen),
			zap.String("save_root", cfg.Storage.SaveRoot))

		handler := h2c.NewHandler(srv.Handler(), &http2.Server{})
		return http.ListenAndServe(cfg.Server.Listen, handler)
	},
}

func newLogger() (*zap.Logger, error) {
	if IsVerbose() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default: from config)")
	rootCmd.AddCommand(serveCmd)
}
