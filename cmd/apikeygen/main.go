// Package main provides the apikeygen binary: an HTTP service and a
// one-shot CLI for generating domain-bound API keys.
//
// The serve flow:
//  1. Load and validate configuration from the environment.
//  2. Build the session service with crypto/rand and the real clock.
//  3. Mount the HTTP routes and start the server.
//
// It blocks until the server exits with an error (other than
// http.ErrServerClosed).
package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/124-hue/APIkeygenerator/internal/app"
	"github.com/124-hue/APIkeygenerator/internal/config"
	"github.com/124-hue/APIkeygenerator/internal/domain"
	"github.com/124-hue/APIkeygenerator/internal/history"
	"github.com/124-hue/APIkeygenerator/internal/httpx"
)

// realClock implements app.Clock using time.Now.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

var rootCmd = &cobra.Command{
	Use:   "apikeygen",
	Short: "Domain-bound API key generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP key generation service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var (
	genTier  string
	genCount int
)

var generateCmd = &cobra.Command{
	Use:   "generate <domain>",
	Short: "Generate one or more API keys for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout(), args[0], genTier, genCount)
	},
}

func init() {
	generateCmd.Flags().StringVar(&genTier, "tier", domain.TierStandard.String(), "security tier (standard|high)")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "number of keys to generate")
	rootCmd.AddCommand(serveCmd, generateCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(2)
	}
	return cfg
}

func buildService(cfg *config.Config) *app.Service {
	cache := history.New(cfg.HistoryCap)
	return app.New(cache, realClock{}, rand.Reader, cfg.DefaultTier)
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{Addr: cfg.Addr, Handler: handler, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second, IdleTimeout: 120 * time.Second}
}

func runServe() error {
	cfg := loadConfig()
	svc := buildService(cfg)
	h := httpx.New(svc, nil)
	srv := newServer(cfg, h.Router())
	slog.Info("starting server", "addr", cfg.Addr, "pid", os.Getpid())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// runGenerate performs one-shot generation against a fresh session,
// printing one key per line to w.
func runGenerate(w io.Writer, rawDomain, tierStr string, count int) error {
	tier, err := domain.ParseTier(tierStr)
	if err != nil {
		return fmt.Errorf("--tier %q: %w", tierStr, err)
	}
	svc := app.New(history.New(history.DefaultCap), realClock{}, rand.Reader, tier)
	if err := svc.SetDomainInput(rawDomain); err != nil {
		return fmt.Errorf("%q: %w", rawDomain, err)
	}
	if !svc.IsGenerateable() {
		return fmt.Errorf("no domain provided")
	}
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		tok, err := svc.Generate(tier)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, tok.Value)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
