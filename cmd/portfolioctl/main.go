package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Autum7899/My-Portfolio/internal/config"
	"github.com/Autum7899/My-Portfolio/internal/fallback"
	"github.com/Autum7899/My-Portfolio/internal/gateway"
	"github.com/Autum7899/My-Portfolio/internal/session"
	"github.com/Autum7899/My-Portfolio/internal/store"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Manage portfolio content from the terminal",
	Long: `portfolioctl edits portfolio content through the admin API.
Edits apply locally first and survive an unreachable backend: they are
kept in the fallback file and served until the next successful sync.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// buildStore assembles the client stack and loads content before any
// subcommand runs.
func buildStore(ctx context.Context) (*store.PortfolioStore, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	log := logger.NewNop()
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		log = logger.NewZapLogger(cfg.App.Env)
	}

	sessionPath := cfg.Client.SessionPath
	fallbackPath := cfg.Client.FallbackPath
	if sessionPath == "" || fallbackPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve home directory: %w", err)
		}
		if sessionPath == "" {
			sessionPath = filepath.Join(home, ".portfolio", "session.token")
		}
		if fallbackPath == "" {
			fallbackPath = filepath.Join(home, ".portfolio", "fallback.json")
		}
	}

	sess := session.NewFileStore(sessionPath, log)
	gw := gateway.NewClient(cfg.Client.APIBaseURL, cfg.Client.Timeout, func() string {
		token, _ := sess.Load()
		return token
	}, log)

	var fb fallback.Store = fallback.NewFileStore(fallbackPath, log)
	if cfg.Client.FallbackRedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Client.FallbackRedisAddr})
		fb = fallback.NewRedisStore(rdb, log)
	}

	st := store.New(gw, fb, sess, log)
	st.Load(ctx)
	return st, nil
}

func warnOffline(st *store.PortfolioStore, remoteOK bool) {
	if remoteOK {
		return
	}
	if st.ReauthRequired() {
		fmt.Println("! backend rejected the session token, change kept locally; run 'portfolioctl login' and retry")
		return
	}
	fmt.Println("! backend unreachable, change kept locally and will need a re-sync")
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable client logging")
}
