// Package cmd implements the featuredctl commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyrodovalexey/featured-content/internal/client"
	"github.com/vyrodovalexey/featured-content/internal/retry"
)

// Configuration keys.
const (
	keyServer  = "server"
	keyRetries = "retries"
	keyTimeout = "timeout"
	keyJSON    = "json"
)

const (
	defaultServer  = "http://localhost:3000"
	defaultRetries = retry.DefaultMaxAttempts
	defaultTimeout = 10 * time.Second
	envPrefix      = "FEATUREDCTL"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the featuredctl command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "featuredctl",
		Short: "Featured content CLI",
		Long:  "CLI for listing, inspecting, creating and deleting featured content.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/featuredctl/config.yaml)")
	flags.String(keyServer, defaultServer, "featured-content server base URL")
	flags.Int(keyRetries, defaultRetries, "attempts per read or delete request on transport and server errors (create is sent once)")
	flags.Duration(keyTimeout, defaultTimeout, "HTTP timeout per attempt")
	flags.Bool(keyJSON, false, "print JSON instead of text")

	for _, key := range []string{keyServer, keyRetries, keyTimeout, keyJSON} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newListCmd(v),
		newGetCmd(v),
		newCreateCmd(v),
		newDeleteCmd(v),
	)

	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if cfg := cmd.Flag("config").Value.String(); cfg != "" {
		v.SetConfigFile(cfg)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "featuredctl")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "featuredctl")
	}
	return ".featuredctl"
}

// newClient builds an API client from the resolved configuration.
func newClient(v *viper.Viper) (*client.Client, error) {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = v.GetInt(keyRetries)

	return client.New(v.GetString(keyServer),
		client.WithHTTPClient(newHTTPClient(v.GetDuration(keyTimeout))),
		client.WithRetry(retryCfg),
	)
}
