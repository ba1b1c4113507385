package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/collectibles-go/internal/config"
	"github.com/ukaji3/collectibles-go/internal/logger"
)

type commandContext struct {
	envDir   string
	logLevel string

	config *config.Config
	log    *zap.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{envDir: "."}
}

// load reads configuration and builds the logger. Flags given on the
// command line win over configured values.
func (c *commandContext) load() error {
	cfg, err := config.LoadConfig(c.envDir)
	if err != nil {
		return err
	}
	if level := strings.TrimSpace(c.logLevel); level != "" {
		cfg.Log.Level = level
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}

	c.config = cfg
	c.log = log
	return nil
}

func (c *commandContext) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// stringFlag returns the flag value when it was set explicitly and fallback
// otherwise.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
