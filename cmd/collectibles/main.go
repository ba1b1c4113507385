// Package main provides the CLI entry point for collectibles-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	ctx := newCommandContext()
	cmd := newRootCommand(ctx)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(ctx, err)
		}
		os.Exit(1)
	}
}

// reportError logs through the configured logger, or stderr when the
// logger could not be built.
func reportError(ctx *commandContext, err error) {
	if ctx.log == nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx.log.Error("command failed", zap.Error(err))
	_ = ctx.log.Sync()
}
