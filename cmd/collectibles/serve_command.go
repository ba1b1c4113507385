package main

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

	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var (
		addr          string
		catalogPath   string
		locationsPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and the player profile over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			log := ctx.logger()
			cfg.Server.Addr = stringFlag(cmd, "addr", addr, cfg.Server.Addr)
			catalogPath = stringFlag(cmd, "catalog", catalogPath, cfg.Paths.Output)
			locationsPath = stringFlag(cmd, "locations", locationsPath, cfg.Paths.Locations)

			locs, err := locations.Load(locationsPath)
			if err != nil {
				return err
			}
			f, err := os.Open(catalogPath)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			catalog, err := output.LoadCatalog(f, locs)
			_ = f.Close()
			if err != nil {
				return err
			}

			var store profile.Store = profile.NoopStore{}
			if cfg.Profile.DBPath != "" {
				sqlite, err := profile.OpenSQLite(cfg.Profile.DBPath, log)
				if err != nil {
					return err
				}
				defer sqlite.Close()
				store = sqlite
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           server.New(cfg.Server, catalog, locs, store, log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("catalog API listening",
					zap.String("addr", srv.Addr),
					zap.Int("types", len(catalog)),
					zap.Int("items", catalog.ItemCount()),
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-runCtx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			log.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Generated catalog to serve (default from config)")
	cmd.Flags().StringVar(&locationsPath, "locations", "", "Location reference table (default from config)")

	return cmd
}
