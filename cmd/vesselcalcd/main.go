// Command vesselcalcd serves the calculation contract over HTTP using the
// local formula engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	vesselcalc "github.com/goliatone/go-vesselcalc"
	"github.com/goliatone/go-vesselcalc/internal/config"
	"github.com/goliatone/go-vesselcalc/internal/logging"
	"github.com/goliatone/go-vesselcalc/internal/server"
	"github.com/goliatone/go-vesselcalc/pkg/contract"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr    string
		catalog string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "vesselcalcd",
		Short:         "Vessel calculation service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = catalog
			}

			logger, err := logging.New(cfg.LogLevel, logging.WithVerbose(verbose))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			listener, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Addr, err)
			}
			return serve(ctx, listener, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (env "+config.EnvAddr+")")
	cmd.Flags().StringVar(&catalog, "catalog", "", "catalog YAML or JSON file (env "+config.EnvCatalog+")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// serve runs the service on listener until ctx is done, then drains
// in-flight requests.
func serve(ctx context.Context, listener net.Listener, cfg config.Config, logger *zap.Logger) error {
	hulls, err := vesselcalc.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	options := []server.OptionFn{
		server.WithCatalog(hulls),
		server.WithLogger(logger),
		server.WithEngine(vesselcalc.NewLocalGateway(
			gateway.WithCatalog(hulls),
			gateway.WithLogger(logger),
		)),
	}
	if cfg.ValidateContract {
		c, err := contract.Load(ctx)
		if err != nil {
			return err
		}
		options = append(options, server.WithContract(c))
	}

	httpServer := &http.Server{
		Handler:           server.New(options...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("calculation service listening", zap.String("addr", listener.Addr().String()))
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down calculation service")
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
