package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	vesselcalc "github.com/goliatone/go-vesselcalc"
	"github.com/goliatone/go-vesselcalc/internal/config"
	"github.com/goliatone/go-vesselcalc/internal/logging"
	"github.com/goliatone/go-vesselcalc/pkg/contract"
	"github.com/goliatone/go-vesselcalc/pkg/gateway"
	"github.com/goliatone/go-vesselcalc/pkg/session"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	envFiles []string
	lookup   config.LookupFunc

	endpoint string
	local    bool
	timeout  time.Duration
	catalog  string
	verbose  bool

	cfg    config.Config
	logger *zap.Logger
	hulls  *taxonomy.Catalog
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "vesselcalc",
		Short:         "Vessel calculator wizard",
		Long:          "vesselcalc selects a hull category and vessel type, collects specifications and prints the calculated characteristics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.endpoint, "endpoint", "", "calculation service URL (env "+config.EnvEndpoint+")")
	flags.BoolVar(&a.local, "local", false, "use the in-process calculation engine")
	flags.DurationVar(&a.timeout, "timeout", 15*time.Second, "calculation timeout (env "+config.EnvTimeout+")")
	flags.StringVar(&a.catalog, "catalog", "", "catalog YAML or JSON file (env "+config.EnvCatalog+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newWizardCmd(a))
	root.AddCommand(newCalculateCmd(a))
	root.AddCommand(newCatalogCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var options []config.Option
	if a.envFiles != nil {
		options = append(options, config.WithEnvFiles(a.envFiles...))
	}
	if a.lookup != nil {
		options = append(options, config.WithLookup(a.lookup))
	}
	cfg, err := config.Load(options...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = a.catalog
	}
	if a.local {
		cfg.Endpoint = ""
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, logging.WithVerbose(a.verbose))
	if err != nil {
		return err
	}
	a.logger = logger

	catalog, err := vesselcalc.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	a.hulls = catalog
	return nil
}

func (a *app) gateway() (gateway.Gateway, error) {
	options := []gateway.Option{
		gateway.WithLogger(a.logger),
		gateway.WithCatalog(a.hulls),
		gateway.WithTimeout(a.cfg.Timeout),
	}
	if a.cfg.Endpoint == "" {
		a.logger.Debug("using local calculation engine")
		return vesselcalc.NewLocalGateway(options...), nil
	}
	if a.cfg.ValidateContract {
		c, err := contract.Load(context.Background())
		if err != nil {
			return nil, err
		}
		options = append(options, gateway.WithContract(c))
	}
	gw, err := vesselcalc.NewHTTPGateway(a.cfg.Endpoint, options...)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	a.logger.Debug("using calculation service", zap.String("endpoint", gw.Endpoint()))
	return gw, nil
}

func (a *app) session() (*session.Session, error) {
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return vesselcalc.NewSession(gw,
		session.WithCatalog(a.hulls),
		session.WithLogger(a.logger),
	)
}
