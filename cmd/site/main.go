package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/developerplugin/vocomate/internal/config"
	"github.com/developerplugin/vocomate/internal/export"
	"github.com/developerplugin/vocomate/internal/httpserver"
	"github.com/developerplugin/vocomate/internal/observability"
	"github.com/developerplugin/vocomate/internal/pages/home"
	"github.com/developerplugin/vocomate/internal/site"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newApp(os.Stdout).RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vocamate-site: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:   "vocamate-site",
		Usage:  "Serve or export the Vocamate landing site",
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file with local overrides; empty disables it",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Action: runServe,
			},
			{
				Name:  "export",
				Usage: "Write the rendered site to a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   "dist",
						Usage:   "output directory",
					},
				},
				Action: runExport,
			},
			{
				Name:   "render",
				Usage:  "Print the home page fragment to stdout",
				Action: runRender,
			},
		},
		Action: runServe,
	}
}

func setup(c *cli.Context) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(c.Context, config.WithEnvFile(c.String("env-file")))
	if err != nil {
		return config.Config{}, nil, err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logger, nil
}

func runServe(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Disabled:    cfg.Tracing.Disabled,
		ServiceName: cfg.Tracing.ServiceName,
		Protocol:    cfg.Tracing.Protocol,
		Sampler:     cfg.Tracing.Sampler,
		SamplerArg:  cfg.Tracing.SamplerArg,
	}, logger)
	if err != nil {
		return err
	}

	opts := site.Options{BaseURL: cfg.Site.BaseURL}
	var source site.Source
	if cfg.Site.Dev {
		source = site.Live{Options: opts}
	} else {
		built, err := site.Build(ctx, opts)
		if err != nil {
			return fmt.Errorf("build site: %w", err)
		}
		logger.Info("site built", zap.Strings("routes", built.Routes()))
		source = built
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:        cfg.Server.Address,
		Source:         source,
		Logger:         logger,
		MetricsEnabled: cfg.Metrics.Enabled,
		RequestTimeout: cfg.Server.RequestTimeout,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
	})
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("dev", cfg.Site.Dev))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
	return nil
}

func runExport(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	built, err := site.Build(c.Context, site.Options{BaseURL: cfg.Site.BaseURL})
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}
	written, err := export.Write(c.Context, built, c.String("out"), logger)
	if err != nil {
		return err
	}
	for _, file := range written {
		fmt.Fprintln(c.App.Writer, file)
	}
	return nil
}

func runRender(c *cli.Context) error {
	fragment, err := home.Render(c.Context)
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(fragment)
	return err
}
