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

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/sagemaker-client/internal/pkg/application/emulator"
	"github.com/diwise/sagemaker-client/internal/pkg/infrastructure/router"
	"github.com/diwise/sagemaker-client/internal/pkg/presentation/api/awsjson"
)

const serviceName string = "sagemaker-emulator"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags, err := parseExternalConfig(ctx, DefaultFlags(), os.Args[1:])
	if err != nil {
		logger.Error("failed to parse command line", "err", err.Error())
		os.Exit(1)
	}

	var cfgFile io.Reader
	if flags[configPath] != "" {
		f, err := os.Open(flags[configPath])
		if err != nil {
			logger.Error("failed to open emulator configuration", "path", flags[configPath], "err", err.Error())
			os.Exit(1)
		}
		defer f.Close()
		cfgFile = f
	}

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		logger.Error("failed to open authorization policies", "path", flags[opaPath], "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	handler, cp, err := initialize(ctx, flags, cfgFile, policies)
	if err != nil {
		logger.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, flags, handler, cp)
	if err != nil {
		logger.Error("service stopped with an error", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, flags FlagMap, cfgFile, policies io.Reader) (http.Handler, emulator.ControlPlane, error) {
	cfg := &emulator.Config{}

	if cfgFile != nil {
		var err error
		cfg, err = emulator.LoadConfiguration(cfgFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load emulator configuration: %w", err)
		}
	}

	if flags[region] != "" {
		cfg.Region = flags[region]
	}

	cp, err := emulator.New(ctx, *cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create control plane: %w", err)
	}

	r := router.New(serviceName)

	err = awsjson.RegisterHandlers(ctx, r, policies, cp)
	if err != nil {
		return nil, nil, err
	}

	return r, cp, nil
}

func run(ctx context.Context, flags FlagMap, handler http.Handler, cp emulator.ControlPlane) error {
	logger := logging.GetFromContext(ctx)

	if err := cp.Start(); err != nil {
		return err
	}
	defer cp.Stop()

	srv := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: handler,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("starting to listen for connections", "addr", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
