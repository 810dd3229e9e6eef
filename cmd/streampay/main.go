// Command streampay manages Soroban payment streams and token distributions
// from the command line. Settings come from STREAMPAY_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/streampay/internal/config"
	"github.com/gabapcia/streampay/internal/handlers/cli"
	"github.com/gabapcia/streampay/internal/infra/horizon"
	"github.com/gabapcia/streampay/internal/infra/sorobanrpc"
	"github.com/gabapcia/streampay/internal/pkg/logger"
	"github.com/gabapcia/streampay/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/streampay/internal/pkg/transport/http"
	"github.com/gabapcia/streampay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streampay/internal/signer"
	"github.com/gabapcia/streampay/internal/streampay"
	"github.com/gabapcia/streampay/internal/txpipeline"
)

const (
	serviceName    = "streampay"
	serviceVersion = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName, serviceVersion)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	svcCfg, err := cfg.Service()
	if err != nil {
		return err
	}

	httpOpts := []transporthttp.Option{
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		transporthttp.WithUserAgent(serviceName + "/" + serviceVersion),
	}

	horizonClient := horizon.NewClient(svcCfg.HorizonURL, httpOpts...)
	rpcClient := sorobanrpc.NewClient(jsonrpc.NewClient(svcCfg.RPCURL, httpOpts...))

	pipeline := txpipeline.New(horizonClient, rpcClient, streampay.PipelineOptions(svcCfg)...)
	svc := streampay.New(svcCfg, horizonClient, rpcClient, pipeline)

	return cli.Run(ctx, svc, newSigner)
}

func newSigner(secret string) (txpipeline.Signer, error) {
	return signer.NewKeypair(secret)
}
