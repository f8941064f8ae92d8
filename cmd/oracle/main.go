// Command oracle runs the BN254 pairing-witness JSON-RPC server: it binds
// to 127.0.0.1:3000 by default and serves resolve_foreign_call requests
// until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/consensys/bn254-witness-oracle/internal/config"
	"github.com/consensys/bn254-witness-oracle/internal/logger"
	"github.com/consensys/bn254-witness-oracle/internal/rpc"
	"github.com/consensys/bn254-witness-oracle/internal/witness"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if cfg.LogFilter != "" {
		if lvl, err := zerolog.ParseLevel(cfg.LogFilter); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	}
	log := logger.Logger()

	server := rpc.NewServer(cfg.ListenAddr, witness.CryptoSampler{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server exited with error")
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			os.Exit(1)
		}
	}
}
