// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

// ledgersim wires a ledger with the counter and calculator programs, drives a
// short scripted session against it, and optionally keeps serving the ledger
// over JSON-RPC. An optional config file may be passed as the first argument.
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

	avatrace "github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/neilotoole/errgroup"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/ovpn-dev/first-solana-dev/api"
	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/crypto/ed25519"
	"github.com/ovpn-dev/first-solana-dev/ledger"
	"github.com/ovpn-dev/first-solana-dev/programs/calculator"
	"github.com/ovpn-dev/first-solana-dev/programs/counter"
	"github.com/ovpn-dev/first-solana-dev/runtime"
	"github.com/ovpn-dev/first-solana-dev/trace"
)

const (
	version         = "v0.0.1"
	shutdownTimeout = 10 * time.Second
)

func main() {
	var configBytes []byte
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read config: %s\n", err)
			os.Exit(1)
		}
		configBytes = b
	}
	cfg, err := newConfig(configBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logging.NewLogger(
		"ledgersim",
		logging.NewWrappedCore(cfg.LogLevel, os.Stderr, logging.Plain.ConsoleEncoder()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.Fatal("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

// payerKey loads the payer key from cfg.PayerKeyFile, generating and saving a
// fresh one on first use. Without a key file the payer is ephemeral.
func payerKey(log logging.Logger, cfg *config) (ed25519.PrivateKey, error) {
	if cfg.PayerKeyFile == "" {
		return ed25519.GeneratePrivateKey()
	}
	priv, err := ed25519.LoadKey(cfg.PayerKeyFile)
	if err == nil {
		return priv, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return ed25519.EmptyPrivateKey, err
	}
	priv, err = ed25519.GeneratePrivateKey()
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	if err := priv.Save(cfg.PayerKeyFile); err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	log.Info("generated payer key", zap.String("file", cfg.PayerKeyFile))
	return priv, nil
}

func run(ctx context.Context, log logging.Logger, cfg *config) error {
	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		_ = tracer.Close()
	}()

	rt, err := runtime.New(log, tracer)
	if err != nil {
		return err
	}
	l, err := ledger.New(log, rt)
	if err != nil {
		return err
	}
	defer func() {
		_ = l.Close()
	}()

	rt.Register(counter.Address, counter.NewProcessor(log, ledger.NewSystemService(log), runtime.StandardRent{}))
	rt.Register(calculator.Address, calculator.NewProcessor(log))

	payer, err := payerKey(log, cfg)
	if err != nil {
		return err
	}
	payerAddr := codec.Address(payer.PublicKey())
	if err := l.Airdrop(payerAddr, cfg.PayerBalance); err != nil {
		return err
	}
	log.Info("funded payer",
		zap.Stringer("payer", payerAddr),
		zap.Uint64("airdrop", cfg.PayerBalance),
	)

	if err := runCounter(ctx, log, l, payerAddr, cfg.InitialValue); err != nil {
		return err
	}
	runCalculator(ctx, log, l)

	if cfg.HTTPAddr == "" {
		return nil
	}
	return serve(ctx, log, tracer, l, cfg)
}

func runCounter(ctx context.Context, log logging.Logger, l *ledger.Ledger, payerAddr codec.Address, initialValue uint64) error {
	recordKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return err
	}
	recordAddr := codec.Address(recordKey.PublicKey())

	data, err := counter.MarshalInstruction(counter.Initialize{InitialValue: initialValue})
	if err != nil {
		return err
	}
	err = l.Submit(ctx, &runtime.Instruction{
		Program: counter.Address,
		Accounts: []runtime.AccountMeta{
			{Address: recordAddr, Signer: true, Writable: true},
			{Address: payerAddr, Signer: true, Writable: true},
			{Address: codec.EmptyAddress},
		},
		Data: data,
	})
	if err != nil {
		return err
	}

	data, err = counter.MarshalInstruction(counter.Increment{})
	if err != nil {
		return err
	}
	err = l.Submit(ctx, &runtime.Instruction{
		Program: counter.Address,
		Accounts: []runtime.AccountMeta{
			{Address: recordAddr, Writable: true},
		},
		Data: data,
	})
	if err != nil {
		return err
	}

	account, err := l.GetAccount(recordAddr)
	if err != nil {
		return err
	}
	record, err := counter.ParseRecord(account.Data)
	if err != nil {
		return err
	}
	log.Info("counter state",
		zap.Stringer("record", recordAddr),
		zap.Uint64("count", record.Count),
		zap.Uint64("rent", account.Balance),
	)
	return nil
}

// runCalculator fires a batch of calculator calls concurrently. The last two
// are rejected on purpose.
func runCalculator(ctx context.Context, log logging.Logger, l *ledger.Ledger) {
	calls := [][]byte{
		{calculator.OpAdd, 15, 7},
		{calculator.OpSub, 20, 8},
		{calculator.OpMul, 6, 4},
		{calculator.OpDiv, 24, 6},
		{calculator.OpMod, 17, 5},
		{calculator.OpPow, 3, 4},
		{calculator.OpDiv, 1, 0},
		{6, 1, 1},
	}

	var rejected atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	for _, call := range calls {
		call := call
		eg.Go(func() error {
			err := l.Submit(egCtx, &runtime.Instruction{
				Program: calculator.Address,
				Data:    call,
			})
			if err != nil {
				rejected.Inc()
				log.Warn("call rejected", zap.Error(err))
			}
			return nil
		})
	}
	_ = eg.Wait()
	log.Info("calculator session complete",
		zap.Int("calls", len(calls)),
		zap.Int64("rejected", rejected.Load()),
	)
}

func serve(ctx context.Context, log logging.Logger, tracer avatrace.Tracer, l *ledger.Ledger, cfg *config) error {
	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}
	handler, err := api.NewHandler(api.NewService(log, tracer, l), api.Name)
	if err != nil {
		return err
	}
	srv := api.NewServer(log, listener, api.DefaultHTTPConfig(), cfg.AllowedOrigins, shutdownTimeout)
	srv.AddRoute(api.Endpoint, handler)

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Dispatch()
	}()
	log.Info("serving ledger API",
		zap.String("addr", listener.Addr().String()),
		zap.String("endpoint", api.Endpoint),
	)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	shutdownErr := srv.Shutdown()
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return shutdownErr
}
