// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/ovpn-dev/first-solana-dev/codec"
)

// Runtime routes calls to registered programs. Each call is one sequential
// unit of work: no suspension, no retries, every failure terminal for the
// call.
type Runtime struct {
	log      logging.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	metrics  *metrics

	programs map[codec.Address]Program
}

func New(log logging.Logger, tracer trace.Tracer) (*Runtime, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Runtime{
		log:      log,
		tracer:   tracer,
		registry: registry,
		metrics:  metrics,
		programs: make(map[codec.Address]Program),
	}, nil
}

// Register installs program at addr. Later registrations replace earlier
// ones.
func (r *Runtime) Register(addr codec.Address, program Program) {
	r.programs[addr] = program
}

// Programs returns the addresses that have a registered program.
func (r *Runtime) Programs() []codec.Address {
	return maps.Keys(r.programs)
}

// Gatherer exposes the runtime metrics registry.
func (r *Runtime) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Execute routes one call to the program registered at [programID]. Program
// errors come back wrapped with the program address. Referenced accounts
// are untouched whenever an error is returned.
func (r *Runtime) Execute(ctx context.Context, programID codec.Address, accounts []*AccountRef, data []byte) error {
	ctx, span := r.tracer.Start(ctx, "Runtime.Execute")
	defer span.End()

	program, ok := r.programs[programID]
	if !ok {
		r.metrics.callsFailed.Inc()
		return fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
	}
	if err := program.Process(ctx, programID, accounts, data); err != nil {
		r.metrics.callsFailed.Inc()
		r.log.Debug("program call failed",
			zap.Stringer("program", programID),
			zap.Error(err),
		)
		return fmt.Errorf("program %s: %w", programID, err)
	}
	r.metrics.callsExecuted.Inc()
	return nil
}
