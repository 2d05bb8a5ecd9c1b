// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	callsExecuted prometheus.Counter
	callsFailed   prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		callsExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "calls_executed",
			Help:      "number of program calls that succeeded",
		}),
		callsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "calls_failed",
			Help:      "number of program calls that returned an error",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.callsExecuted),
		r.Register(m.callsFailed),
	)
	return r, m, errs.Err
}
