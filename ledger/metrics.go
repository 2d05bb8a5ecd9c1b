// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	callsSubmitted  prometheus.Counter
	callsReverted   prometheus.Counter
	accountsCreated prometheus.Counter
	airdrops        prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	registry := prometheus.NewRegistry()
	m := &metrics{
		callsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "calls_submitted",
			Help:      "number of program calls submitted",
		}),
		callsReverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "calls_reverted",
			Help:      "number of program calls that failed and were rolled back",
		}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "accounts_created",
			Help:      "number of accounts created by committed calls",
		}),
		airdrops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "airdrops",
			Help:      "number of airdrops credited",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		registry.Register(m.callsSubmitted),
		registry.Register(m.callsReverted),
		registry.Register(m.accountsCreated),
		registry.Register(m.airdrops),
	)
	return registry, m, errs.Err
}
