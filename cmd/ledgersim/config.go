// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ovpn-dev/first-solana-dev/trace"
)

type config struct {
	LogLevel     logging.Level `json:"logLevel"`
	PayerKeyFile string        `json:"payerKeyFile"`
	PayerBalance uint64        `json:"payerBalance"`
	InitialValue uint64        `json:"initialValue"`

	// HTTPAddr enables the JSON-RPC API when set, e.g. "127.0.0.1:9650".
	HTTPAddr       string       `json:"httpAddr"`
	AllowedOrigins []string     `json:"allowedOrigins"`
	Trace          trace.Config `json:"trace"`
}

func newConfig(b []byte) (*config, error) {
	c := &config{
		LogLevel:       logging.Info,
		PayerBalance:   1_000_000_000,
		InitialValue:   42,
		AllowedOrigins: []string{"*"},
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1.0,
			AppName:         "ledgersim",
			Version:         version,
		},
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	return c, nil
}
