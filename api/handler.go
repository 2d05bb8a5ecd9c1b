// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
)

// NewHandler wraps service in a JSON-RPC handler. The codec upper-cases the
// first letter of the method, so requests use "name.method" form.
func NewHandler(service any, name string) (http.Handler, error) {
	server := rpc.NewServer()
	jsonCodec := json.NewCodec()
	server.RegisterCodec(jsonCodec, "application/json")
	server.RegisterCodec(jsonCodec, "application/json;charset=UTF-8")
	if err := server.RegisterService(service, name); err != nil {
		return nil, err
	}
	return server, nil
}
