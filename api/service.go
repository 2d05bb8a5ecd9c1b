// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/ledger"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

const (
	// Name is the service name methods are addressed under, as in
	// "ledger.getAccount".
	Name = "ledger"

	// Endpoint is the path the handler is served on.
	Endpoint = "/ledger"
)

// Service exposes a ledger over JSON-RPC.
type Service struct {
	log    logging.Logger
	tracer trace.Tracer
	ledger *ledger.Ledger
}

func NewService(log logging.Logger, tracer trace.Tracer, l *ledger.Ledger) *Service {
	return &Service{
		log:    log,
		tracer: tracer,
		ledger: l,
	}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (s *Service) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	s.log.Info("ping")
	reply.Success = true
	return nil
}

type GetAccountArgs struct {
	Address codec.Address `json:"address"`
}

type GetAccountReply struct {
	Balance uint64        `json:"balance"`
	Owner   codec.Address `json:"owner"`
	Data    []byte        `json:"data"`
	Exists  bool          `json:"exists"`
}

func (s *Service) GetAccount(req *http.Request, args *GetAccountArgs, reply *GetAccountReply) error {
	_, span := s.tracer.Start(req.Context(), "Service.GetAccount")
	defer span.End()

	account, err := s.ledger.GetAccount(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = account.Balance
	reply.Owner = account.Owner
	reply.Data = account.Data
	reply.Exists = account.Exists()
	return nil
}

type AirdropArgs struct {
	Address codec.Address `json:"address"`
	Value   uint64        `json:"value"`
}

type AirdropReply struct {
	Balance uint64 `json:"balance"`
}

func (s *Service) Airdrop(req *http.Request, args *AirdropArgs, reply *AirdropReply) error {
	_, span := s.tracer.Start(req.Context(), "Service.Airdrop")
	defer span.End()

	if err := s.ledger.Airdrop(args.Address, args.Value); err != nil {
		return err
	}
	account, err := s.ledger.GetAccount(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = account.Balance
	return nil
}

type SubmitArgs struct {
	// Instruction is a borsh-encoded [runtime.Instruction].
	Instruction []byte `json:"instruction"`
}

type SubmitReply struct {
	Success bool `json:"success"`
}

func (s *Service) Submit(req *http.Request, args *SubmitArgs, reply *SubmitReply) error {
	ctx, span := s.tracer.Start(req.Context(), "Service.Submit")
	defer span.End()

	instruction, err := runtime.ParseInstruction(args.Instruction)
	if err != nil {
		return fmt.Errorf("unable to parse instruction: %w", err)
	}
	if err := s.ledger.Submit(ctx, instruction); err != nil {
		return err
	}
	reply.Success = true
	return nil
}
