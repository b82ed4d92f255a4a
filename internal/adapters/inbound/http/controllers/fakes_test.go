//go:build !integration

package controllers

import (
	"context"
	"math/big"

	"alphtip/internal/application/dto"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type directory map[string]entities.User

func (d directory) Execute(_ context.Context, query dto.GetUserQuery) (entities.User, *apperrors.AppError) {
	user, ok := d[query.Identity]
	if !ok {
		return entities.User{}, apperrors.NewNotFound(apperrors.CodeUserNotFound, "user not found", nil)
	}
	return user, nil
}

type registerStub struct {
	err error
}

func (s registerStub) Execute(_ context.Context, command dto.RegisterUserCommand) (entities.User, error) {
	if s.err != nil {
		return entities.User{}, s.err
	}
	return entities.User{ID: 7, Identity: command.Identity, Username: command.Username, Address: "addr-7"}, nil
}

type emptyWalletStub struct {
	calls []entities.User
	err   error
}

func (s *emptyWalletStub) Execute(_ context.Context, command dto.EmptyWalletCommand) (dto.EmptyWalletOutput, error) {
	s.calls = append(s.calls, command.User)
	if s.err != nil {
		return dto.EmptyWalletOutput{}, s.err
	}
	return dto.EmptyWalletOutput{TransactionIDs: []string{"sweep-1"}}, nil
}

type deleteUserStub struct {
	deleted []entities.User
}

func (s *deleteUserStub) Execute(_ context.Context, command dto.DeleteUserCommand) error {
	s.deleted = append(s.deleted, command.User)
	return nil
}

type userBalanceStub struct {
	lastQuery dto.GetUserBalanceQuery
}

func (s *userBalanceStub) Execute(_ context.Context, query dto.GetUserBalanceQuery) (dto.BalanceOutput, error) {
	s.lastQuery = query
	return dto.BalanceOutput{Balance: entities.NewUserBalance(
		entities.NewTokenAmount(entities.NativeToken(), big.NewInt(1500000000000000000)),
	)}, nil
}

var ayin = entities.Token{
	ID:       "1a281053ba8601a658368594da034c2e99a0fb951b86498d05e76aedfe666800",
	Symbol:   "AYIN",
	Name:     "Ayin",
	Decimals: 18,
}

type resolverStub struct{}

func (resolverStub) Execute(_ context.Context, query dto.ResolveTokenAmountQuery) (entities.TokenAmount, *apperrors.AppError) {
	token := entities.NativeToken()
	switch query.Symbol {
	case "", "ALPH":
	case "AYIN":
		token = ayin
	default:
		return entities.TokenAmount{}, apperrors.NewNotFound(apperrors.CodeTokenNotFound, "token not found", nil)
	}
	if query.Amount == "" {
		return entities.ZeroTokenAmount(token), nil
	}
	amount, ok := new(big.Int).SetString(query.Amount, 10)
	if !ok {
		return entities.TokenAmount{}, apperrors.NewValidation("invalid_amount", "bad amount", nil)
	}
	return entities.NewTokenAmount(token, amount), nil
}

type transferStub struct {
	last dto.TransferCommand
	err  error
}

func (s *transferStub) Execute(_ context.Context, command dto.TransferCommand) (dto.TransactionOutput, error) {
	s.last = command
	if s.err != nil {
		return dto.TransactionOutput{}, s.err
	}
	return dto.TransactionOutput{OperationID: "op-1", TransactionID: "tx-1"}, nil
}

type withdrawStub struct {
	last dto.WithdrawCommand
}

func (s *withdrawStub) Execute(_ context.Context, command dto.WithdrawCommand) (dto.TransactionOutput, error) {
	s.last = command
	return dto.TransactionOutput{OperationID: "op-2", TransactionID: "tx-2"}, nil
}

type sweepStub struct {
	last dto.TakeFeesAndSweepCommand
}

func (s *sweepStub) Execute(_ context.Context, command dto.TakeFeesAndSweepCommand) (dto.TransactionOutput, error) {
	s.last = command
	return dto.TransactionOutput{OperationID: "op-3"}, nil
}

type recordingSink struct {
	callbackURL string
}

func (recordingSink) OnUpdate(context.Context, string) error { return nil }

type sinkFactoryStub struct{}

func (sinkFactoryStub) ForCallback(callbackURL string) portsout.StatusSink {
	return recordingSink{callbackURL: callbackURL}
}

func testUsers() directory {
	return directory{
		"alice": {ID: 1, Identity: "alice", Username: "Alice", Address: "addr-1"},
		"bob":   {ID: 2, Identity: "bob", Username: "Bob", Address: "addr-2"},
	}
}
