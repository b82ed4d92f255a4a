package dto

import (
	"time"

	"alphtip/internal/domain/policies"
	valueobjects "alphtip/internal/domain/value_objects"
)

type ConfirmationSettings struct {
	Internal     int
	External     int
	InterStage   int
	PollInterval time.Duration
}

type ConsolidationSettings struct {
	UTXOThreshold  int
	IncludeMempool bool
}

// WalletSettings is the operator policy shared by the transaction use cases.
type WalletSettings struct {
	FeeRate         valueobjects.FeeRate
	FeeAddresses    []string
	OperatorAddress string
	Withdrawal      policies.WithdrawalPolicy
	Confirmations   ConfirmationSettings
	Consolidation   ConsolidationSettings
	DevNetwork      bool
}
