package dto

import (
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
)

type TransferCommand struct {
	Sender     entities.User
	Receiver   entities.User
	Amount     entities.TokenAmount
	StatusSink portsout.StatusSink
}

type WithdrawCommand struct {
	User               entities.User
	Amount             entities.TokenAmount
	DestinationAddress string
	StatusSink         portsout.StatusSink
}

type TakeFeesAndSweepCommand struct {
	User               entities.User
	DestinationAddress string
	StatusSink         portsout.StatusSink
}

// TransactionOutput carries the confirmed transaction id. TransactionID is empty
// when a sweep found nothing to move.
type TransactionOutput struct {
	OperationID   string
	TransactionID string
}
