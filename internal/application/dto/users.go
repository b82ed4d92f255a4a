package dto

import "alphtip/internal/domain/entities"

type RegisterUserCommand struct {
	Identity string
	Username string
}

type GetUserQuery struct {
	Identity string
}

type DeleteUserCommand struct {
	User entities.User
}

type EmptyWalletCommand struct {
	User entities.User
}

type EmptyWalletOutput struct {
	TransactionIDs []string
}

type ConsolidateCommand struct {
	User entities.User
}

type ConsolidateOutput struct {
	Consolidated   bool
	UTXOCount      int
	TransactionIDs []string
}

type ConsolidateAllCommand struct {
	BatchSize int
}

type ConsolidateAllOutput struct {
	Scanned      int
	Consolidated int
	Failed       int
}
