package controllers

import (
	"alphtip/internal/application/dto"
	"alphtip/internal/domain/entities"
	valueobjects "alphtip/internal/domain/value_objects"
)

type userResource struct {
	ID       int64  `json:"id"`
	Identity string `json:"identity"`
	Username string `json:"username"`
	Address  string `json:"address"`
}

type tokenAmountResource struct {
	TokenID  string `json:"token_id"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Amount   string `json:"amount"`
	Display  string `json:"display"`
}

type balanceResource struct {
	Balances []tokenAmountResource `json:"balances"`
}

type transactionResource struct {
	OperationID   string `json:"operation_id"`
	TransactionID string `json:"transaction_id,omitempty"`
}

func presentUser(user entities.User) userResource {
	return userResource{
		ID:       user.ID,
		Identity: user.Identity,
		Username: user.Username,
		Address:  user.Address,
	}
}

func presentBalance(output dto.BalanceOutput) balanceResource {
	balances := make([]tokenAmountResource, 0, len(output.Balance))
	for _, amount := range output.Balance {
		balances = append(balances, tokenAmountResource{
			TokenID:  amount.Token.ID,
			Symbol:   amount.Token.Symbol,
			Decimals: amount.Token.Decimals,
			Amount:   amount.Amount.String(),
			Display:  valueobjects.FormatDecimalAmount(amount.Amount, amount.Token.Decimals),
		})
	}
	return balanceResource{Balances: balances}
}

func presentTransaction(output dto.TransactionOutput) transactionResource {
	return transactionResource{
		OperationID:   output.OperationID,
		TransactionID: output.TransactionID,
	}
}
