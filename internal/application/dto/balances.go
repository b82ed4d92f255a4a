package dto

import "alphtip/internal/domain/entities"

type GetUserBalanceQuery struct {
	User  entities.User
	Token *entities.Token
}

type GetTotalTokenAmountQuery struct{}

type GetTotalFromAddressesQuery struct {
	Addresses []string
}

type BalanceOutput struct {
	Balance entities.UserBalance
}
