package apperrors

// Wallet and node failure codes surfaced to callers of the orchestration use cases.
const (
	CodeAlreadyRegistered                        = "already_registered"
	CodeUserNotFound                             = "user_not_found"
	CodeTokenNotFound                            = "token_not_found"
	CodeInvalidAddress                           = "invalid_address"
	CodeTooSmallWithdrawal                       = "too_small_withdrawal"
	CodeNetworkError                             = "node_network_error"
	CodeAPIIOError                               = "node_api_io_error"
	CodeAmountOverflow                           = "amount_overflow"
	CodeNotEnoughFunds                           = "not_enough_funds"
	CodeNotEnoughBalanceForFee                   = "not_enough_balance_for_fee"
	CodeNotEnoughApprovedBalance                 = "not_enough_approved_balance"
	CodeNotEnoughALPHForTransactionOutput        = "not_enough_alph_for_transaction_output"
	CodeNotEnoughALPHForALPHAndTokenChangeOutput = "not_enough_alph_for_alph_and_token_change_output"
	CodeNotEnoughALPHForTokenChangeOutput        = "not_enough_alph_for_token_change_output"
)

func NewAlreadyRegistered(identity string) *AppError {
	return NewConflict(
		CodeAlreadyRegistered,
		"user already has a wallet",
		map[string]any{"identity": identity},
	)
}

func NewInvalidAddress(address string) *AppError {
	return NewValidation(
		CodeInvalidAddress,
		"destination address is invalid",
		map[string]any{"address": address},
	)
}

func NewTooSmallWithdrawal(amount string, minimum string) *AppError {
	return NewValidation(
		CodeTooSmallWithdrawal,
		"amount is below the minimum withdrawal",
		map[string]any{"amount": amount, "minimum": minimum},
	)
}
