package walletkeys

type ErrorCode string

const (
	CodeInvalidMnemonic      ErrorCode = "invalid_mnemonic"
	CodeInvalidKeyMaterial   ErrorCode = "invalid_key_material"
	CodeDerivationFailed     ErrorCode = "address_derivation_failed"
	CodeInvalidAddress       ErrorCode = "invalid_address"
	CodeSigningFailed        ErrorCode = "signing_failed"
	CodeInvalidTransactionID ErrorCode = "invalid_transaction_id"
)

type KeyError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *KeyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *KeyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func wrapKeyError(code ErrorCode, message string, cause error) *KeyError {
	return &KeyError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
