package alephium

import (
	"context"
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"

	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"
)

type failureKind int

const (
	failureUnrecognized failureKind = iota
	failureNetwork
	failureAPIIO
	failureAmountOverflow
	failureNotEnoughFunds
	failureNotEnoughBalanceForFee
	failureNotEnoughApprovedBalance
	failureNotEnoughALPHForTransactionOutput
	failureNotEnoughALPHForALPHAndTokenChangeOutput
	failureNotEnoughALPHForTokenChangeOutput
)

// rawFailure is a node failure tagged by shape, with any values parsed out of its text.
type rawFailure struct {
	kind     failureKind
	text     string
	actual   string
	required string
	address  string
	tokenID  string
	cause    error
}

var (
	notEnoughFundsPattern    = regexp.MustCompile(`Not enough balance: got ([^,]+), expected (.+)$`)
	notEnoughApprovedPattern = regexp.MustCompile(
		`Not enough approved balance for address ([^,]+), tokenId: ([^,]+), expected: ([^,]+), got: (.+)$`,
	)
)

type textRule struct {
	kind    failureKind
	matches func(text string) bool
}

func contains(fragments ...string) func(string) bool {
	return func(text string) bool {
		for _, fragment := range fragments {
			if strings.Contains(text, fragment) {
				return true
			}
		}
		return false
	}
}

// Order is significant: the first matching rule wins.
var textRules = []textRule{
	{failureNetwork, contains("fetch failed")},
	{failureAPIIO, contains("I/O error", "Internal server error")},
	{failureAmountOverflow, contains("overflow")},
	{failureNotEnoughFunds, notEnoughFundsPattern.MatchString},
	{failureNotEnoughBalanceForFee, contains("Not enough balance for fee")},
	{failureNotEnoughApprovedBalance, notEnoughApprovedPattern.MatchString},
	{failureNotEnoughALPHForTransactionOutput, contains("Not enough ALPH for transaction output")},
	{failureNotEnoughALPHForALPHAndTokenChangeOutput, contains("Not enough ALPH for ALPH and token change output")},
	{failureNotEnoughALPHForTokenChangeOutput, contains("Not enough ALPH for token change output")},
}

// Classifier turns raw node failures into the application's error taxonomy.
type Classifier struct{}

var _ portsout.ErrorClassifier = Classifier{}

func NewClassifier() Classifier {
	return Classifier{}
}

// Classify returns err unchanged when it is already classified or when no known shape
// matches.
func (Classifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return toDomainError(parseFailure(err))
}

func parseFailure(err error) rawFailure {
	failure := rawFailure{cause: err, text: failureText(err)}
	if isTransportFailure(err) {
		failure.kind = failureNetwork
		return failure
	}

	for _, rule := range textRules {
		if rule.matches(failure.text) {
			failure.kind = rule.kind
			break
		}
	}

	switch failure.kind {
	case failureNotEnoughFunds:
		match := notEnoughFundsPattern.FindStringSubmatch(failure.text)
		failure.actual = strings.TrimSpace(match[1])
		failure.required = strings.TrimSpace(match[2])
	case failureNotEnoughApprovedBalance:
		match := notEnoughApprovedPattern.FindStringSubmatch(failure.text)
		failure.address = strings.TrimSpace(match[1])
		failure.tokenID = strings.TrimSpace(match[2])
		failure.required = strings.TrimSpace(match[3])
		failure.actual = strings.TrimSpace(match[4])
	}
	return failure
}

func toDomainError(failure rawFailure) error {
	var out *apperrors.AppError
	switch failure.kind {
	case failureNetwork:
		out = apperrors.NewUnavailable(apperrors.CodeNetworkError, "full node is unreachable", nil)
	case failureAPIIO:
		out = apperrors.NewUnavailable(apperrors.CodeAPIIOError, "full node reported an I/O failure", nil)
	case failureAmountOverflow:
		out = apperrors.NewValidation(apperrors.CodeAmountOverflow, "amount is too large", nil)
	case failureNotEnoughFunds:
		out = apperrors.NewRejected(
			apperrors.CodeNotEnoughFunds,
			"not enough funds",
			map[string]any{"actual": failure.actual, "required": failure.required},
		)
	case failureNotEnoughBalanceForFee:
		out = apperrors.NewRejected(apperrors.CodeNotEnoughBalanceForFee, "not enough balance to pay the network fee", nil)
	case failureNotEnoughApprovedBalance:
		out = apperrors.NewRejected(
			apperrors.CodeNotEnoughApprovedBalance,
			"not enough approved balance",
			map[string]any{
				"address":  failure.address,
				"token_id": failure.tokenID,
				"required": failure.required,
				"actual":   failure.actual,
			},
		)
	case failureNotEnoughALPHForTransactionOutput:
		out = apperrors.NewRejected(
			apperrors.CodeNotEnoughALPHForTransactionOutput,
			"not enough ALPH left for the transaction output",
			nil,
		)
	case failureNotEnoughALPHForALPHAndTokenChangeOutput:
		out = apperrors.NewRejected(
			apperrors.CodeNotEnoughALPHForALPHAndTokenChangeOutput,
			"not enough ALPH left for the ALPH and token change outputs",
			nil,
		)
	case failureNotEnoughALPHForTokenChangeOutput:
		out = apperrors.NewRejected(
			apperrors.CodeNotEnoughALPHForTokenChangeOutput,
			"not enough ALPH left for the token change output",
			nil,
		)
	default:
		return failure.cause
	}
	return out.WithCause(failure.cause)
}

// isTransportFailure reports whether the node could not be reached. The caller's own
// cancellation or deadline is not a node failure.
func isTransportFailure(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func failureText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return strings.TrimSpace(apiErr.Detail)
	}
	return err.Error()
}
