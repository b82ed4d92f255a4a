package entities

import (
	"strings"

	apperrors "alphtip/internal/shared_kernel/errors"
)

// User is a chat identity with a custodial wallet. ID doubles as the wallet
// derivation index and Address is assigned once, right after the first save.
type User struct {
	ID       int64
	Identity string
	Username string
	Address  string
}

func NewUser(identity, username string) (User, *apperrors.AppError) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return User{}, apperrors.NewValidation(
			"invalid_request",
			"identity is required",
			map[string]any{"field": "identity"},
		)
	}

	return User{
		Identity: identity,
		Username: strings.TrimSpace(username),
	}, nil
}

func (u User) IsPersisted() bool {
	return u.ID > 0
}

func (u User) HasAddress() bool {
	return u.Address != ""
}

// AssignAddress sets the derived address. A user keeps its first address forever.
func (u User) AssignAddress(address string) (User, *apperrors.AppError) {
	if u.HasAddress() && u.Address != address {
		return User{}, apperrors.NewConflict(
			"address_already_assigned",
			"user address cannot change once assigned",
			map[string]any{"identity": u.Identity},
		)
	}
	u.Address = address
	return u, nil
}
