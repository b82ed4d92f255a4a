package in

import (
	"context"

	"alphtip/internal/application/dto"
)

type EmptyWalletUseCase interface {
	Execute(ctx context.Context, command dto.EmptyWalletCommand) (dto.EmptyWalletOutput, error)
}
