//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"alphtip/internal/application/dto"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyWalletSweepsToOperator(t *testing.T) {
	gateway := newFakeNodeGateway()
	gateway.sweepTxIDs = []string{"a", "b"}
	settings := testSettings(1000)
	user := testUser(3)

	output, err := NewEmptyWalletUseCase(testDeps(gateway, &fakeDeriver{}), settings).Execute(
		context.Background(),
		dto.EmptyWalletCommand{User: user},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, output.TransactionIDs)
	assert.Equal(t, []sweepCall{{from: user.Address, to: settings.OperatorAddress}}, gateway.sweeps)
	assert.Empty(t, gateway.transfers)
	assert.Empty(t, gateway.waits)
}

func TestEmptyWalletRequiresOperatorAddress(t *testing.T) {
	settings := testSettings(0)
	settings.OperatorAddress = ""

	_, err := NewEmptyWalletUseCase(testDeps(newFakeNodeGateway(), &fakeDeriver{}), settings).Execute(
		context.Background(),
		dto.EmptyWalletCommand{User: testUser(3)},
	)

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, "operator_address_missing"))
}

func TestEmptyWalletRejectsUnregisteredUser(t *testing.T) {
	gateway := newFakeNodeGateway()

	_, err := NewEmptyWalletUseCase(testDeps(gateway, &fakeDeriver{}), testSettings(0)).Execute(
		context.Background(),
		dto.EmptyWalletCommand{},
	)

	require.Error(t, err)
	assert.Zero(t, gateway.totalCalls())
}
