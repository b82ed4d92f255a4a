//go:build !integration

package use_cases

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"alphtip/internal/application/dto"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/application/ports/out/mocks"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const unknownAssetID = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

// registryStub answers like the persisted registry: ALPH and testToken are known.
func registryStub(ctrl *gomock.Controller) *mocks.MockTokenRegistry {
	registry := mocks.NewMockTokenRegistry(ctrl)
	registry.EXPECT().GetByAssetID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, assetID string, amount *big.Int) (entities.TokenAmount, *apperrors.AppError) {
			switch assetID {
			case entities.NativeTokenID:
				return entities.NewTokenAmount(entities.NativeToken(), amount), nil
			case testToken.ID:
				return entities.NewTokenAmount(testToken, amount), nil
			default:
				return entities.TokenAmount{}, apperrors.NewNotFound(apperrors.CodeTokenNotFound, "token not found", nil)
			}
		},
	).AnyTimes()
	return registry
}

func balanceDeps(t *testing.T, gateway *fakeNodeGateway) BalanceDependencies {
	return BalanceDependencies{
		Gateway:    gateway,
		Registry:   registryStub(gomock.NewController(t)),
		Classifier: fakeClassifier{},
	}
}

func TestGetUserBalanceDropsUnknownAssets(t *testing.T) {
	gateway := newFakeNodeGateway()
	user := testUser(1)
	gateway.balances[user.Address] = dtoBalance(alph(4), 2,
		portsout.AssetBalance{ID: testToken.ID, Amount: big.NewInt(12)},
		portsout.AssetBalance{ID: unknownAssetID, Amount: big.NewInt(99)},
	)

	output, err := NewGetUserBalanceUseCase(balanceDeps(t, gateway)).Execute(context.Background(), dto.GetUserBalanceQuery{User: user})

	require.NoError(t, err)
	require.Len(t, output.Balance, 2)
	assert.Equal(t, alph(4).String(), output.Balance.Native().Amount.String())
	assert.Equal(t, "12", output.Balance.AmountOf(testToken.ID).String())
	_, found := output.Balance.Find(unknownAssetID)
	assert.False(t, found)
}

func TestGetUserBalanceFiltersSingleToken(t *testing.T) {
	gateway := newFakeNodeGateway()
	user := testUser(1)
	gateway.balances[user.Address] = dtoBalance(alph(4), 2, portsout.AssetBalance{ID: testToken.ID, Amount: big.NewInt(12)})
	token := testToken

	output, err := NewGetUserBalanceUseCase(balanceDeps(t, gateway)).Execute(context.Background(), dto.GetUserBalanceQuery{User: user, Token: &token})

	require.NoError(t, err)
	require.Len(t, output.Balance, 1)
	assert.Equal(t, testToken.ID, output.Balance[0].Token.ID)
	assert.Equal(t, "12", output.Balance[0].Amount.String())
}

func TestGetUserBalanceClassifiesNodeFailure(t *testing.T) {
	gateway := newFakeNodeGateway()
	gateway.balanceErr = errNodeNotEnoughBalance

	_, err := NewGetUserBalanceUseCase(balanceDeps(t, gateway)).Execute(context.Background(), dto.GetUserBalanceQuery{User: testUser(1)})

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotEnoughFunds))
}

func TestGetTotalTokenAmountBatchingMatchesUnbatchedSum(t *testing.T) {
	gateway := newFakeNodeGateway()
	var users []entities.User
	var addresses []string
	for id := int64(1); id <= 25; id++ {
		user := testUser(id)
		users = append(users, user)
		addresses = append(addresses, user.Address)
		gateway.balances[user.Address] = dtoBalance(big.NewInt(id*1000), 1, portsout.AssetBalance{ID: testToken.ID, Amount: big.NewInt(id)})
	}
	repository := newCountingUserRepository(newMemoryUserRepository(users...))
	deps := balanceDeps(t, gateway)

	batched, err := NewGetTotalTokenAmountUseCase(deps, repository).Execute(context.Background(), dto.GetTotalTokenAmountQuery{})
	require.NoError(t, err)

	unbatched, err := NewGetTotalFromAddressesUseCase(deps).Execute(context.Background(), dto.GetTotalFromAddressesQuery{Addresses: addresses})
	require.NoError(t, err)

	assert.Equal(t, "325000", batched.Balance.Native().Amount.String())
	assert.Equal(t, "325", batched.Balance.AmountOf(testToken.ID).String())
	require.Len(t, batched.Balance, len(unbatched.Balance))
	for _, amount := range unbatched.Balance {
		assert.Equal(t, amount.Amount.String(), batched.Balance.AmountOf(amount.Token.ID).String())
	}

	assert.Equal(t, []int{2}, repository.distinctTakes())
	assert.Equal(t, 13, repository.findCalls)
}

func TestGetTotalTokenAmountWithNoUsers(t *testing.T) {
	output, err := NewGetTotalTokenAmountUseCase(balanceDeps(t, newFakeNodeGateway()), newMemoryUserRepository()).Execute(
		context.Background(),
		dto.GetTotalTokenAmountQuery{},
	)

	require.NoError(t, err)
	require.Len(t, output.Balance, 1)
	assert.True(t, output.Balance.Native().IsZero())
}

func TestGetTotalFromAddressesPropagatesUnclassifiedFailure(t *testing.T) {
	gateway := newFakeNodeGateway()
	raw := errors.New("odd failure")
	gateway.balanceErr = raw

	_, err := NewGetTotalFromAddressesUseCase(balanceDeps(t, gateway)).Execute(
		context.Background(),
		dto.GetTotalFromAddressesQuery{Addresses: []string{testAddress(1)}},
	)

	assert.Same(t, raw, err)
}

func TestTotalBatchSize(t *testing.T) {
	assert.Equal(t, 1, totalBatchSize(0))
	assert.Equal(t, 1, totalBatchSize(19))
	assert.Equal(t, 2, totalBatchSize(25))
	assert.Equal(t, 100, totalBatchSize(1000))
}

type countingUserRepository struct {
	*memoryUserRepository
	findCalls int
	takes     map[int]bool
}

func newCountingUserRepository(inner *memoryUserRepository) *countingUserRepository {
	return &countingUserRepository{memoryUserRepository: inner, takes: map[int]bool{}}
}

func (r *countingUserRepository) Find(ctx context.Context, skip int, take int) ([]entities.User, *apperrors.AppError) {
	r.findCalls++
	r.takes[take] = true
	return r.memoryUserRepository.Find(ctx, skip, take)
}

func (r *countingUserRepository) distinctTakes() []int {
	out := []int{}
	for take := range r.takes {
		out = append(out, take)
	}
	return out
}
