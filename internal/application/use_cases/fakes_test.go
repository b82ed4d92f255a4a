//go:build !integration

package use_cases

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"alphtip/internal/application/dto"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	"alphtip/internal/domain/policies"
	valueobjects "alphtip/internal/domain/value_objects"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

var errNodeNotEnoughBalance = errors.New("Not enough balance: got 1, expected 2")

// testAddress builds a valid P2PKH address whose hash starts with seed.
func testAddress(seed byte) string {
	raw := make([]byte, 33)
	raw[0] = byte(valueobjects.AddressTypeP2PKH)
	for i := 1; i < len(raw); i++ {
		raw[i] = seed + byte(i)
	}
	return base58.Encode(raw)
}

func testGroup(address string) int {
	parsed, appErr := valueobjects.ParseAddress(address)
	if appErr != nil {
		panic(appErr)
	}
	return parsed.Group()
}

type fakeWallet struct {
	index   int64
	address string
}

func (w fakeWallet) Address() string      { return w.address }
func (w fakeWallet) PublicKeyHex() string { return fmt.Sprintf("pub-%d", w.index) }
func (w fakeWallet) Group() int           { return testGroup(w.address) }
func (w fakeWallet) Sign(txID string) (string, error) {
	return "sig-" + txID, nil
}

type fakeDeriver struct {
	mu    sync.Mutex
	calls []int64
	err   error
}

func (d *fakeDeriver) Derive(index int64) (portsout.WalletHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, index)
	if d.err != nil {
		return nil, d.err
	}
	return fakeWallet{index: index, address: testAddress(byte(index))}, nil
}

type transferCall struct {
	from         string
	destinations []portsout.TransferDestination
}

type sweepCall struct {
	from string
	to   string
}

type waitCall struct {
	txID          string
	confirmations int
	pollInterval  time.Duration
}

type balanceCall struct {
	address        string
	includeMempool bool
}

type fakeNodeGateway struct {
	mu sync.Mutex

	balances    map[string]portsout.AddressBalance
	balanceErr  error
	transferErr error
	sweepErr    error
	waitErr     error
	sweepTxIDs  []string
	noSweep     bool

	nextTx       int
	balanceCalls []balanceCall
	transfers    []transferCall
	sweeps       []sweepCall
	waits        []waitCall
}

func newFakeNodeGateway() *fakeNodeGateway {
	return &fakeNodeGateway{balances: map[string]portsout.AddressBalance{}}
}

func (f *fakeNodeGateway) GetAddressBalance(_ context.Context, address string, includeMempool bool) (portsout.AddressBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balanceCalls = append(f.balanceCalls, balanceCall{address: address, includeMempool: includeMempool})
	if f.balanceErr != nil {
		return portsout.AddressBalance{}, f.balanceErr
	}
	balance, ok := f.balances[address]
	if !ok {
		return portsout.AddressBalance{Balance: big.NewInt(0)}, nil
	}
	return balance, nil
}

func (f *fakeNodeGateway) TransferAndSubmit(_ context.Context, wallet portsout.WalletHandle, destinations []portsout.TransferDestination) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transfers = append(f.transfers, transferCall{from: wallet.Address(), destinations: destinations})
	if f.transferErr != nil {
		return "", f.transferErr
	}
	f.nextTx++
	return fmt.Sprintf("tx-%d", f.nextTx), nil
}

func (f *fakeNodeGateway) SweepAndSubmit(_ context.Context, wallet portsout.WalletHandle, toAddress string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps = append(f.sweeps, sweepCall{from: wallet.Address(), to: toAddress})
	if f.sweepErr != nil {
		return nil, f.sweepErr
	}
	if f.noSweep {
		return nil, nil
	}
	if f.sweepTxIDs != nil {
		return f.sweepTxIDs, nil
	}
	f.nextTx++
	return []string{fmt.Sprintf("sweep-%d", f.nextTx)}, nil
}

func (f *fakeNodeGateway) WaitForConfirmation(_ context.Context, txID string, confirmations int, pollInterval time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waits = append(f.waits, waitCall{txID: txID, confirmations: confirmations, pollInterval: pollInterval})
	return f.waitErr
}

func (f *fakeNodeGateway) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.balanceCalls) + len(f.transfers) + len(f.sweeps) + len(f.waits)
}

func (f *fakeNodeGateway) sweepCalls() []sweepCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sweepCall(nil), f.sweeps...)
}

func (f *fakeNodeGateway) balanceCallsSnapshot() []balanceCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]balanceCall(nil), f.balanceCalls...)
}

// fakeClassifier recognises a single raw failure shape.
type fakeClassifier struct{}

func (fakeClassifier) Classify(err error) error {
	if errors.Is(err, errNodeNotEnoughBalance) {
		return apperrors.NewRejected(apperrors.CodeNotEnoughFunds, "not enough funds", nil).WithCause(err)
	}
	return err
}

type recordingSink struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (s *recordingSink) OnUpdate(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return s.err
}

func (s *recordingSink) joined() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.texts, "\n---\n")
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

// settled waits for the terminal rendering and returns every delivered text.
func (s *recordingSink) settled(t *testing.T) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		texts := s.snapshot()
		if len(texts) == 0 {
			return false
		}
		last := texts[len(texts)-1]
		return strings.HasSuffix(last, "confirmed") || strings.Contains(last, "failed: ")
	}, time.Second, 5*time.Millisecond)
	return s.snapshot()
}

// memoryUserRepository is a concurrency-safe in-memory user store.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entities.User
	saves  int
}

func newMemoryUserRepository(users ...entities.User) *memoryUserRepository {
	repository := &memoryUserRepository{users: map[int64]entities.User{}}
	for _, user := range users {
		repository.users[user.ID] = user
		repository.nextID = max(repository.nextID, user.ID)
	}
	return repository
}

func (r *memoryUserRepository) ExistsByIdentity(_ context.Context, identity string) (bool, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Identity == identity {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepository) FindByIdentity(_ context.Context, identity string) (entities.User, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Identity == identity {
			return user, nil
		}
	}
	return entities.User{}, apperrors.NewNotFound(apperrors.CodeUserNotFound, "user not found", nil)
}

func (r *memoryUserRepository) Save(_ context.Context, user entities.User) (entities.User, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepository) Remove(_ context.Context, user entities.User) *apperrors.AppError {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, user.ID)
	return nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *memoryUserRepository) Find(_ context.Context, skip int, take int) ([]entities.User, *apperrors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []entities.User{}
	for i := skip; i < len(ids) && i < skip+take; i++ {
		out = append(out, r.users[ids[i]])
	}
	return out, nil
}

func alph(whole int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(whole), big.NewInt(1_000_000_000_000_000_000))
}

func testSettings(feeBasisPoints int64) dto.WalletSettings {
	rate, appErr := valueobjects.NewFeeRate(feeBasisPoints)
	if appErr != nil {
		panic(appErr)
	}
	return dto.WalletSettings{
		FeeRate:         rate,
		FeeAddresses:    []string{testAddress(200), testAddress(201), testAddress(202), testAddress(203)},
		OperatorAddress: testAddress(150),
		Withdrawal: policies.WithdrawalPolicy{
			MinWithdrawal: alph(1),
			MinSweepAll:   alph(2),
		},
		Confirmations: dto.ConfirmationSettings{
			Internal:     1,
			External:     3,
			InterStage:   2,
			PollInterval: time.Millisecond,
		},
		Consolidation: dto.ConsolidationSettings{UTXOThreshold: 10, IncludeMempool: true},
	}
}

func testDeps(gateway *fakeNodeGateway, deriver *fakeDeriver) WalletDependencies {
	return WalletDependencies{Deriver: deriver, Gateway: gateway, Classifier: fakeClassifier{}}
}

func testUser(id int64) entities.User {
	return entities.User{
		ID:       id,
		Identity: fmt.Sprintf("user-%d", id),
		Username: fmt.Sprintf("name-%d", id),
		Address:  testAddress(byte(id)),
	}
}

var testToken = entities.Token{
	ID:       "1a281053ba8601a658368594da034c2e99a0fb951b86498d05e76aedfe666800",
	Symbol:   "AYIN",
	Name:     "Ayin",
	Decimals: 18,
}

func dtoBalance(balance *big.Int, utxos int, tokens ...portsout.AssetBalance) portsout.AddressBalance {
	return portsout.AddressBalance{
		Balance:       balance,
		LockedBalance: big.NewInt(0),
		Tokens:        tokens,
		UTXOCount:     utxos,
	}
}

func dtoNative(amount *big.Int) entities.TokenAmount {
	return entities.NewTokenAmount(entities.NativeToken(), amount)
}
