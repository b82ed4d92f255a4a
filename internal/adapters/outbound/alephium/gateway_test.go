//go:build !integration

package alephium

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubWallet struct {
	signErr error
}

func (stubWallet) Address() string      { return "1DrDyTr9RpRsQnDnXo2YRiPzPW4ooHX5LLoqXrqfMrpQH" }
func (stubWallet) PublicKeyHex() string { return "02abcdef" }
func (stubWallet) Group() int           { return 0 }
func (w stubWallet) Sign(txID string) (string, error) {
	if w.signErr != nil {
		return "", w.signErr
	}
	return "sig-" + txID, nil
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGateway(NewClient(Config{BaseURL: server.URL + "/", APIKey: "secret-key"}), nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestGetAddressBalanceParsesAmounts(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses/addr1/balance", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("mempool"))
		assert.Equal(t, "secret-key", r.Header.Get(apiKeyHeader))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"balance":       "1000000000000000000000000000000000000",
			"lockedBalance": "5",
			"tokenBalances": []map[string]string{{"id": "aa", "amount": "42"}},
			"utxoNum":       17,
		})
	})

	balance, err := gateway.GetAddressBalance(context.Background(), "addr1", true)

	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000000000000000", balance.Balance.String())
	assert.Equal(t, "5", balance.LockedBalance.String())
	assert.Equal(t, "999999999999999999999999999999999995", balance.Spendable().String())
	require.Len(t, balance.Tokens, 1)
	assert.Equal(t, "aa", balance.Tokens[0].ID)
	assert.Equal(t, "42", balance.Tokens[0].Amount.String())
	assert.Equal(t, 17, balance.UTXOCount)
}

func TestGetAddressBalanceRejectsMalformedAmount(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"balance": "lots", "utxoNum": 1})
	})

	_, err := gateway.GetAddressBalance(context.Background(), "addr1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed balance")
}

func TestTransferAndSubmitSignsBuiltTransaction(t *testing.T) {
	var built buildTransferRequest
	var submitted submitRequest
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/build":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&built))
			writeJSON(t, w, http.StatusOK, map[string]any{"txId": "tx1", "unsignedTx": "0011"})
		case "/transactions/submit":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
			writeJSON(t, w, http.StatusOK, map[string]any{"txId": "tx1"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	txID, err := gateway.TransferAndSubmit(context.Background(), stubWallet{}, []portsout.TransferDestination{
		{Address: "fee", AttoAlphAmount: big.NewInt(1000)},
		{
			Address:        "dest",
			AttoAlphAmount: big.NewInt(7),
			Tokens: []portsout.AssetBalance{
				{ID: "tok", Amount: big.NewInt(3)},
				{ID: "empty", Amount: big.NewInt(0)},
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "tx1", txID)
	assert.Equal(t, "02abcdef", built.FromPublicKey)
	require.Len(t, built.Destinations, 2)
	assert.Equal(t, "1000", built.Destinations[0].AttoAlphAmount)
	assert.Empty(t, built.Destinations[0].Tokens)
	assert.Equal(t, []tokenJSON{{ID: "tok", Amount: "3"}}, built.Destinations[1].Tokens)
	assert.Equal(t, submitRequest{UnsignedTx: "0011", Signature: "sig-tx1"}, submitted)
}

func TestTransferAndSubmitReturnsNodeRejectionUnchanged(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Not enough balance: got 1, expected 2"})
	})

	_, err := gateway.TransferAndSubmit(context.Background(), stubWallet{}, []portsout.TransferDestination{
		{Address: "dest", AttoAlphAmount: big.NewInt(2)},
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Not enough balance: got 1, expected 2", apiErr.Detail)
	assert.Equal(t, "/transactions/build", apiErr.Path)
}

func TestTransferAndSubmitStopsOnSigningFailure(t *testing.T) {
	submits := 0
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/transactions/submit" {
			submits++
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"txId": "tx1", "unsignedTx": "00"})
	})
	signErr := errors.New("bad key")

	_, err := gateway.TransferAndSubmit(context.Background(), stubWallet{signErr: signErr}, []portsout.TransferDestination{
		{Address: "dest", AttoAlphAmount: big.NewInt(2)},
	})

	assert.ErrorIs(t, err, signErr)
	assert.Zero(t, submits)
}

func TestSweepAndSubmitSubmitsEveryTransaction(t *testing.T) {
	var mu sync.Mutex
	var signatures []string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/sweep-address/build":
			var request buildSweepRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "operator", request.ToAddress)
			writeJSON(t, w, http.StatusOK, map[string]any{"unsignedTxs": []map[string]string{
				{"txId": "s1", "unsignedTx": "aa"},
				{"txId": "s2", "unsignedTx": "bb"},
			}})
		case "/transactions/submit":
			var request submitRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			mu.Lock()
			signatures = append(signatures, request.Signature)
			mu.Unlock()
			writeJSON(t, w, http.StatusOK, map[string]any{"txId": request.Signature[len("sig-"):]})
		}
	})

	txIDs, err := gateway.SweepAndSubmit(context.Background(), stubWallet{}, "operator")

	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, txIDs)
	assert.Equal(t, []string{"sig-s1", "sig-s2"}, signatures)
}

func TestSweepAndSubmitWithNothingToSweep(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"unsignedTxs": []any{}})
	})

	txIDs, err := gateway.SweepAndSubmit(context.Background(), stubWallet{}, "operator")

	require.NoError(t, err)
	assert.Empty(t, txIDs)
}

func TestWaitForConfirmationPollsUntilThreshold(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tx1", r.URL.Query().Get("txId"))
		mu.Lock()
		polls++
		current := polls
		mu.Unlock()
		switch {
		case current == 1:
			writeJSON(t, w, http.StatusOK, map[string]any{"type": txStatusTxNotFound})
		case current == 2:
			writeJSON(t, w, http.StatusOK, map[string]any{"type": txStatusMemPooled})
		default:
			writeJSON(t, w, http.StatusOK, map[string]any{"type": txStatusConfirmed, "chainConfirmations": current - 2})
		}
	})

	err := gateway.WaitForConfirmation(context.Background(), "tx1", 3, time.Millisecond)

	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, polls)
}

func TestWaitForConfirmationWarnsOnUnexpectedStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"type": "Conflicted"})
	}))
	t.Cleanup(server.Close)
	gateway := NewGateway(NewClient(Config{BaseURL: server.URL + "/"}), zap.New(core))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := gateway.WaitForConfirmation(ctx, "tx1", 1, 5*time.Millisecond)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	warnings := logs.FilterMessage("unexpected transaction status").All()
	require.NotEmpty(t, warnings)
	assert.Equal(t, "Conflicted", warnings[0].ContextMap()["status"])
}

func TestWaitForConfirmationStopsOnNodeRejection(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Invalid tx id"})
	})

	err := gateway.WaitForConfirmation(context.Background(), "nope", 1, time.Millisecond)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid tx id", apiErr.Detail)
}

func TestWaitForConfirmationHonoursContext(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"type": txStatusMemPooled})
	})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := gateway.WaitForConfirmation(ctx, "tx1", 1, 5*time.Millisecond)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientReportsUnreachableNode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()
	gateway := NewGateway(NewClient(Config{BaseURL: baseURL, Timeout: time.Second}), nil)

	_, err := gateway.GetAddressBalance(context.Background(), "addr1", false)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "/addresses/addr1/balance", transportErr.Path)
}

func TestCheckReadiness(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/infos/node", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"buildInfo": map[string]string{"releaseVersion": "3.5.0"}})
	})

	assert.Nil(t, gateway.CheckReadiness(context.Background()))
}

func TestCheckReadinessReportsUnreachableNode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()
	gateway := NewGateway(NewClient(Config{BaseURL: baseURL, Timeout: time.Second}), nil)

	appErr := gateway.CheckReadiness(context.Background())

	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeNetworkError, appErr.Code)
	var transportErr *TransportError
	assert.ErrorAs(t, appErr, &transportErr)
}
