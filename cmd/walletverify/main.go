package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"alphtip/internal/infrastructure/walletkeys"
)

const maxCount = 1000

type verifyInput struct {
	Mnemonic        string
	Passphrase      string
	From            int64
	Count           int
	ExpectedAddress string
}

type derivedWallet struct {
	Index        int64  `json:"index"`
	Address      string `json:"address"`
	Group        int    `json:"group"`
	PublicKeyHex string `json:"public_key"`
}

type verifyResult struct {
	Match           bool            `json:"match"`
	ExpectedAddress string          `json:"expected_address,omitempty"`
	Wallets         []derivedWallet `json:"wallets"`
	Reason          string          `json:"reason,omitempty"`
	ErrorCode       string          `json:"error_code,omitempty"`
}

func main() {
	var input verifyInput
	flag.StringVar(&input.Mnemonic, "mnemonic", os.Getenv("WALLET_MNEMONIC"), "bip39 mnemonic (defaults to WALLET_MNEMONIC)")
	flag.StringVar(&input.Passphrase, "passphrase", os.Getenv("WALLET_PASSPHRASE"), "optional bip39 passphrase")
	flag.Int64Var(&input.From, "from", 1, "first derivation index (user id)")
	flag.IntVar(&input.Count, "count", 1, "number of consecutive wallets to derive")
	flag.StringVar(&input.ExpectedAddress, "expected-address", "", "optional address expected at -from")
	flag.Parse()

	result, exitCode := verify(input)
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"match\":false,\"reason\":\"failed to encode result\",\"error_code\":\"result_encode_failed\"}\n")
		os.Exit(2)
	}

	fmt.Println(string(encoded))
	os.Exit(exitCode)
}

// verify derives the requested range and, when an expected address is given, compares
// it with the first derived wallet.
func verify(input verifyInput) (verifyResult, int) {
	expected := strings.TrimSpace(input.ExpectedAddress)
	result := verifyResult{ExpectedAddress: expected, Wallets: []derivedWallet{}}

	if input.From < 0 || input.Count <= 0 || input.Count > maxCount {
		result.Reason = fmt.Sprintf("from must be >= 0 and count must be between 1 and %d", maxCount)
		result.ErrorCode = "invalid_input"
		return result, 2
	}

	master, keyErr := walletkeys.NewMasterKey(input.Mnemonic, input.Passphrase)
	if keyErr != nil {
		result.Reason = keyErr.Message
		result.ErrorCode = string(keyErr.Code)
		return result, 2
	}

	for offset := 0; offset < input.Count; offset++ {
		index := input.From + int64(offset)
		wallet, keyErr := master.DeriveWallet(index)
		if keyErr != nil {
			result.Reason = keyErr.Message
			result.ErrorCode = string(keyErr.Code)
			return result, 2
		}
		result.Wallets = append(result.Wallets, derivedWallet{
			Index:        index,
			Address:      wallet.Address(),
			Group:        wallet.Group(),
			PublicKeyHex: wallet.PublicKeyHex(),
		})
	}

	if expected == "" {
		result.Match = true
		return result, 0
	}
	if result.Wallets[0].Address != expected {
		result.Reason = "derived address does not match expected address"
		result.ErrorCode = "address_mismatch"
		return result, 3
	}

	result.Match = true
	return result, 0
}
