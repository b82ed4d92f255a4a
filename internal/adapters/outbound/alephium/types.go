package alephium

type tokenJSON struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

type balanceResponse struct {
	Balance       string      `json:"balance"`
	LockedBalance string      `json:"lockedBalance"`
	TokenBalances []tokenJSON `json:"tokenBalances"`
	UTXONum       int         `json:"utxoNum"`
}

type destinationJSON struct {
	Address        string      `json:"address"`
	AttoAlphAmount string      `json:"attoAlphAmount"`
	Tokens         []tokenJSON `json:"tokens,omitempty"`
}

type buildTransferRequest struct {
	FromPublicKey string            `json:"fromPublicKey"`
	Destinations  []destinationJSON `json:"destinations"`
}

type unsignedTxJSON struct {
	TxID       string `json:"txId"`
	UnsignedTx string `json:"unsignedTx"`
	GasAmount  int    `json:"gasAmount"`
	GasPrice   string `json:"gasPrice"`
}

type buildTransferResponse struct {
	unsignedTxJSON
	FromGroup int `json:"fromGroup"`
	ToGroup   int `json:"toGroup"`
}

type buildSweepRequest struct {
	FromPublicKey string `json:"fromPublicKey"`
	ToAddress     string `json:"toAddress"`
}

type buildSweepResponse struct {
	UnsignedTxs []unsignedTxJSON `json:"unsignedTxs"`
	FromGroup   int              `json:"fromGroup"`
	ToGroup     int              `json:"toGroup"`
}

type submitRequest struct {
	UnsignedTx string `json:"unsignedTx"`
	Signature  string `json:"signature"`
}

type submitResponse struct {
	TxID      string `json:"txId"`
	FromGroup int    `json:"fromGroup"`
	ToGroup   int    `json:"toGroup"`
}

const (
	txStatusConfirmed  = "Confirmed"
	txStatusMemPooled  = "MemPooled"
	txStatusTxNotFound = "TxNotFound"
)

type txStatusResponse struct {
	Type                   string `json:"type"`
	BlockHash              string `json:"blockHash,omitempty"`
	ChainConfirmations     int    `json:"chainConfirmations"`
	FromGroupConfirmations int    `json:"fromGroupConfirmations"`
	ToGroupConfirmations   int    `json:"toGroupConfirmations"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type nodeInfoResponse struct {
	BuildInfo struct {
		ReleaseVersion string `json:"releaseVersion"`
	} `json:"buildInfo"`
}
