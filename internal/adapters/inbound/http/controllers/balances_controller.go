package controllers

import (
	"net/http"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"

	"go.uber.org/zap"
)

type BalancesController struct {
	total         portsin.GetTotalTokenAmountUseCase
	fromAddresses portsin.GetTotalFromAddressesUseCase
	feeAddresses  []string
	logger        *zap.Logger
}

func NewBalancesController(
	total portsin.GetTotalTokenAmountUseCase,
	fromAddresses portsin.GetTotalFromAddressesUseCase,
	feeAddresses []string,
	logger *zap.Logger,
) *BalancesController {
	return &BalancesController{
		total:         total,
		fromAddresses: fromAddresses,
		feeAddresses:  feeAddresses,
		logger:        logger,
	}
}

// GetTotal sums the balances of every registered wallet.
func (c *BalancesController) GetTotal(w http.ResponseWriter, r *http.Request) {
	output, err := c.total.Execute(r.Context(), dto.GetTotalTokenAmountQuery{})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentBalance(output))
}

func (c *BalancesController) GetFees(w http.ResponseWriter, r *http.Request) {
	output, err := c.fromAddresses.Execute(r.Context(), dto.GetTotalFromAddressesQuery{Addresses: c.feeAddresses})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentBalance(output))
}
