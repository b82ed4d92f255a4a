package controllers

import (
	"net/http"
	"strings"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/domain/entities"
	apperrors "alphtip/internal/shared_kernel/errors"

	"go.uber.org/zap"
)

type WalletOperationsUseCases struct {
	GetUser      portsin.GetUserUseCase
	ResolveToken portsin.ResolveTokenAmountUseCase
	Transfer     portsin.TransferUseCase
	Withdraw     portsin.WithdrawUseCase
	Sweep        portsin.TakeFeesAndSweepUseCase
}

type WalletOperationsController struct {
	useCases  WalletOperationsUseCases
	callbacks StatusCallbacks
	logger    *zap.Logger
}

type transferPayload struct {
	Sender            string `json:"sender"`
	Receiver          string `json:"receiver"`
	Amount            string `json:"amount"`
	Token             string `json:"token"`
	StatusCallbackURL string `json:"status_callback_url"`
}

type withdrawalPayload struct {
	Identity           string `json:"identity"`
	Amount             string `json:"amount"`
	Token              string `json:"token"`
	DestinationAddress string `json:"destination_address"`
	StatusCallbackURL  string `json:"status_callback_url"`
}

type sweepPayload struct {
	Identity           string `json:"identity"`
	DestinationAddress string `json:"destination_address"`
	StatusCallbackURL  string `json:"status_callback_url"`
}

func NewWalletOperationsController(
	useCases WalletOperationsUseCases,
	callbacks StatusCallbacks,
	logger *zap.Logger,
) *WalletOperationsController {
	return &WalletOperationsController{
		useCases:  useCases,
		callbacks: callbacks,
		logger:    logger,
	}
}

func (c *WalletOperationsController) Transfer(w http.ResponseWriter, r *http.Request) {
	payload := transferPayload{}
	if appErr := decodeJSONBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}
	if appErr := firstError(
		requiredField("sender", strings.TrimSpace(payload.Sender)),
		requiredField("receiver", strings.TrimSpace(payload.Receiver)),
		requiredField("amount", strings.TrimSpace(payload.Amount)),
	); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	sender, appErr := c.useCases.GetUser.Execute(r.Context(), dto.GetUserQuery{Identity: payload.Sender})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}
	receiver, appErr := c.useCases.GetUser.Execute(r.Context(), dto.GetUserQuery{Identity: payload.Receiver})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}
	amount, sink, appErr := c.prepare(r, payload.Token, payload.Amount, payload.StatusCallbackURL)
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}

	output, err := c.useCases.Transfer.Execute(r.Context(), dto.TransferCommand{
		Sender:     sender,
		Receiver:   receiver,
		Amount:     amount,
		StatusSink: sink,
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTransaction(output))
}

func (c *WalletOperationsController) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload := withdrawalPayload{}
	if appErr := decodeJSONBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}
	if appErr := firstError(
		requiredField("identity", strings.TrimSpace(payload.Identity)),
		requiredField("amount", strings.TrimSpace(payload.Amount)),
		requiredField("destination_address", strings.TrimSpace(payload.DestinationAddress)),
	); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	user, appErr := c.useCases.GetUser.Execute(r.Context(), dto.GetUserQuery{Identity: payload.Identity})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}
	amount, sink, appErr := c.prepare(r, payload.Token, payload.Amount, payload.StatusCallbackURL)
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}

	output, err := c.useCases.Withdraw.Execute(r.Context(), dto.WithdrawCommand{
		User:               user,
		Amount:             amount,
		DestinationAddress: payload.DestinationAddress,
		StatusSink:         sink,
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTransaction(output))
}

func (c *WalletOperationsController) Sweep(w http.ResponseWriter, r *http.Request) {
	payload := sweepPayload{}
	if appErr := decodeJSONBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}
	if appErr := firstError(
		requiredField("identity", strings.TrimSpace(payload.Identity)),
		requiredField("destination_address", strings.TrimSpace(payload.DestinationAddress)),
	); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	user, appErr := c.useCases.GetUser.Execute(r.Context(), dto.GetUserQuery{Identity: payload.Identity})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}
	sink, appErr := c.callbacks.sinkFor(payload.StatusCallbackURL)
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return
	}

	output, err := c.useCases.Sweep.Execute(r.Context(), dto.TakeFeesAndSweepCommand{
		User:               user,
		DestinationAddress: payload.DestinationAddress,
		StatusSink:         sink,
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTransaction(output))
}

func (c *WalletOperationsController) prepare(
	r *http.Request,
	symbol string,
	rawAmount string,
	callbackURL string,
) (entities.TokenAmount, portsout.StatusSink, *apperrors.AppError) {
	amount, appErr := c.useCases.ResolveToken.Execute(r.Context(), dto.ResolveTokenAmountQuery{
		Symbol: symbol,
		Amount: rawAmount,
	})
	if appErr != nil {
		return entities.TokenAmount{}, nil, appErr
	}
	sink, appErr := c.callbacks.sinkFor(callbackURL)
	if appErr != nil {
		return entities.TokenAmount{}, nil, appErr
	}
	return amount, sink, nil
}

func firstError(errs ...*apperrors.AppError) *apperrors.AppError {
	for _, appErr := range errs {
		if appErr != nil {
			return appErr
		}
	}
	return nil
}
