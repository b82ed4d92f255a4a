package controllers

import (
	"net/http"
	"strings"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"
	"alphtip/internal/domain/entities"

	"go.uber.org/zap"
)

type UsersUseCases struct {
	Register     portsin.RegisterUserUseCase
	Get          portsin.GetUserUseCase
	EmptyWallet  portsin.EmptyWalletUseCase
	Delete       portsin.DeleteUserUseCase
	Balance      portsin.GetUserBalanceUseCase
	ResolveToken portsin.ResolveTokenAmountUseCase
}

type UsersController struct {
	useCases UsersUseCases
	logger   *zap.Logger
}

type registerUserPayload struct {
	Identity string `json:"identity"`
	Username string `json:"username"`
}

type deleteUserResource struct {
	Identity            string   `json:"identity"`
	SweepTransactionIDs []string `json:"sweep_transaction_ids"`
}

func NewUsersController(useCases UsersUseCases, logger *zap.Logger) *UsersController {
	return &UsersController{useCases: useCases, logger: logger}
}

func (c *UsersController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	payload := registerUserPayload{}
	if appErr := decodeJSONBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	user, err := c.useCases.Register.Execute(r.Context(), dto.RegisterUserCommand{
		Identity: payload.Identity,
		Username: payload.Username,
	})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	w.Header().Set("Location", "/v1/users/"+user.Identity)
	writeJSON(w, http.StatusCreated, presentUser(user))
}

func (c *UsersController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := c.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, presentUser(user))
}

// DeleteUser sweeps whatever the wallet still holds to the operator before the
// record goes away.
func (c *UsersController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := c.lookup(w, r)
	if !ok {
		return
	}

	emptied, err := c.useCases.EmptyWallet.Execute(r.Context(), dto.EmptyWalletCommand{User: user})
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	if err := c.useCases.Delete.Execute(r.Context(), dto.DeleteUserCommand{User: user}); err != nil {
		writeError(w, r, c.logger, err)
		return
	}

	txIDs := emptied.TransactionIDs
	if txIDs == nil {
		txIDs = []string{}
	}
	writeJSON(w, http.StatusOK, deleteUserResource{
		Identity:            user.Identity,
		SweepTransactionIDs: txIDs,
	})
}

func (c *UsersController) GetUserBalance(w http.ResponseWriter, r *http.Request) {
	user, ok := c.lookup(w, r)
	if !ok {
		return
	}

	query := dto.GetUserBalanceQuery{User: user}
	if symbol := strings.TrimSpace(r.URL.Query().Get("token")); symbol != "" {
		resolved, appErr := c.useCases.ResolveToken.Execute(r.Context(), dto.ResolveTokenAmountQuery{Symbol: symbol})
		if appErr != nil {
			writeError(w, r, c.logger, appErr)
			return
		}
		query.Token = &resolved.Token
	}

	output, err := c.useCases.Balance.Execute(r.Context(), query)
	if err != nil {
		writeError(w, r, c.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, presentBalance(output))
}

func (c *UsersController) lookup(w http.ResponseWriter, r *http.Request) (entities.User, bool) {
	user, appErr := c.useCases.Get.Execute(r.Context(), dto.GetUserQuery{Identity: r.PathValue("identity")})
	if appErr != nil {
		writeError(w, r, c.logger, appErr)
		return entities.User{}, false
	}
	return user, true
}
