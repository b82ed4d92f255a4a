package router

import (
	"net/http"

	"alphtip/internal/adapters/inbound/http/controllers"
)

type Dependencies struct {
	HealthController           *controllers.HealthController
	SwaggerController          *controllers.SwaggerController
	UsersController            *controllers.UsersController
	WalletOperationsController *controllers.WalletOperationsController
	BalancesController         *controllers.BalancesController
}

func New(deps Dependencies) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.HealthController.GetHealth)
	mux.HandleFunc("GET /swagger", deps.SwaggerController.RedirectToIndex)
	mux.HandleFunc("GET /swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	mux.HandleFunc("GET /swagger/", deps.SwaggerController.ServeUI)

	mux.HandleFunc("POST /v1/users", deps.UsersController.RegisterUser)
	mux.HandleFunc("GET /v1/users/{identity}", deps.UsersController.GetUser)
	mux.HandleFunc("DELETE /v1/users/{identity}", deps.UsersController.DeleteUser)
	mux.HandleFunc("GET /v1/users/{identity}/balance", deps.UsersController.GetUserBalance)

	mux.HandleFunc("POST /v1/transfers", deps.WalletOperationsController.Transfer)
	mux.HandleFunc("POST /v1/withdrawals", deps.WalletOperationsController.Withdraw)
	mux.HandleFunc("POST /v1/sweeps", deps.WalletOperationsController.Sweep)

	mux.HandleFunc("GET /v1/balances/total", deps.BalancesController.GetTotal)
	mux.HandleFunc("GET /v1/balances/fees", deps.BalancesController.GetFees)

	return mux
}
