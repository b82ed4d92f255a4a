package di

import (
	"database/sql"
	"fmt"

	"alphtip/internal/adapters/inbound/http/controllers"
	httpRouter "alphtip/internal/adapters/inbound/http/router"
	"alphtip/internal/adapters/outbound/alephium"
	"alphtip/internal/adapters/outbound/docs"
	postgresqlbootstrap "alphtip/internal/adapters/outbound/persistence/postgresql/bootstrap"
	postgresqlshared "alphtip/internal/adapters/outbound/persistence/postgresql/shared"
	postgresqltoken "alphtip/internal/adapters/outbound/persistence/postgresql/token"
	postgresqluser "alphtip/internal/adapters/outbound/persistence/postgresql/user"
	"alphtip/internal/adapters/outbound/statussink"
	"alphtip/internal/adapters/outbound/wallet/deterministic"
	portsin "alphtip/internal/application/ports/in"
	portsout "alphtip/internal/application/ports/out"
	"alphtip/internal/application/use_cases"
	"alphtip/internal/infrastructure/config"
	"alphtip/internal/infrastructure/consolidator"
	"alphtip/internal/infrastructure/httpserver"
	"alphtip/internal/infrastructure/walletkeys"

	"go.uber.org/zap"
)

type Container struct {
	Database                     *sql.DB
	Server                       *httpserver.Server
	InitializePersistenceUseCase portsin.InitializePersistenceUseCase
	ConsolidationWorker          *consolidator.Worker
}

func Build(cfg config.Config, logger *zap.Logger) (Container, error) {
	masterKey, keyErr := walletkeys.NewMasterKey(cfg.WalletMnemonic, cfg.WalletPassphrase)
	if keyErr != nil {
		return Container{}, fmt.Errorf("wallet master key: %w", keyErr)
	}
	deriver := deterministic.NewDeriver(masterKey)

	nodeClient := alephium.NewClient(alephium.Config{
		BaseURL: cfg.NodeURL,
		APIKey:  cfg.NodeAPIKey,
		Timeout: cfg.NodeHTTPTimeout,
		Logger:  logger.Named("alephium"),
	})
	nodeGateway := alephium.NewGateway(nodeClient, logger.Named("alephium"))
	classifier := alephium.NewClassifier()

	databasePool, err := postgresqlshared.NewDatabasePool(cfg.DatabaseURL, logger)
	if err != nil {
		return Container{}, fmt.Errorf("database pool: %w", err)
	}
	persistenceGateway := postgresqlbootstrap.NewGateway(
		cfg.DatabaseURL,
		cfg.DatabaseTarget,
		cfg.MigrationsPath,
		logger.Named("persistence"),
	)
	userRepository := postgresqluser.NewRepository(databasePool, logger)
	tokenRegistry := postgresqltoken.NewRegistry(databasePool, logger)

	settings := cfg.WalletSettings()
	walletDeps := use_cases.WalletDependencies{
		Deriver:    deriver,
		Gateway:    nodeGateway,
		Classifier: classifier,
		Logger:     logger.Named("wallet"),
	}
	balanceDeps := use_cases.BalanceDependencies{
		Gateway:    nodeGateway,
		Registry:   tokenRegistry,
		Classifier: classifier,
		Logger:     logger.Named("balances"),
	}

	initializePersistenceUseCase := use_cases.NewInitializePersistenceUseCase(persistenceGateway)
	healthUseCase := use_cases.NewGetHealthUseCase(map[string]portsout.ReadinessProbe{
		"database": postgresqlshared.NewPoolProbe(databasePool),
		"node":     nodeGateway,
	})
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath))

	consolidateUseCase := use_cases.NewConsolidateUseCase(walletDeps, settings)
	consolidateAllUseCase := use_cases.NewConsolidateAllUseCase(userRepository, consolidateUseCase, logger.Named("consolidation"))
	getUserUseCase := use_cases.NewGetUserUseCase(userRepository)
	resolveTokenUseCase := use_cases.NewResolveTokenAmountUseCase(tokenRegistry)

	consolidationWorker := consolidator.NewWorker(
		cfg.ConsolidationWorkerEnabled,
		cfg.ConsolidationWorkerInterval,
		cfg.ConsolidationWorkerBatchSize,
		consolidateAllUseCase,
		logger.Named("consolidator"),
	)

	callbacks := controllers.NewStatusCallbacks(
		statussink.NewFactory(statussink.FactoryConfig{
			HMACSecret: cfg.StatusWebhookHMACSecret,
			Timeout:    cfg.StatusWebhookTimeout,
		}, logger.Named("status")),
		cfg.StatusCallbackAllowedHosts,
	)

	httpLogger := logger.Named("http")
	router := httpRouter.New(httpRouter.Dependencies{
		HealthController:  controllers.NewHealthController(healthUseCase, httpLogger),
		SwaggerController: controllers.NewSwaggerController(openAPIUseCase, httpLogger),
		UsersController: controllers.NewUsersController(controllers.UsersUseCases{
			Register:     use_cases.NewRegisterUserUseCase(userRepository, deriver, logger.Named("registration")),
			Get:          getUserUseCase,
			EmptyWallet:  use_cases.NewEmptyWalletUseCase(walletDeps, settings),
			Delete:       use_cases.NewDeleteUserUseCase(userRepository),
			Balance:      use_cases.NewGetUserBalanceUseCase(balanceDeps),
			ResolveToken: resolveTokenUseCase,
		}, httpLogger),
		WalletOperationsController: controllers.NewWalletOperationsController(controllers.WalletOperationsUseCases{
			GetUser:      getUserUseCase,
			ResolveToken: resolveTokenUseCase,
			Transfer:     use_cases.NewTransferUseCase(walletDeps, settings, consolidateUseCase),
			Withdraw:     use_cases.NewWithdrawUseCase(walletDeps, settings, consolidateUseCase),
			Sweep:        use_cases.NewTakeFeesAndSweepUseCase(walletDeps, settings),
		}, callbacks, httpLogger),
		BalancesController: controllers.NewBalancesController(
			use_cases.NewGetTotalTokenAmountUseCase(balanceDeps, userRepository),
			use_cases.NewGetTotalFromAddressesUseCase(balanceDeps),
			settings.FeeAddresses,
			httpLogger,
		),
	})

	return Container{
		Database:                     databasePool,
		Server:                       httpserver.New(cfg.Address(), router, logger.Named("server")),
		InitializePersistenceUseCase: initializePersistenceUseCase,
		ConsolidationWorker:          consolidationWorker,
	}, nil
}
