package config

import (
	stderrors "errors"
	"math/big"
	"net/url"
	"strings"
	"time"

	"alphtip/internal/application/dto"
	"alphtip/internal/domain/entities"
	"alphtip/internal/domain/policies"
	valueobjects "alphtip/internal/domain/value_objects"

	"github.com/kelseyhightower/envconfig"
)

type ConfigError struct {
	Code     string
	Message  string
	Metadata map[string]string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

// environment is the raw process environment. LoadConfig validates it into Config.
type environment struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	OpenAPISpecPath string        `envconfig:"OPENAPI_SPEC_PATH" default:"api/openapi.yaml"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment  bool          `envconfig:"LOG_DEVELOPMENT" default:"false"`
	DevNetwork      bool          `envconfig:"DEV_NETWORK" default:"false"`

	DatabaseURL              string        `envconfig:"DATABASE_URL"`
	MigrationsPath           string        `envconfig:"MIGRATIONS_PATH" default:"internal/adapters/outbound/persistence/postgresql/migrations"`
	DBReadinessTimeout       time.Duration `envconfig:"DB_READINESS_TIMEOUT" default:"30s"`
	DBReadinessRetryInterval time.Duration `envconfig:"DB_READINESS_RETRY_INTERVAL" default:"2s"`

	NodeURL         string        `envconfig:"NODE_URL" default:"http://127.0.0.1:22973"`
	NodeAPIKey      string        `envconfig:"NODE_API_KEY"`
	NodeHTTPTimeout time.Duration `envconfig:"NODE_HTTP_TIMEOUT" default:"30s"`

	WalletMnemonic   string `envconfig:"WALLET_MNEMONIC"`
	WalletPassphrase string `envconfig:"WALLET_PASSPHRASE"`

	OperatorFeesPercent   string   `envconfig:"OPERATOR_FEES_PERCENT" default:"0"`
	OperatorFeeAddresses  []string `envconfig:"OPERATOR_FEE_ADDRESSES"`
	OperatorWalletAddress string   `envconfig:"OPERATOR_WALLET_ADDRESS"`
	MinWithdrawalALPH     string   `envconfig:"MIN_WITHDRAWAL_ALPH" default:"0"`
	MinSweepAllALPH       string   `envconfig:"MIN_SWEEP_ALL_ALPH" default:"0"`

	ConfirmationsInternal    int           `envconfig:"CONFIRMATIONS_INTERNAL" default:"1"`
	ConfirmationsExternal    int           `envconfig:"CONFIRMATIONS_EXTERNAL" default:"1"`
	ConfirmationsInterStage  int           `envconfig:"CONFIRMATIONS_INTER_STAGE" default:"1"`
	ConfirmationPollInterval time.Duration `envconfig:"CONFIRMATION_POLL_INTERVAL" default:"1s"`

	ConsolidationUTXOThreshold  int           `envconfig:"CONSOLIDATION_UTXO_THRESHOLD" default:"50"`
	ConsolidationIncludeMempool bool          `envconfig:"CONSOLIDATION_INCLUDE_MEMPOOL" default:"true"`
	ConsolidationWorkerEnabled  bool          `envconfig:"CONSOLIDATION_WORKER_ENABLED" default:"false"`
	ConsolidationWorkerInterval time.Duration `envconfig:"CONSOLIDATION_WORKER_INTERVAL" default:"1h"`
	ConsolidationWorkerBatch    int           `envconfig:"CONSOLIDATION_WORKER_BATCH_SIZE" default:"50"`

	StatusWebhookHMACSecret    string        `envconfig:"STATUS_WEBHOOK_HMAC_SECRET"`
	StatusWebhookTimeout       time.Duration `envconfig:"STATUS_WEBHOOK_TIMEOUT" default:"5s"`
	StatusCallbackAllowedHosts []string      `envconfig:"STATUS_CALLBACK_ALLOWED_HOSTS"`
}

type Config struct {
	Port            string
	OpenAPISpecPath string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogDevelopment  bool
	DevNetwork      bool

	DatabaseURL              string
	DatabaseTarget           string
	DBReadinessTimeout       time.Duration
	DBReadinessRetryInterval time.Duration
	MigrationsPath           string

	NodeURL         string
	NodeAPIKey      string
	NodeHTTPTimeout time.Duration

	WalletMnemonic   string
	WalletPassphrase string

	FeeRate         valueobjects.FeeRate
	FeeAddresses    []string
	OperatorAddress string
	MinWithdrawal   *big.Int
	MinSweepAll     *big.Int

	Confirmations dto.ConfirmationSettings
	Consolidation dto.ConsolidationSettings

	ConsolidationWorkerEnabled   bool
	ConsolidationWorkerInterval  time.Duration
	ConsolidationWorkerBatchSize int

	StatusWebhookHMACSecret    string
	StatusWebhookTimeout       time.Duration
	StatusCallbackAllowedHosts []string
}

func LoadConfig() (Config, *ConfigError) {
	env := environment{}
	if err := envconfig.Process("", &env); err != nil {
		metadata := map[string]string{}
		var parseErr *envconfig.ParseError
		if stderrors.As(err, &parseErr) {
			metadata["key"] = parseErr.KeyName
		}
		return Config{}, &ConfigError{
			Code:     "CONFIG_ENV_INVALID",
			Message:  err.Error(),
			Metadata: metadata,
		}
	}

	databaseURL := strings.TrimSpace(env.DatabaseURL)
	if databaseURL == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_DATABASE_URL_REQUIRED",
			Message: "DATABASE_URL is required",
		}
	}
	databaseTarget, cfgErr := parseDatabaseTarget(databaseURL)
	if cfgErr != nil {
		return Config{}, cfgErr
	}

	mnemonic := strings.TrimSpace(env.WalletMnemonic)
	if mnemonic == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_WALLET_MNEMONIC_REQUIRED",
			Message: "WALLET_MNEMONIC is required",
		}
	}

	nodeURL, cfgErr := parseNodeURL(env.NodeURL)
	if cfgErr != nil {
		return Config{}, cfgErr
	}

	feeRate, appErr := valueobjects.ParseFeePercent(env.OperatorFeesPercent)
	if appErr != nil {
		return Config{}, &ConfigError{
			Code:    "CONFIG_OPERATOR_FEES_PERCENT_INVALID",
			Message: "OPERATOR_FEES_PERCENT must be a percentage between 0 and 100 with at most two decimals",
		}
	}
	feeAddresses, cfgErr := parseFeeAddresses(env.OperatorFeeAddresses, feeRate)
	if cfgErr != nil {
		return Config{}, cfgErr
	}

	operatorAddress := strings.TrimSpace(env.OperatorWalletAddress)
	if operatorAddress != "" {
		if _, appErr := valueobjects.ParseAddress(operatorAddress); appErr != nil {
			return Config{}, &ConfigError{
				Code:    "CONFIG_OPERATOR_WALLET_ADDRESS_INVALID",
				Message: "OPERATOR_WALLET_ADDRESS is not a valid address",
			}
		}
	}

	minWithdrawal, cfgErr := parseALPH("MIN_WITHDRAWAL_ALPH", env.MinWithdrawalALPH)
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	minSweepAll, cfgErr := parseALPH("MIN_SWEEP_ALL_ALPH", env.MinSweepAllALPH)
	if cfgErr != nil {
		return Config{}, cfgErr
	}

	for key, value := range map[string]int{
		"CONFIRMATIONS_INTERNAL":    env.ConfirmationsInternal,
		"CONFIRMATIONS_EXTERNAL":    env.ConfirmationsExternal,
		"CONFIRMATIONS_INTER_STAGE": env.ConfirmationsInterStage,
	} {
		if value < 1 {
			return Config{}, &ConfigError{
				Code:     "CONFIG_CONFIRMATIONS_INVALID",
				Message:  key + " must be at least 1",
				Metadata: map[string]string{"key": key},
			}
		}
	}
	if env.ConfirmationPollInterval <= 0 {
		return Config{}, &ConfigError{
			Code:    "CONFIG_CONFIRMATION_POLL_INTERVAL_INVALID",
			Message: "CONFIRMATION_POLL_INTERVAL must be positive",
		}
	}

	if env.ConsolidationWorkerEnabled && (env.ConsolidationWorkerInterval <= 0 || env.ConsolidationWorkerBatch <= 0) {
		return Config{}, &ConfigError{
			Code:    "CONFIG_CONSOLIDATION_WORKER_INVALID",
			Message: "CONSOLIDATION_WORKER_INTERVAL and CONSOLIDATION_WORKER_BATCH_SIZE must be positive",
		}
	}

	allowedHosts := trimAll(env.StatusCallbackAllowedHosts)
	hmacSecret := strings.TrimSpace(env.StatusWebhookHMACSecret)
	if len(allowedHosts) > 0 && hmacSecret == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_STATUS_WEBHOOK_HMAC_SECRET_REQUIRED",
			Message: "STATUS_WEBHOOK_HMAC_SECRET is required when STATUS_CALLBACK_ALLOWED_HOSTS is set",
		}
	}

	return Config{
		Port:                     env.Port,
		OpenAPISpecPath:          env.OpenAPISpecPath,
		ShutdownTimeout:          env.ShutdownTimeout,
		LogLevel:                 strings.ToLower(strings.TrimSpace(env.LogLevel)),
		LogDevelopment:           env.LogDevelopment,
		DevNetwork:               env.DevNetwork,
		DatabaseURL:              databaseURL,
		DatabaseTarget:           databaseTarget,
		DBReadinessTimeout:       env.DBReadinessTimeout,
		DBReadinessRetryInterval: env.DBReadinessRetryInterval,
		MigrationsPath:           env.MigrationsPath,
		NodeURL:                  nodeURL,
		NodeAPIKey:               strings.TrimSpace(env.NodeAPIKey),
		NodeHTTPTimeout:          env.NodeHTTPTimeout,
		WalletMnemonic:           mnemonic,
		WalletPassphrase:         env.WalletPassphrase,
		FeeRate:                  feeRate,
		FeeAddresses:             feeAddresses,
		OperatorAddress:          operatorAddress,
		MinWithdrawal:            minWithdrawal,
		MinSweepAll:              minSweepAll,
		Confirmations: dto.ConfirmationSettings{
			Internal:     env.ConfirmationsInternal,
			External:     env.ConfirmationsExternal,
			InterStage:   env.ConfirmationsInterStage,
			PollInterval: env.ConfirmationPollInterval,
		},
		Consolidation: dto.ConsolidationSettings{
			UTXOThreshold:  env.ConsolidationUTXOThreshold,
			IncludeMempool: env.ConsolidationIncludeMempool,
		},
		ConsolidationWorkerEnabled:   env.ConsolidationWorkerEnabled,
		ConsolidationWorkerInterval:  env.ConsolidationWorkerInterval,
		ConsolidationWorkerBatchSize: env.ConsolidationWorkerBatch,
		StatusWebhookHMACSecret:      hmacSecret,
		StatusWebhookTimeout:         env.StatusWebhookTimeout,
		StatusCallbackAllowedHosts:   allowedHosts,
	}, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

// WalletSettings is the operator policy handed to the transaction use cases.
func (c Config) WalletSettings() dto.WalletSettings {
	return dto.WalletSettings{
		FeeRate:         c.FeeRate,
		FeeAddresses:    append([]string(nil), c.FeeAddresses...),
		OperatorAddress: c.OperatorAddress,
		Withdrawal: policies.WithdrawalPolicy{
			MinWithdrawal: new(big.Int).Set(c.MinWithdrawal),
			MinSweepAll:   new(big.Int).Set(c.MinSweepAll),
		},
		Confirmations: c.Confirmations,
		Consolidation: c.Consolidation,
		DevNetwork:    c.DevNetwork,
	}
}

func parseDatabaseTarget(databaseURL string) (string, *ConfigError) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_INVALID",
			Message: "DATABASE_URL is invalid",
		}
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
	default:
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_SCHEME_INVALID",
			Message: "DATABASE_URL must use postgres or postgresql scheme",
		}
	}

	if parsed.Host == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_HOST_MISSING",
			Message: "DATABASE_URL host is required",
		}
	}

	databaseName := strings.TrimPrefix(parsed.Path, "/")
	if databaseName == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_NAME_MISSING",
			Message: "DATABASE_URL database name is required",
		}
	}

	return parsed.Host + "/" + databaseName, nil
}

func parseNodeURL(raw string) (string, *ConfigError) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", &ConfigError{
			Code:    "CONFIG_NODE_URL_INVALID",
			Message: "NODE_URL must be an absolute http(s) url",
		}
	}
	return trimmed, nil
}

// parseFeeAddresses accepts one address for every group or exactly one per group,
// indexed by group.
func parseFeeAddresses(raw []string, feeRate valueobjects.FeeRate) ([]string, *ConfigError) {
	addresses := trimAll(raw)
	if len(addresses) == 0 {
		if feeRate.IsZero() {
			return nil, nil
		}
		return nil, &ConfigError{
			Code:    "CONFIG_OPERATOR_FEE_ADDRESSES_REQUIRED",
			Message: "OPERATOR_FEE_ADDRESSES is required when OPERATOR_FEES_PERCENT is not zero",
		}
	}
	if len(addresses) != 1 && len(addresses) != valueobjects.GroupCount {
		return nil, &ConfigError{
			Code:    "CONFIG_OPERATOR_FEE_ADDRESSES_INVALID",
			Message: "OPERATOR_FEE_ADDRESSES must list one address or one address per group",
		}
	}

	for index, address := range addresses {
		parsed, appErr := valueobjects.ParseAddress(address)
		if appErr != nil {
			return nil, &ConfigError{
				Code:     "CONFIG_OPERATOR_FEE_ADDRESSES_INVALID",
				Message:  "OPERATOR_FEE_ADDRESSES contains an invalid address",
				Metadata: map[string]string{"address": address},
			}
		}
		if len(addresses) == valueobjects.GroupCount && parsed.Group() != index {
			return nil, &ConfigError{
				Code:     "CONFIG_OPERATOR_FEE_ADDRESSES_GROUP_MISMATCH",
				Message:  "OPERATOR_FEE_ADDRESSES must be ordered by group",
				Metadata: map[string]string{"address": address},
			}
		}
	}
	return addresses, nil
}

func parseALPH(key string, raw string) (*big.Int, *ConfigError) {
	amount, appErr := valueobjects.ParseDecimalAmount(raw, entities.NativeToken().Decimals)
	if appErr != nil {
		return nil, &ConfigError{
			Code:     "CONFIG_AMOUNT_INVALID",
			Message:  key + " must be a non-negative ALPH amount",
			Metadata: map[string]string{"key": key},
		}
	}
	return amount, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
