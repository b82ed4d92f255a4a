package statussink

import (
	nethttp "net/http"
	"strings"
	"time"

	portsout "alphtip/internal/application/ports/out"

	"go.uber.org/zap"
)

type FactoryConfig struct {
	HMACSecret string
	Timeout    time.Duration
}

// Factory picks a webhook sink when the caller asked for callbacks and the log sink
// otherwise.
type Factory struct {
	hmacSecret string
	client     *nethttp.Client
	fallback   *LogSink
}

var _ portsout.StatusSinkFactory = (*Factory)(nil)

func NewFactory(cfg FactoryConfig, logger *zap.Logger) *Factory {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Factory{
		hmacSecret: strings.TrimSpace(cfg.HMACSecret),
		client:     &nethttp.Client{Timeout: timeout},
		fallback:   NewLogSink(logger),
	}
}

func (f *Factory) ForCallback(callbackURL string) portsout.StatusSink {
	if strings.TrimSpace(callbackURL) == "" {
		return f.fallback
	}
	return NewWebhookSink(callbackURL, f.hmacSecret, f.client)
}
