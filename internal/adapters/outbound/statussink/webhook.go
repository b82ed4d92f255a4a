package statussink

import (
	"bytes"
	"context"
	"crypto/hmac"
	cryptorand "crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	portsout "alphtip/internal/application/ports/out"
	apperrors "alphtip/internal/shared_kernel/errors"
)

const (
	defaultHTTPTimeout = 5 * time.Second
	maxErrorBodyBytes  = 1024
	nonceByteLength    = 16

	HeaderTimestamp = "X-AlphTip-Timestamp"
	HeaderNonce     = "X-AlphTip-Nonce"
	HeaderSignature = "X-AlphTip-Signature"
)

type statusPayload struct {
	Text   string `json:"text"`
	SentAt string `json:"sent_at"`
}

// WebhookSink posts every status update to a caller-supplied URL, signed with the
// shared HMAC secret.
type WebhookSink struct {
	destinationURL string
	hmacSecret     string
	client         *nethttp.Client
	now            func() time.Time
}

var _ portsout.StatusSink = (*WebhookSink)(nil)

func NewWebhookSink(destinationURL string, hmacSecret string, client *nethttp.Client) *WebhookSink {
	if client == nil {
		client = &nethttp.Client{Timeout: defaultHTTPTimeout}
	}
	return &WebhookSink{
		destinationURL: strings.TrimSpace(destinationURL),
		hmacSecret:     strings.TrimSpace(hmacSecret),
		client:         client,
		now:            time.Now,
	}
}

func (s *WebhookSink) OnUpdate(ctx context.Context, text string) error {
	if s.destinationURL == "" {
		return apperrors.NewValidation(
			"status_callback_missing",
			"status callback url is required",
			map[string]any{"field": "status_callback_url"},
		)
	}
	if s.hmacSecret == "" {
		return apperrors.NewInternal(
			"status_webhook_hmac_secret_missing",
			"status webhook hmac secret is missing",
			nil,
		)
	}

	sentAt := s.now().UTC()
	body, err := json.Marshal(statusPayload{Text: text, SentAt: sentAt.Format(time.RFC3339)})
	if err != nil {
		return apperrors.NewInternal("status_payload_encode_failed", "failed to encode status payload", nil).WithCause(err)
	}
	timestamp := strconv.FormatInt(sentAt.Unix(), 10)
	nonce, err := webhookNonce()
	if err != nil {
		return apperrors.NewInternal("status_nonce_generation_failed", "failed to generate webhook nonce", nil).WithCause(err)
	}

	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, s.destinationURL, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewInternal("status_request_build_failed", "failed to build status request", nil).WithCause(err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(HeaderTimestamp, timestamp)
	request.Header.Set(HeaderNonce, nonce)
	request.Header.Set(HeaderSignature, SignatureHeader(s.hmacSecret, timestamp, nonce, body))

	response, err := s.client.Do(request)
	if err != nil {
		return apperrors.NewUnavailable(
			"status_delivery_failed",
			"failed to send status update",
			map[string]any{"error": err.Error()},
		).WithCause(err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		bodyPreview := ""
		raw, readErr := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		if readErr == nil {
			bodyPreview = strings.TrimSpace(string(raw))
		}
		return apperrors.NewUnavailable(
			"status_delivery_failed",
			"status callback returned non-2xx status",
			map[string]any{"status_code": response.StatusCode, "body": bodyPreview},
		)
	}
	return nil
}

func webhookNonce() (string, error) {
	raw := make([]byte, nonceByteLength)
	if _, err := cryptorand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// SignatureHeader is the value receivers should compare against HeaderSignature.
func SignatureHeader(secret string, timestamp string, nonce string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(timestamp))
	_, _ = mac.Write([]byte("."))
	_, _ = mac.Write([]byte(nonce))
	_, _ = mac.Write([]byte("."))
	_, _ = mac.Write(body)
	return fmt.Sprintf("sha256=%s", hex.EncodeToString(mac.Sum(nil)))
}
