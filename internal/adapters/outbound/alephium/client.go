package alephium

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxErrorBodyBytes  = 4096
	apiKeyHeader       = "X-API-KEY"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client is a thin REST wrapper over the full node API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) AddressBalance(ctx context.Context, address string, includeMempool bool) (balanceResponse, error) {
	query := url.Values{}
	query.Set("mempool", strconv.FormatBool(includeMempool))

	out := balanceResponse{}
	err := c.do(ctx, http.MethodGet, "/addresses/"+url.PathEscape(address)+"/balance", query, nil, &out)
	return out, err
}

func (c *Client) BuildTransfer(ctx context.Context, request buildTransferRequest) (buildTransferResponse, error) {
	out := buildTransferResponse{}
	err := c.do(ctx, http.MethodPost, "/transactions/build", nil, request, &out)
	return out, err
}

func (c *Client) BuildSweep(ctx context.Context, request buildSweepRequest) (buildSweepResponse, error) {
	out := buildSweepResponse{}
	err := c.do(ctx, http.MethodPost, "/transactions/sweep-address/build", nil, request, &out)
	return out, err
}

func (c *Client) Submit(ctx context.Context, request submitRequest) (submitResponse, error) {
	out := submitResponse{}
	err := c.do(ctx, http.MethodPost, "/transactions/submit", nil, request, &out)
	return out, err
}

func (c *Client) TransactionStatus(ctx context.Context, txID string) (txStatusResponse, error) {
	query := url.Values{}
	query.Set("txId", txID)

	out := txStatusResponse{}
	err := c.do(ctx, http.MethodGet, "/transactions/status", query, nil, &out)
	return out, err
}

func (c *Client) NodeInfo(ctx context.Context) (nodeInfoResponse, error) {
	out := nodeInfoResponse{}
	err := c.do(ctx, http.MethodGet, "/infos/node", nil, nil, &out)
	return out, err
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		request.Header.Set(apiKeyHeader, c.apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := &APIError{StatusCode: response.StatusCode, Method: method, Path: path}
		raw, readErr := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		if readErr == nil {
			decoded := errorResponse{}
			if json.Unmarshal(raw, &decoded) == nil && decoded.Detail != "" {
				apiErr.Detail = decoded.Detail
			} else {
				apiErr.Detail = strings.TrimSpace(string(raw))
			}
		}
		c.logger.Debug("node request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", response.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
