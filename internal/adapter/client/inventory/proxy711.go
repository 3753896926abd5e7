package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"proxymarket/internal/adapter/config"
	"proxymarket/internal/core/port"
)

const requestTimeout = 30 * time.Second

// Client talks to the 711proxy provisioning API.
type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

func NewClient(cfg *config.Inventory, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:     log,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		username:   cfg.Username,
		password:   cfg.Password,
	}, nil
}

type purchaseBody struct {
	ProductID    uint64 `json:"product_id"`
	Quantity     int32  `json:"quantity"`
	DurationDays int32  `json:"duration_days"`
	Country      string `json:"country,omitempty"`
	Format       string `json:"format"`
}

type purchaseResponse struct {
	Success  *bool    `json:"success"`
	Message  string   `json:"message"`
	OrderID  string   `json:"order_id"`
	Proxies  []string `json:"proxies"`
	Username string   `json:"username"`
	Password string   `json:"password"`
}

type revokeResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Purchase(ctx context.Context, req port.PurchaseRequest) (*port.PurchaseResult, error) {
	body := purchaseBody{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		DurationDays: req.DurationDays,
		Country:      strings.ToUpper(req.Country),
		Format:       "ip:port:user:pass",
	}

	var result purchaseResponse
	err := c.do(ctx, http.MethodPost, "/purchase", body, &result)
	if err != nil {
		return nil, err
	}
	if result.Success != nil && !*result.Success {
		return nil, fmt.Errorf("inventory purchase failed: %s", result.Message)
	}

	c.logger.Info("inventory purchased",
		zap.Uint64("product", req.ProductID),
		zap.Int32("quantity", req.Quantity),
		zap.String("provider_order", result.OrderID))

	return &port.PurchaseResult{
		ProviderOrderID: result.OrderID,
		ProxyList:       strings.Join(result.Proxies, "\n"),
		Username:        result.Username,
		Password:        result.Password,
	}, nil
}

func (c *Client) Revoke(ctx context.Context, providerOrderID string) error {
	var result revokeResponse
	err := c.do(ctx, http.MethodDelete, "/orders/"+providerOrderID, nil, &result)
	if err != nil {
		return err
	}
	if result.Success != nil && !*result.Success {
		return fmt.Errorf("inventory revoke failed: %s", result.Message)
	}

	c.logger.Info("inventory revoked", zap.String("provider_order", providerOrderID))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	requestStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, requestStr, reader)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", c.username)
	req.Header.Set("X-Password", c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}
