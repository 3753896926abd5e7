package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // request signing scheme mandated by the provider
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"proxymarket/internal/adapter/config"
	"proxymarket/internal/core/port"
)

const requestTimeout = 15 * time.Second

// Client talks to the Cryptomus merchant API. Requests are signed with an
// HMAC-MD5 over the base64 of the JSON body, sent in the "sign" header.
type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	merchantID string
	apiKey     string
}

func NewClient(cfg *config.Payment, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:     log,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
	}, nil
}

type createPaymentBody struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	OrderID     string `json:"order_id"`
	Merchant    string `json:"merchant"`
	URLCallback string `json:"url_callback"`
	Lifetime    int    `json:"lifetime"`
}

type cancelPaymentBody struct {
	UUID     string `json:"uuid"`
	Merchant string `json:"merchant"`
}

type apiResponse struct {
	State   int             `json:"state"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type paymentResult struct {
	UUID string `json:"uuid"`
	URL  string `json:"url"`
}

func (c *Client) CreatePayment(ctx context.Context, req port.CreatePaymentRequest) (*port.PaymentIntent, error) {
	body := createPaymentBody{
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		OrderID:     req.OrderID,
		Merchant:    c.merchantID,
		URLCallback: req.CallbackURL,
		Lifetime:    3600,
	}

	var result paymentResult
	err := c.post(ctx, "/payment", body, &result)
	if err != nil {
		return nil, err
	}

	if result.UUID == "" || result.URL == "" {
		return nil, fmt.Errorf("incomplete payment response: uuid=%q url=%q", result.UUID, result.URL)
	}

	c.logger.Info("payment created",
		zap.String("order", req.OrderID),
		zap.String("uuid", result.UUID))

	return &port.PaymentIntent{
		ExternalID: result.UUID,
		PayURL:     result.URL,
	}, nil
}

func (c *Client) CancelPayment(ctx context.Context, externalID string) error {
	body := cancelPaymentBody{
		UUID:     externalID,
		Merchant: c.merchantID,
	}

	err := c.post(ctx, "/payment/cancel", body, nil)
	if err != nil {
		return err
	}

	c.logger.Info("payment cancelled", zap.String("uuid", externalID))
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding request body: %w", err)
	}

	requestStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("merchant", c.merchantID)
	req.Header.Set("sign", c.sign(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var apiResp apiResponse
	err = json.NewDecoder(resp.Body).Decode(&apiResp)
	if err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	if apiResp.State != 0 {
		return fmt.Errorf("payment api error: %s", apiResp.Message)
	}

	if result != nil {
		err = json.Unmarshal(apiResp.Result, result)
		if err != nil {
			return fmt.Errorf("error on result decode: %w", err)
		}
	}
	return nil
}

func (c *Client) sign(payload []byte) string {
	encoded := base64.StdEncoding.EncodeToString(payload)
	mac := hmac.New(md5.New, []byte(c.apiKey))
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
