package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/writerai/backend/internal/config"
)

// PaddleClient — прямой клиент Paddle Billing API (официального Go SDK нет,
// поэтому гейтвей руками: baseURL, Bearer-ключ, таймаут).
type PaddleClient struct {
	baseURL string
	apiKey  string
	cfg     config.Paddle
	http    *http.Client
}

func NewPaddleClient(cfg config.Paddle) *PaddleClient {
	return &PaddleClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		cfg:     cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// PaddlePrice — публичная часть объекта цены Paddle.
type PaddlePrice struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	UnitPrice   struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currency_code"`
	} `json:"unit_price"`
	BillingCycle *struct {
		Interval  string `json:"interval"`
		Frequency int    `json:"frequency"`
	} `json:"billing_cycle"`
}

type paddleEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// Price возвращает объект цены по id (GET /prices/{id}).
func (c *PaddleClient) Price(ctx context.Context, priceID string) (*PaddlePrice, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("paddle api key is not configured")
	}
	if priceID == "" {
		return nil, fmt.Errorf("paddle: empty price id")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/prices/"+url.PathEscape(priceID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paddle: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paddle http %d: %s", resp.StatusCode, string(raw))
	}

	var env paddleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("paddle decode error: %w", err)
	}
	if env.Error != nil {
		return nil, fmt.Errorf("paddle error %s: %s", env.Error.Code, env.Error.Detail)
	}

	var p PaddlePrice
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return nil, fmt.Errorf("paddle decode error: %w", err)
	}
	return &p, nil
}

// PublicConfig — публичные идентификаторы провайдера для фронта (без секретов).
type PublicConfig struct {
	ClientToken string `json:"clientToken"`
	VendorID    string `json:"vendorId"`
	ProductID   string `json:"productId"`
	PriceID     string `json:"priceId"`
}

// Config возвращает публичную конфигурацию Paddle.
func (c *PaddleClient) Config() PublicConfig {
	return PublicConfig{
		ClientToken: c.cfg.ClientToken,
		VendorID:    c.cfg.VendorID,
		ProductID:   c.cfg.ProductID,
		PriceID:     c.cfg.PriceID,
	}
}
