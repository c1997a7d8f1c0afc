// Package billing — проксирование двух платёжных провайдеров: Stripe через
// официальный SDK и Paddle через прямой HTTP-гейтвей. Минимальный reshaping,
// никакой платёжной логики на нашей стороне.
package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	"github.com/stripe/stripe-go/v79/price"

	"github.com/writerai/backend/internal/config"
)

// StripeService — тонкая обёртка над официальным SDK.
type StripeService struct {
	cfg config.Stripe
}

func NewStripeService(cfg config.Stripe) *StripeService {
	stripe.Key = cfg.SecretKey
	return &StripeService{cfg: cfg}
}

// PortalSession создаёт сессию billing portal для customer и возвращает её URL.
func (s *StripeService) PortalSession(ctx context.Context, customerID string) (string, error) {
	if customerID == "" {
		return "", fmt.Errorf("stripe: empty customer id")
	}
	params := &stripe.BillingPortalSessionParams{
		Customer: stripe.String(customerID),
	}
	if s.cfg.PortalReturnURL != "" {
		params.ReturnURL = stripe.String(s.cfg.PortalReturnURL)
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe portal session: %w", err)
	}
	return sess.URL, nil
}

// PriceInfo — публичная часть объекта цены провайдера.
type PriceInfo struct {
	ID         string `json:"id"`
	Currency   string `json:"currency"`
	UnitAmount int64  `json:"unitAmount"`
	Interval   string `json:"interval,omitempty"`
	ProductID  string `json:"productId,omitempty"`
}

// Price возвращает объект цены по id.
func (s *StripeService) Price(ctx context.Context, priceID string) (*PriceInfo, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx

	p, err := price.Get(priceID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe price: %w", err)
	}

	info := &PriceInfo{
		ID:         p.ID,
		Currency:   string(p.Currency),
		UnitAmount: p.UnitAmount,
	}
	if p.Recurring != nil {
		info.Interval = string(p.Recurring.Interval)
	}
	if p.Product != nil {
		info.ProductID = p.Product.ID
	}
	return info, nil
}

// PublishableKey — публичный идентификатор для фронта (config introspection).
func (s *StripeService) PublishableKey() string {
	return s.cfg.PublishableKey
}
