// Billing handlers: проксирование Stripe и Paddle с минимальным reshaping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/billing"
	"github.com/writerai/backend/internal/response"
	"github.com/writerai/backend/internal/supabase"
)

type portalSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// StripePortal — POST /billing/stripe/portal {userId} → {url}.
// Stripe customer id берётся из профиля пользователя в data API.
func StripePortal(stripeSvc *billing.StripeService, supa *supabase.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req portalSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "userId is required")
			return
		}

		profile, err := supa.ProfileByID(c.Request.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, supabase.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "profile not found")
				return
			}
			log.Error("portal profile lookup failed", zap.String("user_id", req.UserID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if profile.StripeCustomerID == "" {
			response.Error(c, http.StatusBadRequest, "no billing account for user")
			return
		}

		url, err := stripeSvc.PortalSession(c.Request.Context(), profile.StripeCustomerID)
		if err != nil {
			log.Error("stripe portal session failed", zap.String("user_id", req.UserID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, gin.H{"url": url})
	}
}

// StripePrice — GET /billing/stripe/price?priceId= → объект цены провайдера.
func StripePrice(stripeSvc *billing.StripeService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		priceID := c.Query("priceId")
		if priceID == "" {
			response.Error(c, http.StatusBadRequest, "priceId is required")
			return
		}
		price, err := stripeSvc.Price(c.Request.Context(), priceID)
		if err != nil {
			log.Error("stripe price lookup failed", zap.String("price_id", priceID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, gin.H{"price": price})
	}
}

// StripeConfig — GET /billing/stripe/config: публичные идентификаторы (без секретов).
func StripeConfig(stripeSvc *billing.StripeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{"publishableKey": stripeSvc.PublishableKey()})
	}
}

// PaddlePrice — GET /billing/paddle/price?priceId= → объект цены провайдера.
func PaddlePrice(paddle *billing.PaddleClient, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		priceID := c.Query("priceId")
		if priceID == "" {
			response.Error(c, http.StatusBadRequest, "priceId is required")
			return
		}
		price, err := paddle.Price(c.Request.Context(), priceID)
		if err != nil {
			log.Error("paddle price lookup failed", zap.String("price_id", priceID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, gin.H{"price": price})
	}
}

// PaddleConfig — GET /billing/paddle/config: публичные идентификаторы Paddle.
func PaddleConfig(paddle *billing.PaddleClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{"config": paddle.Config()})
	}
}
