package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"findmylocal/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount      = errors.New("amount must be a positive number of minor units")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// Gateway creates payment orders at an external provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*models.Order, error)
	PublishableKey() string
}

type PaymentService interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	PublishableKey() string
}

// DefaultPaymentService validates requests before handing them to the gateway.
type DefaultPaymentService struct {
	Gateway  Gateway
	Currency string
	Logger   *zap.Logger
}

func NewPaymentService(gateway Gateway, currency string, logger *zap.Logger) *DefaultPaymentService {
	if currency == "" {
		currency = "inr"
	}
	return &DefaultPaymentService{Gateway: gateway, Currency: strings.ToLower(currency), Logger: logger}
}

func (s *DefaultPaymentService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	order, err := s.Gateway.CreateOrder(ctx, req.Amount, s.Currency)
	if err != nil {
		s.Logger.Error("Failed to create payment order", zap.Int64("amount", req.Amount), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	s.Logger.Info("Payment order created", zap.String("orderId", order.ID), zap.Int64("amount", order.Amount))
	return order, nil
}

func (s *DefaultPaymentService) PublishableKey() string {
	return s.Gateway.PublishableKey()
}

// StripeGateway creates Stripe PaymentIntents.
type StripeGateway struct {
	api            *client.API
	publishableKey string
}

// NewStripeGateway builds a gateway on secretKey. backends may be nil for the
// default Stripe endpoints.
func NewStripeGateway(secretKey, publishableKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends), publishableKey: publishableKey}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*models.Order, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &models.Order{
		ID:       pi.ID,
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Status:   string(pi.Status),
	}, nil
}

func (g *StripeGateway) PublishableKey() string {
	return g.publishableKey
}

// LocalGateway issues orders without contacting a provider, for development.
type LocalGateway struct {
	Key string
}

func (g *LocalGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*models.Order, error) {
	return &models.Order{
		ID:       "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:   amount,
		Currency: currency,
		Status:   "created",
	}, nil
}

func (g *LocalGateway) PublishableKey() string {
	return g.Key
}
