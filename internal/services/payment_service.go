package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
	"github.com/stripe/stripe-go/webhook"
)

type PaymentService struct {
	paymentsRepo  models.PaymentsRepo
	ordersRepo    models.OrdersRepo
	webhookSecret string
}

func NewPaymentService(paymentsRepo models.PaymentsRepo, ordersRepo models.OrdersRepo, webhookSecret string) *PaymentService {
	return &PaymentService{
		paymentsRepo:  paymentsRepo,
		ordersRepo:    ordersRepo,
		webhookSecret: webhookSecret,
	}
}

type PaymentIntentResult struct {
	Payment      *models.Payment `json:"payment"`
	ClientSecret string          `json:"client_secret"`
}

// CreatePaymentIntent opens a Stripe PaymentIntent for a pending order and
// records the Payment row. The idempotency key is derived from the order ID,
// so a client retry after a dropped response cannot open a second intent.
func (ps *PaymentService) CreatePaymentIntent(ctx context.Context, orderId uuid.UUID) (*PaymentIntentResult, error) {
	if orderId == uuid.Nil {
		return nil, validationError("invalid order ID")
	}

	order, err := ps.ordersRepo.GetOrder(ctx, orderId)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderPendingPayment {
		return nil, validationError("order is not awaiting payment (status %s)", order.Status)
	}

	amountCents := order.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()
	if amountCents <= 0 {
		return nil, validationError("amount must be greater than 0")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.SetIdempotencyKey("order-" + order.ID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %v", err)
	}

	payment, err := ps.paymentsRepo.CreatePayment(ctx, &models.Payment{
		OrderId:       order.ID,
		Amount:        order.TotalAmount,
		Status:        models.PaymentPending,
		Method:        "card",
		TransactionID: pi.ID,
	})
	if err != nil {
		return nil, err
	}

	return &PaymentIntentResult{
		Payment:      payment,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (ps *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid payment ID")
	}
	return ps.paymentsRepo.GetPayment(ctx, id)
}

// HandleWebhook verifies the Stripe signature and applies the event:
// a succeeded intent marks the payment succeeded and the order paid, a
// failed intent marks the payment failed.
func (ps *PaymentService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, ps.webhookSecret)
	if err != nil {
		return fmt.Errorf("%w: webhook signature verification failed: %v", models.ErrValidation, err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("failed to decode payment intent: %v", err)
		}
		return ps.applyPaymentSuccess(ctx, pi.ID)
	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("failed to decode payment intent: %v", err)
		}
		payment, err := ps.paymentsRepo.GetPaymentByTransactionID(ctx, pi.ID)
		if err != nil {
			return err
		}
		return ps.paymentsRepo.SetPaymentStatus(ctx, payment.ID, models.PaymentFailed)
	}

	// Unhandled event types are acknowledged, not errors.
	return nil
}

func (ps *PaymentService) applyPaymentSuccess(ctx context.Context, transactionID string) error {
	payment, err := ps.paymentsRepo.GetPaymentByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}
	if payment.Status == models.PaymentSucceeded {
		// Stripe retries webhooks; a duplicate delivery is a no-op.
		return nil
	}
	if err := ps.paymentsRepo.SetPaymentStatus(ctx, payment.ID, models.PaymentSucceeded); err != nil {
		return err
	}
	return ps.ordersRepo.SetOrderStatus(ctx, payment.OrderId, models.OrderPendingPayment, models.OrderPaid)
}
