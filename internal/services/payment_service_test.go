package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	ps := NewPaymentService(nil, nil, "whsec_test")

	err := ps.HandleWebhook(context.Background(), []byte(`{"type":"payment_intent.succeeded"}`), "t=1,v1=bogus")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestCreatePaymentIntentRejectsNilOrder(t *testing.T) {
	ps := NewPaymentService(nil, nil, "whsec_test")

	_, err := ps.CreatePaymentIntent(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, models.ErrValidation)
}
