package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/pkg/asaas"
)

type fakePaymentRepo struct {
	byExternalID map[string]domain.Payment
	created      []domain.Payment
	updates      int
}

func (f *fakePaymentRepo) Create(_ context.Context, p domain.Payment) (domain.Payment, error) {
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, p domain.Payment) (domain.Payment, error) {
	f.updates++
	f.byExternalID[p.ExternalID] = p
	return p, nil
}

func (f *fakePaymentRepo) FindByExternalID(_ context.Context, externalID string) (domain.Payment, error) {
	p, ok := f.byExternalID[externalID]
	if !ok {
		return domain.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) ListByUserID(_ context.Context, _ uint) ([]domain.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) SumPaidByContestID(_ context.Context, _ uint) (float64, error) {
	return 0, nil
}

type fakeDiscountRepo struct {
	byCode     map[string]domain.Discount
	increments int
}

func (f *fakeDiscountRepo) FindByCode(_ context.Context, code string) (domain.Discount, error) {
	d, ok := f.byCode[code]
	if !ok {
		return domain.Discount{}, ErrDiscountNotFound
	}
	return d, nil
}

func (f *fakeDiscountRepo) IncrementUses(_ context.Context, _ uint) error {
	f.increments++
	return nil
}

type fakeGateway struct {
	charges []asaas.ChargeRequest
}

func (f *fakeGateway) CreatePixCharge(_ context.Context, req asaas.ChargeRequest) (*asaas.Charge, error) {
	f.charges = append(f.charges, req)
	return &asaas.Charge{ID: "pay_123", Status: "PENDING", Value: req.Value}, nil
}

func (f *fakeGateway) GetPixQRCode(_ context.Context, chargeID string) (*asaas.PixQRCode, error) {
	return &asaas.PixQRCode{Payload: "00020126", EncodedImage: "iVBOR"}, nil
}

func newPaymentFixture() (*PaymentService, *fakePaymentRepo, *fakeParticipationRepo, *fakeDiscountRepo, *fakeGateway) {
	paymentRepo := &fakePaymentRepo{byExternalID: map[string]domain.Payment{}}
	participationRepo := &fakeParticipationRepo{
		byID: map[uint]domain.Participation{
			1: {ID: 1, ContestID: 1, UserID: 10, TicketCode: "TKT-20250301-AAAAAA", Status: domain.ParticipationPending},
		},
	}
	discountRepo := &fakeDiscountRepo{
		byCode: map[string]domain.Discount{
			"PROMO10": {
				ID:        5,
				Code:      "PROMO10",
				Type:      domain.DiscountPercentage,
				Value:     10,
				StartDate: time.Now().Add(-time.Hour),
				EndDate:   time.Now().Add(time.Hour),
				IsActive:  true,
			},
		},
	}
	gateway := &fakeGateway{}
	svc := NewPaymentService(paymentRepo, participationRepo, &fakeContestRepo{contest: acceptingContest()}, discountRepo, gateway)

	return svc, paymentRepo, participationRepo, discountRepo, gateway
}

func TestPaymentService_CreateCharge(t *testing.T) {
	svc, paymentRepo, _, _, gateway := newPaymentFixture()

	charge, err := svc.CreateCharge(context.Background(), 1, 10, "")
	require.NoError(t, err)

	assert.Equal(t, "pay_123", charge.Payment.ExternalID)
	assert.InDelta(t, 50, charge.Payment.Amount, 1e-9)
	assert.Equal(t, domain.PaymentPending, charge.Payment.Status)
	assert.Equal(t, "00020126", charge.QRPayload)
	require.Len(t, gateway.charges, 1)
	assert.Equal(t, "TKT-20250301-AAAAAA", gateway.charges[0].ExternalReference)
	require.Len(t, paymentRepo.created, 1)
}

func TestPaymentService_CreateCharge_WithDiscount(t *testing.T) {
	svc, _, _, discountRepo, gateway := newPaymentFixture()

	charge, err := svc.CreateCharge(context.Background(), 1, 10, "PROMO10")
	require.NoError(t, err)

	assert.InDelta(t, 45, charge.Payment.Amount, 1e-9)
	assert.InDelta(t, 45, gateway.charges[0].Value, 1e-9)
	assert.Equal(t, 1, discountRepo.increments)
}

func TestPaymentService_CreateCharge_Rejections(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentFixture()
		_, err := svc.CreateCharge(context.Background(), 1, 99, "")
		assert.ErrorIs(t, err, ErrParticipationNotOwned)
	})

	t.Run("unknown discount", func(t *testing.T) {
		svc, _, _, _, _ := newPaymentFixture()
		_, err := svc.CreateCharge(context.Background(), 1, 10, "NOPE")
		assert.ErrorIs(t, err, ErrDiscountNotFound)
	})

	t.Run("already active participation", func(t *testing.T) {
		svc, _, participationRepo, _, _ := newPaymentFixture()
		p := participationRepo.byID[1]
		p.Status = domain.ParticipationActive
		participationRepo.byID[1] = p

		_, err := svc.CreateCharge(context.Background(), 1, 10, "")
		assert.ErrorIs(t, err, ErrParticipationPaid)
	})
}

func TestPaymentService_ProcessWebhook(t *testing.T) {
	svc, paymentRepo, participationRepo, _, _ := newPaymentFixture()

	_, err := svc.CreateCharge(context.Background(), 1, 10, "")
	require.NoError(t, err)
	paymentRepo.byExternalID["pay_123"] = paymentRepo.created[0]

	require.NoError(t, svc.ProcessWebhook(context.Background(), WebhookPaymentConfirmed, "pay_123"))

	confirmed := paymentRepo.byExternalID["pay_123"]
	assert.Equal(t, domain.PaymentPaid, confirmed.Status)
	require.NotNil(t, confirmed.PaidAt)

	require.Len(t, participationRepo.updated, 1)
	assert.Equal(t, domain.ParticipationActive, participationRepo.updated[0].Status)
}

func TestPaymentService_ProcessWebhook_Idempotent(t *testing.T) {
	svc, paymentRepo, participationRepo, _, _ := newPaymentFixture()

	_, err := svc.CreateCharge(context.Background(), 1, 10, "")
	require.NoError(t, err)
	paymentRepo.byExternalID["pay_123"] = paymentRepo.created[0]

	require.NoError(t, svc.ProcessWebhook(context.Background(), WebhookPaymentConfirmed, "pay_123"))
	updatesAfterFirst := paymentRepo.updates

	// A redelivered event changes nothing.
	require.NoError(t, svc.ProcessWebhook(context.Background(), WebhookPaymentReceived, "pay_123"))
	assert.Equal(t, updatesAfterFirst, paymentRepo.updates)
	assert.Len(t, participationRepo.updated, 1)
}

func TestPaymentService_ProcessWebhook_IgnoresOtherEvents(t *testing.T) {
	svc, paymentRepo, _, _, _ := newPaymentFixture()

	require.NoError(t, svc.ProcessWebhook(context.Background(), "PAYMENT_OVERDUE", "pay_123"))
	assert.Zero(t, paymentRepo.updates)
}
