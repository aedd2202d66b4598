package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/pkg/asaas"
	"github.com/bolaohub/bolao-api/internal/repository"
)

var (
	ErrPaymentNotFound   = repository.ErrPaymentNotFound
	ErrDiscountNotFound  = repository.ErrDiscountNotFound
	ErrDiscountNotUsable = errors.New("discount is not usable")
	ErrParticipationPaid = errors.New("participation is already paid")
)

// Webhook events that confirm a Pix charge.
const (
	WebhookPaymentConfirmed = "PAYMENT_CONFIRMED"
	WebhookPaymentReceived  = "PAYMENT_RECEIVED"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	Update(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (domain.Payment, error)
	ListByUserID(ctx context.Context, userID uint) ([]domain.Payment, error)
	SumPaidByContestID(ctx context.Context, contestID uint) (float64, error)
}

type PaymentParticipationRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Participation, error)
	Update(ctx context.Context, participation domain.Participation) (domain.Participation, error)
}

type PaymentContestRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
}

type PaymentDiscountRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Discount, error)
	IncrementUses(ctx context.Context, id uint) error
}

// PixGateway is the payment provider surface the service needs.
type PixGateway interface {
	CreatePixCharge(ctx context.Context, req asaas.ChargeRequest) (*asaas.Charge, error)
	GetPixQRCode(ctx context.Context, chargeID string) (*asaas.PixQRCode, error)
}

type PaymentService struct {
	repo              PaymentRepository
	participationRepo PaymentParticipationRepository
	contestRepo       PaymentContestRepository
	discountRepo      PaymentDiscountRepository
	gateway           PixGateway
}

func NewPaymentService(
	repo PaymentRepository,
	participationRepo PaymentParticipationRepository,
	contestRepo PaymentContestRepository,
	discountRepo PaymentDiscountRepository,
	gateway PixGateway,
) *PaymentService {
	return &PaymentService{
		repo:              repo,
		participationRepo: participationRepo,
		contestRepo:       contestRepo,
		discountRepo:      discountRepo,
		gateway:           gateway,
	}
}

type Charge struct {
	Payment   domain.Payment
	QRPayload string
	QRImage   string
}

// CreateCharge opens a Pix charge for a pending participation, applying an
// optional discount code.
func (s *PaymentService) CreateCharge(ctx context.Context, participationID, userID uint, discountCode string) (Charge, error) {
	participation, err := s.participationRepo.FindByID(ctx, participationID)
	if err != nil {
		return Charge{}, fmt.Errorf("s.participationRepo.FindByID -> %w", err)
	}

	if participation.UserID != userID {
		return Charge{}, ErrParticipationNotOwned
	}

	if participation.Status != domain.ParticipationPending {
		return Charge{}, ErrParticipationPaid
	}

	contest, err := s.contestRepo.FindByID(ctx, participation.ContestID)
	if err != nil {
		return Charge{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	amount := contest.ParticipationValue
	var discount *domain.Discount
	if discountCode != "" {
		found, err := s.discountRepo.FindByCode(ctx, discountCode)
		if err != nil {
			return Charge{}, fmt.Errorf("s.discountRepo.FindByCode -> %w", err)
		}

		if !found.IsUsable(time.Now(), participation.ContestID) {
			return Charge{}, ErrDiscountNotUsable
		}

		amount = found.Apply(amount)
		discount = &found
	}

	dueDate := time.Now().Add(24 * time.Hour)
	charge, err := s.gateway.CreatePixCharge(ctx, asaas.ChargeRequest{
		Value:             amount,
		DueDate:           dueDate.Format("2006-01-02"),
		Description:       fmt.Sprintf("%v - %v", contest.Name, participation.TicketCode),
		ExternalReference: participation.TicketCode,
	})
	if err != nil {
		return Charge{}, fmt.Errorf("s.gateway.CreatePixCharge -> %w", err)
	}

	payment := domain.Payment{
		ParticipationID: participation.ID,
		ContestID:       participation.ContestID,
		UserID:          userID,
		ExternalID:      charge.ID,
		Amount:          amount,
		DiscountCode:    discountCode,
		Status:          domain.PaymentPending,
		DueDate:         dueDate,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return Charge{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if discount != nil {
		if err := s.discountRepo.IncrementUses(ctx, discount.ID); err != nil {
			zap.L().Warn("failed to increment discount uses",
				zap.Uint("discountID", discount.ID),
				zap.Error(err),
			)
		}
	}

	qr, err := s.gateway.GetPixQRCode(ctx, charge.ID)
	if err != nil {
		return Charge{}, fmt.Errorf("s.gateway.GetPixQRCode -> %w", err)
	}

	return Charge{
		Payment:   created,
		QRPayload: qr.Payload,
		QRImage:   qr.EncodedImage,
	}, nil
}

// ProcessWebhook confirms a charge on PAYMENT_CONFIRMED or PAYMENT_RECEIVED
// and activates the paid participation. Repeated deliveries of the same
// event are no-ops.
func (s *PaymentService) ProcessWebhook(ctx context.Context, event, externalID string) error {
	if event != WebhookPaymentConfirmed && event != WebhookPaymentReceived {
		zap.L().Info("ignoring webhook event", zap.String("event", event))
		return nil
	}

	payment, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByExternalID -> %w", err)
	}

	if payment.IsPaid() {
		return nil
	}

	now := time.Now()
	payment.Status = domain.PaymentPaid
	payment.PaidAt = &now

	if _, err := s.repo.Update(ctx, payment); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	participation, err := s.participationRepo.FindByID(ctx, payment.ParticipationID)
	if err != nil {
		return fmt.Errorf("s.participationRepo.FindByID -> %w", err)
	}

	if participation.Status == domain.ParticipationPending {
		participation.Status = domain.ParticipationActive
		if _, err := s.participationRepo.Update(ctx, participation); err != nil {
			return fmt.Errorf("s.participationRepo.Update -> %w", err)
		}
	}

	zap.L().Info("payment confirmed",
		zap.String("externalID", externalID),
		zap.Uint("participationID", payment.ParticipationID),
	)

	return nil
}

func (s *PaymentService) ListByUser(ctx context.Context, userID uint) ([]domain.Payment, error) {
	payments, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUserID -> %w", err)
	}

	return payments, nil
}

// TotalRevenue sums confirmed payments for a contest.
func (s *PaymentService) TotalRevenue(ctx context.Context, contestID uint) (float64, error) {
	total, err := s.repo.SumPaidByContestID(ctx, contestID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.SumPaidByContestID -> %w", err)
	}

	return total, nil
}
