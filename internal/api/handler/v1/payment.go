package v1

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/request"
	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/config"
	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/service"
)

type PaymentService interface {
	CreateCharge(ctx context.Context, participationID, userID uint, discountCode string) (service.Charge, error)
	ProcessWebhook(ctx context.Context, event, externalID string) error
	ListByUser(ctx context.Context, userID uint) ([]domain.Payment, error)
}

type PaymentHandler struct {
	conf *config.AsaasConfig
	svc  PaymentService
	uSvc UserService
}

func NewPaymentHandler(conf *config.AsaasConfig, svc PaymentService, uSvc UserService) *PaymentHandler {
	return &PaymentHandler{
		conf: conf,
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateCharge godoc
// @Summary      Open a Pix charge for a pending ticket
// @Tags         payments
// @Produce      json
// @Param        request   body      request.CreateChargeRequest true "request body"
// @Success      201 {object} response.ChargeResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /payments/charge [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleCreateCharge(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateChargeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	charge, err := h.svc.CreateCharge(ctx.Request.Context(), req.ParticipationID, user.ID, req.DiscountCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipationNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipationNotFound))
		case errors.Is(err, service.ErrParticipationNotOwned):
			response.RenderErr(ctx, response.ErrPermissionDenied())
		case errors.Is(err, service.ErrParticipationPaid),
			errors.Is(err, service.ErrDiscountNotFound),
			errors.Is(err, service.ErrDiscountNotUsable):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateCharge -> h.svc.CreateCharge -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.ChargeResponse{
		Payment:   charge.Payment,
		QRPayload: charge.QRPayload,
		QRImage:   charge.QRImage,
	})
}

// HandleWebhook godoc
// @Summary      Receive payment events from the gateway
// @Tags         payments
// @Produce      json
// @Param        request   body      request.WebhookRequest true "request body"
// @Success      200 {object} map[string]string
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(ctx *gin.Context) {
	token := ctx.GetHeader("X-Webhook-Token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.conf.WebhookToken)) != 1 {
		response.RenderErr(ctx, response.ErrUnauthorized())
		return
	}

	var req request.WebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.ProcessWebhook(ctx.Request.Context(), req.Event, req.Payment.ID); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			// Unknown charge. Acknowledge so the gateway stops retrying.
			ctx.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		err = fmt.Errorf("v1.HandleWebhook -> h.svc.ProcessWebhook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "received"})
}

// HandleListMyPayments godoc
// @Summary      List the authenticated user's payments
// @Tags         payments
// @Produce      json
// @Success      200 {array} domain.Payment
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /payments [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleListMyPayments(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	payments, err := h.svc.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyPayments -> h.svc.ListByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}
