package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/request"
	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/service"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	DeactivateDiscount(ctx context.Context, code string) (domain.Discount, error)
	ListDiscounts(ctx context.Context) ([]domain.Discount, error)
	PreviewDiscount(ctx context.Context, code string, contestID uint, amount float64) (float64, error)
}

type DiscountHandler struct {
	svc  DiscountService
	uSvc UserService
}

func NewDiscountHandler(svc DiscountService, uSvc UserService) *DiscountHandler {
	return &DiscountHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateDiscount godoc
// @Summary      Create a discount code (admin only)
// @Tags         discounts
// @Produce      json
// @Param        request   body      request.CreateDiscountRequest true "request body"
// @Success      201 {object} domain.Discount
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /discounts [post]
// @Security     BearerAuth
func (h *DiscountHandler) HandleCreateDiscount(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	var req request.CreateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateDiscount(ctx.Request.Context(), domain.Discount{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.DiscountType(req.Type),
		Value:       req.Value,
		ContestID:   req.ContestID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxUses:     req.MaxUses,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiscountCodeExists),
			errors.Is(err, service.ErrDiscountValueRange),
			errors.Is(err, service.ErrDiscountWindow),
			errors.Is(err, service.ErrDiscountWrongType),
			errors.Is(err, service.ErrDiscountZeroMaxUses):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateDiscount -> h.svc.CreateDiscount -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeactivateDiscount godoc
// @Summary      Deactivate a discount code (admin only)
// @Tags         discounts
// @Produce      json
// @Param        code path      string true "discount code"
// @Success      200 {object} domain.Discount
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /discounts/{code} [delete]
// @Security     BearerAuth
func (h *DiscountHandler) HandleDeactivateDiscount(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	updated, err := h.svc.DeactivateDiscount(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDiscountNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDeactivateDiscount -> h.svc.DeactivateDiscount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleListDiscounts godoc
// @Summary      List discount codes (admin only)
// @Tags         discounts
// @Produce      json
// @Success      200 {array} domain.Discount
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /discounts [get]
// @Security     BearerAuth
func (h *DiscountHandler) HandleListDiscounts(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	discounts, err := h.svc.ListDiscounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListDiscounts -> h.svc.ListDiscounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, discounts)
}

// HandlePreviewDiscount godoc
// @Summary      Preview the final price with a discount code
// @Tags         discounts
// @Produce      json
// @Param        request   body      request.PreviewDiscountRequest true "request body"
// @Success      200 {object} map[string]float64
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /discounts/preview [post]
// @Security     BearerAuth
func (h *DiscountHandler) HandlePreviewDiscount(ctx *gin.Context) {
	var req request.PreviewDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	final, err := h.svc.PreviewDiscount(ctx.Request.Context(), req.Code, req.ContestID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiscountNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDiscountNotFound))
		case errors.Is(err, service.ErrDiscountNotUsable):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandlePreviewDiscount -> h.svc.PreviewDiscount -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"final_amount": final})
}
