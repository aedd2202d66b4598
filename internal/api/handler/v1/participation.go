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

type ParticipationService interface {
	CreateParticipation(ctx context.Context, participation domain.Participation) (domain.Participation, error)
	GetParticipation(ctx context.Context, id uint) (domain.Participation, error)
	ListByContest(ctx context.Context, contestID uint) ([]domain.Participation, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Participation, error)
	CancelParticipation(ctx context.Context, id, userID uint) (domain.Participation, error)
}

type ParticipationHandler struct {
	svc  ParticipationService
	uSvc UserService
}

func NewParticipationHandler(svc ParticipationService, uSvc UserService) *ParticipationHandler {
	return &ParticipationHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateParticipation godoc
// @Summary      Buy a ticket for a contest
// @Tags         participations
// @Produce      json
// @Param        request   body      request.CreateParticipationRequest true "request body"
// @Success      201 {object} domain.Participation
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /participations [post]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleCreateParticipation(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateParticipation(ctx.Request.Context(), domain.Participation{
		ContestID: req.ContestID,
		UserID:    user.ID,
		Numbers:   req.Numbers,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrContestNotAccepting),
			errors.Is(err, service.ErrWrongNumbersCount),
			errors.Is(err, service.ErrNumbersOutOfRange),
			errors.Is(err, service.ErrNumbersDuplicate):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateParticipation -> h.svc.CreateParticipation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListMyParticipations godoc
// @Summary      List the authenticated user's tickets
// @Tags         participations
// @Produce      json
// @Success      200 {array} domain.Participation
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /participations [get]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleListMyParticipations(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participations, err := h.svc.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyParticipations -> h.svc.ListByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participations)
}

// HandleListContestParticipations godoc
// @Summary      List all tickets of a contest (admin only)
// @Tags         participations
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Success      200 {array} domain.Participation
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/participations [get]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleListContestParticipations(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	participations, err := h.svc.ListByContest(ctx.Request.Context(), contestID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListContestParticipations -> h.svc.ListByContest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participations)
}

// HandleCancelParticipation godoc
// @Summary      Cancel an unpaid ticket
// @Tags         participations
// @Produce      json
// @Param        participationID path      int true "participation ID"
// @Success      200 {object} domain.Participation
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /participations/{participationID}/cancel [post]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleCancelParticipation(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participationID, ok := parseIDParam(ctx, "participationID")
	if !ok {
		return
	}

	cancelled, err := h.svc.CancelParticipation(ctx.Request.Context(), participationID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipationNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipationNotFound))
		case errors.Is(err, service.ErrParticipationNotOwned):
			response.RenderErr(ctx, response.ErrPermissionDenied())
		case errors.Is(err, service.ErrParticipationNotActive):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCancelParticipation -> h.svc.CancelParticipation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, cancelled)
}
