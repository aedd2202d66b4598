package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/request"
	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/service"
)

type ContestService interface {
	CreateContest(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	UpdateContest(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	ChangeStatus(ctx context.Context, id uint, status domain.ContestStatus) (domain.Contest, error)
	GetContest(ctx context.Context, id uint) (domain.Contest, error)
	GetContestState(ctx context.Context, id uint) (domain.Contest, domain.ContestState, error)
	ListContests(ctx context.Context) ([]domain.Contest, error)
	ListContestsByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error)
}

type ContestHandler struct {
	svc  ContestService
	uSvc UserService
}

func NewContestHandler(svc ContestService, uSvc UserService) *ContestHandler {
	return &ContestHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateContest godoc
// @Summary      Create a contest (admin only)
// @Tags         contests
// @Produce      json
// @Param        request   body      request.CreateContestRequest true "request body"
// @Success      201 {object} domain.Contest
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      422 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests [post]
// @Security     BearerAuth
func (h *ContestHandler) HandleCreateContest(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	var req request.CreateContestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateContest(ctx.Request.Context(), contestFromRequest(req, user.ID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrizeSplit) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
			return
		}
		if errors.Is(err, service.ErrInvalidNumberRange) || errors.Is(err, service.ErrContestWindowInvalid) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateContest -> h.svc.CreateContest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateContest godoc
// @Summary      Update a contest (admin only)
// @Tags         contests
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Param        request   body      request.UpdateContestRequest true "request body"
// @Success      200 {object} domain.Contest
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      422 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID} [put]
// @Security     BearerAuth
func (h *ContestHandler) HandleUpdateContest(ctx *gin.Context) {
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

	var req request.UpdateContestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contest := contestFromRequest(req.CreateContestRequest, user.ID)
	contest.ID = contestID

	updated, err := h.svc.UpdateContest(ctx.Request.Context(), contest)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrInvalidPrizeSplit):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		case errors.Is(err, service.ErrContestNotEditable),
			errors.Is(err, service.ErrInvalidNumberRange),
			errors.Is(err, service.ErrContestWindowInvalid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateContest -> h.svc.UpdateContest -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleChangeContestStatus godoc
// @Summary      Change contest status (admin only)
// @Tags         contests
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Param        request   body      request.ChangeContestStatusRequest true "request body"
// @Success      200 {object} domain.Contest
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/status [patch]
// @Security     BearerAuth
func (h *ContestHandler) HandleChangeContestStatus(ctx *gin.Context) {
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

	var req request.ChangeContestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.ChangeStatus(ctx.Request.Context(), contestID, domain.ContestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleChangeContestStatus -> h.svc.ChangeStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetContest godoc
// @Summary      Get a contest with its display state
// @Tags         contests
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Success      200 {object} response.ContestResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID} [get]
// @Security     BearerAuth
func (h *ContestHandler) HandleGetContest(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	contest, state, err := h.svc.GetContestState(ctx.Request.Context(), contestID)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetContest -> h.svc.GetContestState -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ContestResponse{
		Contest: contest,
		State:   state,
	})
}

// HandleListContests godoc
// @Summary      List contests
// @Tags         contests
// @Produce      json
// @Param        status query string false "filter by status"
// @Success      200 {array} domain.Contest
// @Failure      500 {object} response.Err
// @Router       /contests [get]
// @Security     BearerAuth
func (h *ContestHandler) HandleListContests(ctx *gin.Context) {
	var (
		contests []domain.Contest
		err      error
	)

	if status := ctx.Query("status"); status != "" {
		contests, err = h.svc.ListContestsByStatus(ctx.Request.Context(), domain.ContestStatus(status))
	} else {
		contests, err = h.svc.ListContests(ctx.Request.Context())
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleListContests -> h.svc.ListContests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, contests)
}

func contestFromRequest(req request.CreateContestRequest, createdBy uint) domain.Contest {
	return domain.Contest{
		Name:                    req.Name,
		Description:             req.Description,
		MinNumber:               req.MinNumber,
		MaxNumber:               req.MaxNumber,
		NumbersPerParticipation: req.NumbersPerParticipation,
		ParticipationValue:      req.ParticipationValue,
		TopPct:                  req.TopPct,
		SecondPct:               req.SecondPct,
		LowestPct:               req.LowestPct,
		AdminFeePct:             req.AdminFeePct,
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		CreatedBy:               createdBy,
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, ctx.Param(name))))
		return 0, false
	}

	return uint(id), true
}
