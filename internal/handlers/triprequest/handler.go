package triprequest

import (
	"context"
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/triprequest/model/dto"
	"nomad/internal/domains/triprequest/service"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/logger"
	"nomad/shared/validator"
	"nomad/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.TripRequest
	otel    otel.Otel
}

func New(service service.TripRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trip-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTripRequest)
		routerGroup.Get("/mine", handler.GetMyTripRequests)
		routerGroup.Get("/reports", handler.GetReportsTripRequests)
		routerGroup.Get("/{id}", handler.GetTripRequestByID)
		routerGroup.Patch("/{id}", handler.UpdateTripRequest)
		routerGroup.Patch("/{id}/approve", handler.ApproveTripRequest)
		routerGroup.Patch("/{id}/reject", handler.RejectTripRequest)
	})
}

// CreateTripRequest files a new trip request for the caller.
// @Summary Create a trip request
// @Description File a pending trip request. The caller must have a line manager, who is notified.
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Create Trip Request"
// @Success 201 {object} response.Data[dto.CreateTripResponse] "Trip request created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateTripRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTripRequest")
	defer scope.End()

	req := dto.CreateTripRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create trip request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip request created by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMyTripRequests lists the caller's own trip requests.
// @Summary Get my trip requests
// @Tags TripRequest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTripRequestsResponse] "List of trip requests"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyTripRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyTripRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	trips, err := handler.service.Mine(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get my trip requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trips)
}

// GetReportsTripRequests lists the trip requests of the users the caller manages.
// @Summary Get my reports' trip requests
// @Tags TripRequest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTripRequestsResponse] "List of trip requests"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReportsTripRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReportsTripRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	trips, err := handler.service.Reports(ctx, queryParams, managerID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get reports trip requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trips)
}

// GetTripRequestByID retrieves one trip request.
// @Summary Get a trip request
// @Description Visible to the requester and to the requester's line manager.
// @Tags TripRequest
// @Produce json
// @Param id path string true "Trip request ID"
// @Success 200 {object} response.Data[dto.TripRequestResponse] "Trip request details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTripRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripRequestByID")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	trip, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get trip request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trip)
}

// UpdateTripRequest edits a pending trip request.
// @Summary Update a trip request
// @Description Only the requester may edit, and only while the request is pending.
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param id path string true "Trip request ID"
// @Param request body dto.UpdateTripRequest true "Update Trip Request"
// @Success 200 {object} response.Message "Trip request updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTripRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTripRequest")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateTripRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, req, id, userID); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to update trip request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip request updated successfully")

	response.WithMessage(w, http.StatusOK, "Trip request updated successfully")
}

// ApproveTripRequest approves a pending trip request.
// @Summary Approve a trip request
// @Description The requester's line manager approves a pending request. The requester is notified.
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param id path string true "Trip request ID"
// @Param request body dto.ReviewTripRequest false "Review"
// @Success 200 {object} response.Message "Trip request approved"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{id}/approve [patch]
// @Security BearerAuth
func (handler *Handler) ApproveTripRequest(w http.ResponseWriter, r *http.Request) {
	handler.review(w, r, "Approve", handler.service.Approve, "Trip request approved")
}

// RejectTripRequest rejects a pending trip request.
// @Summary Reject a trip request
// @Description The requester's line manager rejects a pending request. The requester is notified.
// @Tags TripRequest
// @Accept json
// @Produce json
// @Param id path string true "Trip request ID"
// @Param request body dto.ReviewTripRequest false "Review"
// @Success 200 {object} response.Message "Trip request rejected"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{id}/reject [patch]
// @Security BearerAuth
func (handler *Handler) RejectTripRequest(w http.ResponseWriter, r *http.Request) {
	handler.review(w, r, "Reject", handler.service.Reject, "Trip request rejected")
}

type reviewFunc func(ctx context.Context, req dto.ReviewTripRequest, id, managerID string) error

func (handler *Handler) review(w http.ResponseWriter, r *http.Request, action string, fn reviewFunc, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+action+"TripRequest")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	req := dto.ReviewTripRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := fn(ctx, req, id, managerID); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("action", action).Msg("failed to review trip request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(message)

	response.WithMessage(w, http.StatusOK, message)
}
