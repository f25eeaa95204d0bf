package accommodation

import (
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/accommodation/model"
	"nomad/internal/domains/accommodation/model/dto"
	"nomad/internal/domains/accommodation/service"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/logger"
	"nomad/shared/validator"
	"nomad/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/", handler.GetAccommodations)
		routerGroup.Get("/{id}", handler.GetAccommodationByID)
	})
}

// CreateAccommodation registers an accommodation owned by the calling travel admin.
// @Summary Create an accommodation
// @Description The optional image is a base64 data URI (png, jpeg or webp, at most 5 MB).
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body dto.CreateAccommodationRequest true "Create Accommodation Request"
// @Success 201 {object} response.Data[dto.CreateAccommodationResponse] "Accommodation created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	req := dto.CreateAccommodationRequest{}
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
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation created by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAccommodations lists accommodations.
// @Summary Get all accommodations
// @Tags Accommodation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city_id query int false "Filter by city"
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse] "List of accommodations"
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [get]
// @Security BearerAuth
func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if cityID := r.URL.Query().Get(model.FieldCityID); cityID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCityID,
			Operator: gDto.FilterOperatorEq,
			Value:    cityID,
			Table:    model.TableName,
		})
	}

	accommodations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get accommodations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accommodations)
}

// GetAccommodationByID retrieves an accommodation.
// @Summary Get an accommodation
// @Tags Accommodation
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Accommodation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationByID")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	accommodation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get accommodation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accommodation)
}
