package city

import (
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/city/model/dto"
	"nomad/internal/domains/city/service"
	"nomad/shared/constant"
	"nomad/shared/logger"
	"nomad/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.City
	otel    otel.Otel
}

func New(service service.City, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCities)
	})
}

// GetCities lists all cities.
// @Summary Get all cities
// @Description List every city that can be used as a trip origin or destination.
// @Tags City
// @Produce json
// @Success 200 {object} response.Data[dto.GetCitiesResponse] "List of cities"
// @Failure 500 {object} response.Error
// @Router /v1/cities [get]
func (handler *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCities")
	defer scope.End()

	var (
		cities dto.GetCitiesResponse
		err    error
	)

	if cities, err = handler.service.GetCities(ctx); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get cities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cities)
}
