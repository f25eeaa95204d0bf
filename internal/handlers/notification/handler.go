package notification

import (
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/notification/model/dto"
	"nomad/internal/domains/notification/service"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/logger"
	"nomad/shared/validator"
	"nomad/transport/http/response"
	"nomad/transport/websocket"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Notification
	hub     websocket.Hub
	otel    otel.Otel
}

func New(service service.Notification, hub websocket.Hub, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Patch("/read", handler.MarkAsRead)
		routerGroup.Get("/ws", handler.Live)
	})
}

// GetNotifications lists the caller's notifications, newest first.
// @Summary Get my notifications
// @Description Returns a "no new notification" message when the caller has none.
// @Tags Notification
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of notifications"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	notifications, err := handler.service.View(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	if notifications.TotalData == 0 {
		response.WithMessage(w, http.StatusOK, constant.ResponseNoNewNotification)

		return
	}

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkAsRead flags the given notifications of the caller as read.
// @Summary Mark notifications as read
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.MarkAsReadRequest true "Notification IDs"
// @Success 200 {object} response.Message "Notifications marked as read"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAsRead")
	defer scope.End()

	req := dto.MarkAsReadRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.MarkAsRead(ctx, userID, req.IDs); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to mark notifications as read")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Notifications marked as read")
}

// Live upgrades to a websocket that receives the caller's notifications as they are created.
// @Summary Live notifications
// @Description Websocket endpoint. Pass the access token as the token query parameter.
// @Tags Notification
// @Param token query string true "Access token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} response.Error
// @Router /v1/notifications/ws [get]
func (handler *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handler.hub.Serve(w, r)
}
