package comment

import (
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/comment/model/dto"
	"nomad/internal/domains/comment/service"
	"nomad/shared/constant"
	"nomad/shared/logger"
	"nomad/shared/validator"
	"nomad/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Comment
	otel    otel.Otel
}

func New(service service.Comment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trip-requests/{"+constant.RequestParamTripRequestID+"}/comments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateComment)
		routerGroup.Get("/", handler.GetComments)
	})

	router.Route("/comments", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetCommentByID)
		routerGroup.Delete("/{id}", handler.DeleteComment)
	})
}

// CreateComment posts a comment on a trip request.
// @Summary Comment on a trip request
// @Description The requester or their line manager comments on a trip request. The other party is notified.
// @Tags Comment
// @Accept json
// @Produce json
// @Param tripRequestId path string true "Trip request ID"
// @Param request body dto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[dto.CreateCommentResponse] "Comment created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{tripRequestId}/comments [post]
// @Security BearerAuth
func (handler *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	tripRequestID, err := validator.URLParam(r, constant.RequestParamTripRequestID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	req := dto.CreateCommentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, tripRequestID, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create comment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetComments lists the comments of a trip request, oldest first.
// @Summary Get trip request comments
// @Tags Comment
// @Produce json
// @Param tripRequestId path string true "Trip request ID"
// @Success 200 {object} response.Data[dto.GetCommentsResponse] "List of comments"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-requests/{tripRequestId}/comments [get]
// @Security BearerAuth
func (handler *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComments")
	defer scope.End()

	tripRequestID, err := validator.URLParam(r, constant.RequestParamTripRequestID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	comments, err := handler.service.GetAll(ctx, tripRequestID, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get comments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, comments)
}

// GetCommentByID retrieves a single comment.
// @Summary Get a comment
// @Description Only the trip requester and their line manager can read a comment of the thread.
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} response.Data[dto.CommentResponse] "Comment details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/comments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommentByID")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	comment, err := handler.service.Get(ctx, id, user)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get comment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a comment. Only its author may delete it.
// @Summary Delete a comment
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} response.Message "Comment deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/comments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteComment")
	defer scope.End()

	id, err := validator.URLParam(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to delete comment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Comment deleted successfully")
}
