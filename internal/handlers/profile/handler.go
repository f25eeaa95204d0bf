package profile

import (
	"net/http"
	"nomad/infras/otel"
	"nomad/internal/domains/profile/model/dto"
	"nomad/internal/domains/profile/service"
	"nomad/shared/constant"
	"nomad/shared/logger"
	"nomad/shared/validator"
	"nomad/transport/http/middleware"
	"nomad/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Profile
	manager middleware.Manager
	otel    otel.Otel
}

func New(service service.Profile, manager middleware.Manager, otel otel.Otel) Handler {
	return Handler{
		service: service,
		manager: manager,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profile", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.With(handler.manager.IsManager).Patch("/", handler.UpdateProfile)
		routerGroup.Post("/image", handler.UploadImage)
	})
}

// GetProfile retrieves the profile of the authenticated user.
// @Summary Get my profile
// @Description Retrieve the caller's profile, including their line manager.
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the profile of the authenticated user.
// @Summary Update my profile
// @Description Update profile fields. A manager_id must reference a user with the manager role.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Message "Profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Unknown line manager"
// @Failure 500 {object} response.Error
// @Router /v1/profile [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, req, userID); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// UploadImage stores a new profile image.
// @Summary Upload profile image
// @Description Upload a base64 data URI image (png, jpeg or webp, at most 2 MB) as the profile image.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UploadImageRequest true "Upload Image Request"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profile/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	req := dto.UploadImageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.UploadImage(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to upload profile image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
