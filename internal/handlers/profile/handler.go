package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mindwell/infras/otel"
	"mindwell/internal/domains/profile/model/dto"
	"mindwell/internal/domains/profile/service"
	"mindwell/shared/constant"
	"mindwell/shared/failure"
	"mindwell/shared/validator"
	"mindwell/transport/http/response"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profile", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.Patch("/", handler.UpdateProfile)
	})
}

// GetProfile retrieves the authenticated patient's profile.
// @Summary Get my profile
// @Description Retrieve the authenticated patient's profile, including their resolved timezone and current local time.
// @Tags Profile
// @Accept json
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

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	profile, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated patient's profile.
// @Summary Update my profile
// @Description Update the authenticated patient's profile. The timezone may be an IANA identifier, a display name, or an abbreviation.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Message "Profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profile [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully for user " + userID)

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}
