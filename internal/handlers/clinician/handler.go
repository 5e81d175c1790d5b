package clinician

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mindwell/infras/otel"
	"mindwell/internal/domains/clinician/model"
	"mindwell/internal/domains/clinician/model/dto"
	"mindwell/internal/domains/clinician/service"
	"mindwell/shared"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/validator"
	"mindwell/transport/http/response"
)

type Handler struct {
	service service.Clinician
	otel    otel.Otel
}

func New(service service.Clinician, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clinicians", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClinician)
		routerGroup.Get("/", handler.GetClinicians)
		routerGroup.Get("/{id}", handler.GetClinicianByID)
		routerGroup.Patch("/{id}", handler.UpdateClinician)
		routerGroup.Delete("/{id}", handler.DeleteClinician)
	})
}

// CreateClinician handles the creation of a new clinician profile.
// @Summary Create a new clinician
// @Description Create a new clinician directory entry with the provided details.
// @Tags Clinician
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Clinician full name"
// @Param specialty formData string true "Clinical specialty"
// @Param credentials formData string false "Credentials"
// @Param bio formData string false "Short biography"
// @Param timezone formData string false "Practice timezone"
// @Param accepting_patients formData boolean false "Accepting new patients"
// @Param active formData boolean false "Active status"
// @Param photo formData file false "Profile photo"
// @Success 201 {object} response.Message "Clinician created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clinicians [post]
// @Security BearerAuth
func (handler *Handler) CreateClinician(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClinician")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateClinicianRequest{
		FullName:    request.FormValue("full_name"),
		Specialty:   request.FormValue("specialty"),
		Credentials: request.FormValue("credentials"),
		Bio:         request.FormValue("bio"),
		Timezone:    request.FormValue("timezone"),
	}

	if acceptingStr := request.FormValue("accepting_patients"); acceptingStr != "" {
		req.AcceptingPatients = shared.ConvertStringToBool(acceptingStr)
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create clinician")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Clinician created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Clinician created successfully")
}

// GetClinicians retrieves the clinician directory.
// @Summary Get all clinicians
// @Description Retrieve all clinicians with optional filtering and pagination.
// @Tags Clinician
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param full_name query string false "Filter by name"
// @Param specialty query string false "Filter by specialty"
// @Param accepting_patients query boolean false "Filter by accepting patients"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.ClinicianResponse] "List of clinicians"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clinicians [get]
func (handler *Handler) GetClinicians(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClinicians")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	fullName := r.URL.Query().Get(model.FieldFullName)
	specialty := r.URL.Query().Get(model.FieldSpecialty)
	accepting := r.URL.Query().Get(model.FieldAcceptingPatients)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if fullName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    fullName,
			Table:    model.TableName,
		})
	}

	if specialty != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSpecialty,
			Operator: gDto.FilterOperatorLike,
			Value:    specialty,
			Table:    model.TableName,
		})
	}

	if acceptingValue := shared.ConvertStringToBool(accepting); acceptingValue != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAcceptingPatients,
			Operator: gDto.FilterOperatorEq,
			Value:    *acceptingValue,
			Table:    model.TableName,
		})
	}

	if activeValue := shared.ConvertStringToBool(active); activeValue != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *activeValue,
			Table:    model.TableName,
		})
	}

	clinicians, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clinicians")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clinicians retrieved successfully")

	response.WithJSON(w, http.StatusOK, clinicians)
}

// GetClinicianByID retrieves a clinician by their ID.
// @Summary Get a clinician by ID
// @Description Retrieve a clinician by their unique identifier.
// @Tags Clinician
// @Accept json
// @Produce json
// @Param id path string true "Clinician ID"
// @Success 200 {object} response.Data[dto.ClinicianResponse] "Clinician details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clinicians/{id} [get]
func (handler *Handler) GetClinicianByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClinicianByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	clinician, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clinician by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clinician retrieved successfully")

	response.WithJSON(w, http.StatusOK, clinician)
}

// UpdateClinician updates an existing clinician by their ID.
// @Summary Update a clinician by ID
// @Description Update the details of an existing clinician.
// @Tags Clinician
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Clinician ID"
// @Param full_name formData string false "Clinician full name"
// @Param specialty formData string false "Clinical specialty"
// @Param credentials formData string false "Credentials"
// @Param bio formData string false "Short biography"
// @Param timezone formData string false "Practice timezone"
// @Param accepting_patients formData boolean false "Accepting new patients"
// @Param active formData boolean false "Active status"
// @Param photo formData file false "Profile photo"
// @Success 200 {object} response.Message "Clinician updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clinicians/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClinician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClinician")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateClinicianRequest{
		FullName:    r.FormValue("full_name"),
		Specialty:   r.FormValue("specialty"),
		Credentials: r.FormValue("credentials"),
		Bio:         r.FormValue("bio"),
		Timezone:    r.FormValue("timezone"),
	}

	if acceptingStr := r.FormValue("accepting_patients"); acceptingStr != "" {
		req.AcceptingPatients = shared.ConvertStringToBool(acceptingStr)
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update clinician")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Clinician updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Clinician updated successfully")
}

// DeleteClinician deletes a clinician by their ID.
// @Summary Delete a clinician by ID
// @Description Delete a clinician directory entry using their unique identifier.
// @Tags Clinician
// @Accept json
// @Produce json
// @Param id path string true "Clinician ID"
// @Success 200 {object} response.Message "Clinician deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clinicians/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClinician(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClinician")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete clinician")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Clinician deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Clinician deleted successfully")
}
