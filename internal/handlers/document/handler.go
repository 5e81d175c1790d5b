package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mindwell/infras/otel"
	"mindwell/internal/domains/document/model"
	"mindwell/internal/domains/document/model/dto"
	"mindwell/internal/domains/document/service"
	"mindwell/shared/constant"
	gDto "mindwell/shared/dto"
	"mindwell/shared/failure"
	"mindwell/shared/validator"
	"mindwell/transport/http/response"
)

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Get("/{id}", handler.GetDocumentByID)
		routerGroup.Patch("/{id}", handler.UpdateDocument)
		routerGroup.Delete("/{id}", handler.DeleteDocument)
	})
}

func viewerZone(r *http.Request) string {
	zone := r.URL.Query().Get("timezone")
	if zone == "" {
		zone = r.Header.Get("X-Timezone")
	}

	return zone
}

// UploadDocument uploads a document for the authenticated patient.
// @Summary Upload a document
// @Description Upload a patient document (intake form, insurance card, referral) to object storage.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Document title"
// @Param category formData string true "Category (intake_form, insurance_card, referral, other)"
// @Param file formData file true "Document file"
// @Success 201 {object} response.Data[dto.DocumentResponse] "Document uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.UploadDocumentRequest{
		Title:    request.FormValue("title"),
		Category: request.FormValue("category"),
	}

	file, fileHeader, err := request.FormFile("file")
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	req.File = fileHeader
	req.FileData = file

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document uploaded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDocuments retrieves the authenticated patient's documents.
// @Summary Get my documents
// @Description Retrieve the authenticated patient's documents with optional filtering and pagination.
// @Tags Document
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category (intake_form, insurance_card, referral, other)"
// @Param timezone query string false "Timezone to render upload times in"
// @Success 200 {object} response.Data[dto.DocumentResponse] "List of documents"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPatientID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	documents, err := handler.service.GetAll(ctx, queryParams, filterGroup, viewerZone(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves a document by its ID.
// @Summary Get a document by ID
// @Description Retrieve a document by its unique identifier.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param timezone query string false "Timezone to render upload times in"
// @Success 200 {object} response.Data[dto.DocumentResponse] "Document details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.service.Get(ctx, id, viewerZone(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document retrieved successfully")

	response.WithJSON(w, http.StatusOK, document)
}

// UpdateDocument updates a document's metadata by its ID.
// @Summary Update a document by ID
// @Description Update the title or category of an existing document.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Update Document Request"
// @Success 200 {object} response.Message "Document updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDocumentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document updated successfully")
}

// DeleteDocument deletes a document by its ID.
// @Summary Delete a document by ID
// @Description Delete a document and its stored file using its unique identifier.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
