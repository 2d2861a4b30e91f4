package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/dentists"
)

// ManageHandler handles profile management by owners and admins
type ManageHandler struct {
	dentistUC     dentists.DentistUC
	maxUploadSize int64
}

// NewManageHandler creates a new profile management handler
func NewManageHandler(dentistUC dentists.DentistUC, cfg *models.Config) *ManageHandler {
	return &ManageHandler{
		dentistUC:     dentistUC,
		maxUploadSize: cfg.Storage.MaxUploadSize,
	}
}

// CreateDentist handles POST /dentists
func (h *ManageHandler) CreateDentist(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateDentistRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dentist, err := h.dentistUC.CreateDentist(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to create dentist")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Dentist created successfully", dentist)
}

// UpdateProfile handles PUT /dentists/:id/profile
func (h *ManageHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dentist, err := h.dentistUC.UpdateProfile(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to update profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", dentist)
}

// UpdateLocation handles PUT /dentists/:id/location
func (h *ManageHandler) UpdateLocation(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dentist, err := h.dentistUC.UpdateLocation(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to update location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", dentist)
}

// ReplaceFeatures handles PUT /dentists/:id/features
func (h *ManageHandler) ReplaceFeatures(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.ReplaceFeaturesRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	features, err := h.dentistUC.ReplaceFeatures(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to replace features")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Features replaced successfully", features)
}

// ReplaceCosts handles PUT /dentists/:id/costs
func (h *ManageHandler) ReplaceCosts(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.ReplaceCostsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	items, err := h.dentistUC.ReplaceCosts(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to replace costs")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Costs replaced successfully", items)
}

// AddFAQ handles POST /dentists/:id/faqs
func (h *ManageHandler) AddFAQ(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.CreateFAQRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	faq, err := h.dentistUC.AddFAQ(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to add faq")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "FAQ added successfully", faq)
}

// DeleteFAQ handles DELETE /dentists/:id/faqs/:faqId
func (h *ManageHandler) DeleteFAQ(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}
	faqID, ok := paramUUID(c, "faqId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid faq ID")
	}

	if err := h.dentistUC.DeleteFAQ(c.Request().Context(), actor, id, faqID); err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to delete faq")
	}
	return utils.SuccessResponse(c, http.StatusOK, "FAQ deleted successfully", nil)
}

// ReorderFAQs handles PUT /dentists/:id/faqs/order
func (h *ManageHandler) ReorderFAQs(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.ReorderFAQRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	faqs, err := h.dentistUC.ReorderFAQs(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to reorder faqs")
	}
	return utils.SuccessResponse(c, http.StatusOK, "FAQs reordered successfully", faqs)
}

// UploadMedia handles the multipart POST /dentists/:id/media
func (h *ManageHandler) UploadMedia(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file")
	}
	if h.maxUploadSize > 0 && fh.Size > h.maxUploadSize {
		return utils.BadRequestResponse(c, "File too large")
	}

	file, err := fh.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file")
	}
	defer file.Close()

	upload := &models.MediaUpload{
		Kind:     c.FormValue("kind"),
		Filename: fh.Filename,
		Size:     fh.Size,
		Body:     file,
	}
	media, err := h.dentistUC.UploadMedia(c.Request().Context(), actor, id, upload)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to upload media")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Media uploaded successfully", media)
}

// DeleteMedia handles DELETE /dentists/:id/media/:mediaId
func (h *ManageHandler) DeleteMedia(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}
	mediaID, ok := paramUUID(c, "mediaId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid media ID")
	}

	if err := h.dentistUC.DeleteMedia(c.Request().Context(), actor, id, mediaID); err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to delete media")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Media deleted successfully", nil)
}
