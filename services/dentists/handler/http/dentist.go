package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/locationtoken"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/dentists"
)

// DentistHandler handles the public directory endpoints
type DentistHandler struct {
	dentistUC dentists.DentistUC
	codec     *locationtoken.Codec
	now       func() time.Time
}

// NewDentistHandler creates a new directory handler
func NewDentistHandler(dentistUC dentists.DentistUC, codec *locationtoken.Codec) *DentistHandler {
	return &DentistHandler{
		dentistUC: dentistUC,
		codec:     codec,
		now:       time.Now,
	}
}

func queryInt(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

func queryFloat(c echo.Context, name string) (float64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func paramUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}

// Nearby lists verified dentists around the location stored in the cookie.
// Without a usable cookie the list is empty.
func (h *DentistHandler) Nearby(c echo.Context) error {
	radius, ok := queryFloat(c, "radius_km")
	if !ok || (c.QueryParam("radius_km") != "" && radius <= 0) {
		return utils.BadRequestResponse(c, "radius_km must be a positive number")
	}

	center := h.codec.FromRequest(c.Request(), h.now())
	results, err := h.dentistUC.SearchNearby(c.Request().Context(), center, radius)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to search nearby dentists")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby dentists retrieved successfully", results)
}

// SetLocation stores the requester coordinate in a signed cookie
func (h *DentistHandler) SetLocation(c echo.Context) error {
	var req models.LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	coord := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	token, err := h.codec.Issue(coord, h.now())
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to store location")
	}

	c.SetCookie(h.codec.Cookie(token))
	return utils.SuccessResponse(c, http.StatusOK, "Location stored", coord)
}

// Search handles GET /dentists
func (h *DentistHandler) Search(c echo.Context) error {
	page, okPage := queryInt(c, "page")
	limit, okLimit := queryInt(c, "limit")
	minRating, okRating := queryFloat(c, "min_rating")
	if !okPage || !okLimit || !okRating {
		return utils.BadRequestResponse(c, "page, limit and min_rating must be numbers")
	}

	filter := models.DentistSearchFilter{
		Query:        c.QueryParam("q"),
		Specialty:    c.QueryParam("specialty"),
		City:         c.QueryParam("city"),
		Area:         c.QueryParam("area"),
		MinRating:    minRating,
		Consultation: c.QueryParam("consultation"),
		Page:         page,
		Limit:        limit,
	}

	result, err := h.dentistUC.Search(c.Request().Context(), filter)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to search dentists")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dentists retrieved successfully", result)
}

// GetProfile handles GET /dentists/:slug
func (h *DentistHandler) GetProfile(c echo.Context) error {
	profile, err := h.dentistUC.GetProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to retrieve dentist")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dentist retrieved successfully", profile)
}

// GetCostPage handles GET /dentists/:slug/costs
func (h *DentistHandler) GetCostPage(c echo.Context) error {
	costs, err := h.dentistUC.GetCostPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to retrieve costs")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Costs retrieved successfully", costs)
}

// ListReviews handles GET /dentists/:slug/reviews
func (h *DentistHandler) ListReviews(c echo.Context) error {
	page, okPage := queryInt(c, "page")
	limit, okLimit := queryInt(c, "limit")
	if !okPage || !okLimit {
		return utils.BadRequestResponse(c, "page and limit must be numbers")
	}

	reviews, err := h.dentistUC.ListReviews(c.Request().Context(), c.Param("slug"), page, limit)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to retrieve reviews")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview handles POST /dentists/:slug/reviews
func (h *DentistHandler) CreateReview(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.dentistUC.CreateReview(c.Request().Context(), actor, c.Param("slug"), &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to create review")
	}

	logger.InfoCtx(c.Request().Context(), "Review created",
		logger.String("review_id", review.ID.String()),
		logger.String("dentist_id", review.DentistID.String()))
	return utils.SuccessResponse(c, http.StatusCreated, "Review created successfully", review)
}
