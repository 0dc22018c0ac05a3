package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "ai-roadmap-backend/internal/errors"
	"ai-roadmap-backend/internal/render"
	"ai-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoadmapHandler handles HTTP requests for roadmaps
type RoadmapHandler struct {
	service service.RoadmapServiceInterface
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(service service.RoadmapServiceInterface) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

// Index serves the submission form page
// @Summary Submission form
// @Description Serve the roadmap generation form
// @Tags roadmaps
// @Produce html
// @Success 200 {string} string "HTML form page"
// @Router / [get]
func (h *RoadmapHandler) Index(c *gin.Context) {
	page, err := render.Form()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render form", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// CreateRoadmap handles POST /api/v1/roadmaps
// @Summary Generate a new roadmap
// @Description Validate the submission, call the generation provider and persist the result
// @Tags roadmaps
// @Accept json
// @Produce json
// @Param roadmap body service.SubmitRoadmapRequest true "Submission data"
// @Success 201 {object} service.RoadmapResponse "Successfully generated roadmap"
// @Failure 400 {object} map[string]interface{} "Invalid submission"
// @Failure 502 {object} map[string]interface{} "Provider rejected the request or replied malformed"
// @Failure 503 {object} map[string]interface{} "Provider unavailable, resubmission may succeed"
// @Router /roadmaps [post]
func (h *RoadmapHandler) CreateRoadmap(c *gin.Context) {
	var req service.SubmitRoadmapRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	roadmap, err := h.service.HandleSubmit(c.Request.Context(), &req)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	// Browser form posts get the rendered result page, API clients get JSON
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/roadmaps/%s/page", roadmap.ID))
		return
	}
	c.JSON(http.StatusCreated, roadmap)
}

// writeSubmitError maps the error taxonomy onto HTTP statuses
func (h *RoadmapHandler) writeSubmitError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
		return
	}

	var genErr *apperrors.GenerationError
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case apperrors.ProviderUnavailable:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":     "Roadmap generation is temporarily unavailable, please try again",
				"retryable": true,
			})
		case apperrors.ProviderRejected:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "The generation provider rejected the request",
				"retryable": false,
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "The generation provider returned an unusable reply",
				"retryable": false,
			})
		}
		return
	}

	if apperrors.IsPersistence(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store the generated roadmap"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate roadmap", "details": err.Error()})
}

// GetRoadmap handles GET /api/v1/roadmaps/:id
// @Summary Get roadmap by ID
// @Description Get a stored roadmap by its UUID
// @Tags roadmaps
// @Produce json
// @Param id path string true "Roadmap ID (UUID)"
// @Success 200 {object} service.RoadmapResponse "Successfully retrieved roadmap"
// @Failure 400 {object} map[string]interface{} "Invalid roadmap ID"
// @Failure 404 {object} map[string]interface{} "Roadmap not found"
// @Router /roadmaps/{id} [get]
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roadmap ID: invalid UUID format"})
		return
	}

	roadmap, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roadmap", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

// ListRoadmaps handles GET /api/v1/roadmaps
// @Summary List roadmaps
// @Description Get stored roadmap summaries with pagination, newest first
// @Tags roadmaps
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RoadmapListResponse "Successfully retrieved roadmaps"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /roadmaps [get]
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roadmaps", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetRoadmapPage handles GET /api/v1/roadmaps/:id/page
// @Summary Rendered roadmap page
// @Description Render a stored roadmap as an HTML page
// @Tags roadmaps
// @Produce html
// @Param id path string true "Roadmap ID (UUID)"
// @Success 200 {string} string "HTML roadmap page"
// @Failure 404 {object} map[string]interface{} "Roadmap not found"
// @Router /roadmaps/{id}/page [get]
func (h *RoadmapHandler) GetRoadmapPage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roadmap ID: invalid UUID format"})
		return
	}

	roadmap, err := h.service.GetRecord(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roadmap", "details": err.Error()})
		return
	}

	page, err := render.Page(roadmap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render roadmap", "details": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// DownloadRoadmapPDF handles GET /api/v1/roadmaps/:id/pdf
// @Summary Download roadmap PDF
// @Description Render a stored roadmap as a PDF document
// @Tags roadmaps
// @Produce application/pdf
// @Param id path string true "Roadmap ID (UUID)"
// @Success 200 {file} file "PDF document"
// @Failure 404 {object} map[string]interface{} "Roadmap not found"
// @Router /roadmaps/{id}/pdf [get]
func (h *RoadmapHandler) DownloadRoadmapPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roadmap ID: invalid UUID format"})
		return
	}

	roadmap, err := h.service.GetRecord(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roadmap", "details": err.Error()})
		return
	}

	document, err := render.PDF(roadmap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="roadmap-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", document)
}

// isFormPost reports whether the submission came from the HTML form
func isFormPost(c *gin.Context) bool {
	ct := c.ContentType()
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
