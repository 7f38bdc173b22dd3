package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/middleware"
	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/service"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
	"github.com/campusgpt/portal-api/pkg/export"
	"github.com/campusgpt/portal-api/pkg/response"
)

// CampusHandler serves the reference-data endpoints. The read endpoints
// degrade gracefully for anonymous callers instead of erroring.
type CampusHandler struct {
	service *service.CampusService
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
}

// NewCampusHandler constructs the handler.
func NewCampusHandler(svc *service.CampusService) *CampusHandler {
	return &CampusHandler{
		service: svc,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
	}
}

// Timetable godoc
// @Summary Timetable scoped to the caller
// @Description Students see only their enrolled courses; everyone else sees the full schedule
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *CampusHandler) Timetable(c *gin.Context) {
	user := middleware.CurrentUser(c)
	response.JSON(c, http.StatusOK, h.service.Timetable(user))
}

// Exams godoc
// @Summary Exam schedule scoped to the caller
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *CampusHandler) Exams(c *gin.Context) {
	user := middleware.CurrentUser(c)
	response.JSON(c, http.StatusOK, h.service.Exams(user))
}

// Events godoc
// @Summary List campus events by date
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *CampusHandler) Events(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Events())
}

// PostEvent godoc
// @Summary Post a campus event
// @Description Faculty-only mutation
// @Tags Campus
// @Accept json
// @Produce json
// @Param payload body models.PostEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /events [post]
func (h *CampusHandler) PostEvent(c *gin.Context) {
	var req models.PostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	event, err := h.service.PostEvent(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, event)
}

// Faculty godoc
// @Summary Faculty directory
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *CampusHandler) Faculty(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Faculty())
}

// Notifications godoc
// @Summary List notifications, newest first
// @Tags Campus
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *CampusHandler) Notifications(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Notifications())
}

// ExportTimetable godoc
// @Summary Export the scoped timetable
// @Description Renders the caller-visible timetable as CSV or PDF
// @Tags Campus
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Failure 400 {object} response.Envelope
// @Router /timetable/export [get]
func (h *CampusHandler) ExportTimetable(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.renderExport(c, h.service.TimetableDataset(user), "timetable")
}

// ExportExams godoc
// @Summary Export the scoped exam schedule
// @Tags Campus
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Failure 400 {object} response.Envelope
// @Router /exams/export [get]
func (h *CampusHandler) ExportExams(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.renderExport(c, h.service.ExamsDataset(user), "exams")
}

func (h *CampusHandler) renderExport(c *gin.Context, data export.Dataset, name string) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	switch format {
	case "csv":
		payload, err := h.csv.Render(data)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(data, name)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", name))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}
