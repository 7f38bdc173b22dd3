package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/service"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
	"github.com/campusgpt/portal-api/pkg/response"
)

// AssistantHandler exposes the language-model proxy endpoints.
type AssistantHandler struct {
	service *service.AssistantService
}

// NewAssistantHandler constructs the handler.
func NewAssistantHandler(svc *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: svc}
}

// Chat godoc
// @Summary Ask the campus assistant
// @Description Always answers; collaborator failures return a fixed fallback body
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body models.ChatRequest true "Chat payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	res := h.service.Chat(c.Request.Context(), req.Message)
	response.JSON(c, http.StatusOK, res)
}

// DoubtSolver godoc
// @Summary Analyze pasted document text
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body models.DocumentQueryRequest true "Document query payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /doubt-solver [post]
func (h *AssistantHandler) DoubtSolver(c *gin.Context) {
	var req models.DocumentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document query payload"))
		return
	}

	res, err := h.service.AnalyzeDocument(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}
