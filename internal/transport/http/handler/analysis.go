package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperlens/internal/app"
	"paperlens/internal/transport/http/response"
)

type AnalysisHandler struct {
	analysisService *app.AnalysisService
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

func NewAnalysisHandler(analysisService *app.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) DetectBias(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid paper id")
		return
	}
	result, err := h.analysisService.DetectBias(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, response.CodePaperNotFound, err.Error())
		default:
			response.Error(c, http.StatusBadGateway, response.CodeUpstreamAI, "bias analysis failed")
		}
		return
	}
	response.OK(c, result)
}

func (h *AnalysisHandler) Ask(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid paper id")
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.analysisService.Ask(c.Request.Context(), id, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrQuestionEmpty):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPaperNotFound):
			response.Error(c, http.StatusNotFound, response.CodePaperNotFound, err.Error())
		default:
			response.Error(c, http.StatusBadGateway, response.CodeUpstreamAI, "answer question failed")
		}
		return
	}
	response.OK(c, result)
}

func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid paper id")
		return
	}
	records, err := h.analysisService.ListAnalyses(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrPaperNotFound) {
			response.Error(c, http.StatusNotFound, response.CodePaperNotFound, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list analyses failed")
		}
		return
	}
	response.OK(c, records)
}
