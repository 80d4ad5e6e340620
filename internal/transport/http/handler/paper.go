package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"paperlens/internal/app"
	"paperlens/internal/pkg/pdfextract"
	"paperlens/internal/transport/http/response"
)

const maxUploadSize = 10 << 20 // 10 MB

type PaperHandler struct {
	paperService *app.PaperService
}

func NewPaperHandler(paperService *app.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

func (h *PaperHandler) List(c *gin.Context) {
	papers, err := h.paperService.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list papers failed")
		return
	}
	response.OK(c, papers)
}

func (h *PaperHandler) Get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid paper id")
		return
	}
	paper, err := h.paperService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrPaperNotFound) {
			response.Error(c, http.StatusNotFound, response.CodePaperNotFound, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get paper failed")
		}
		return
	}
	response.OK(c, paper)
}

// Upload accepts a multipart form with "file" (PDF or plain text) and an
// optional "title". The file name is the default title, per the UI contract.
func (h *PaperHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if file.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file too large (max 10MB)")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
		return
	}
	defer f.Close()

	var text string
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf":
		text, err = pdfextract.ExtractText(f)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "failed to extract text from PDF: "+err.Error())
			return
		}
	case ".txt", ".md", "":
		raw, readErr := io.ReadAll(f)
		if readErr != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
			return
		}
		text = string(raw)
	default:
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "only PDF and plain text files are allowed")
		return
	}

	if strings.TrimSpace(text) == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file contains no extractable text")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = file.Filename
	}

	paper, err := h.paperService.Upload(c.Request.Context(), app.UploadInput{
		Title:    title,
		FullText: text,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusBadGateway, response.CodeUpstreamAI, "upload failed: "+err.Error())
		}
		return
	}

	response.OK(c, paper)
}

func (h *PaperHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid paper id")
		return
	}
	if err := h.paperService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, app.ErrPaperNotFound) {
			response.Error(c, http.StatusNotFound, response.CodePaperNotFound, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete paper failed")
		}
		return
	}
	response.OK(c, gin.H{"deleted_paper_id": id})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	s := c.Param(key)
	u, err := strconv.ParseUint(s, 10, 64)
	return uint(u), err
}
