package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VIT-EcoTrack/EcoTrack/internal/classifier"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
)

// Classifier identifies waste material from an image
type Classifier interface {
	Classify(ctx context.Context, filename string, image io.Reader) (*classifier.Result, error)
}

type ClassifyHandler struct {
	classifier  Classifier
	maxFileSize int64
}

func NewClassifyHandler(cls Classifier, maxFileSize int64) *ClassifyHandler {
	return &ClassifyHandler{
		classifier:  cls,
		maxFileSize: maxFileSize,
	}
}

// Classify handles POST /api/classify. The image is relayed to the external
// classification service and its answer is passed through unchanged.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		response.BadRequest(c, "File too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(c, "File must be an image")
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), header.Filename, file)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", result)
}
