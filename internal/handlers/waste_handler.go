package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/waste"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
	"github.com/VIT-EcoTrack/EcoTrack/internal/validation"
)

// ImageStore persists waste report photos and returns their URL
type ImageStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type WasteHandler struct {
	waste       postgres.WasteRepository
	users       postgres.UserRepository
	images      ImageStore
	maxFileSize int64
}

func NewWasteHandler(wasteRepo postgres.WasteRepository, users postgres.UserRepository, images ImageStore, maxFileSize int64) *WasteHandler {
	return &WasteHandler{
		waste:       wasteRepo,
		users:       users,
		images:      images,
		maxFileSize: maxFileSize,
	}
}

type QuantityRequest struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
}

type ReportWasteRequest struct {
	Type        string          `json:"type" binding:"required"`
	Quantity    QuantityRequest `json:"quantity" binding:"required"`
	Location    common.Location `json:"location"`
	Description string          `json:"description"`
}

// ReportWaste handles POST /api/waste/report
func (h *WasteHandler) ReportWaste(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req ReportWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	wasteType, valid := waste.TypeFromString(req.Type)
	if !valid {
		response.BadRequest(c, "Invalid waste type")
		return
	}

	unit, valid := waste.UnitFromString(req.Quantity.Unit)
	if !valid {
		response.BadRequest(c, "Invalid quantity unit")
		return
	}

	if err := validation.ValidatePositive(req.Quantity.Value, "quantity value"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w := &waste.Waste{
		ID:   uuid.New(),
		Type: wasteType,
		Quantity: waste.Quantity{
			Value: req.Quantity.Value,
			Unit:  unit,
		},
		Location:     req.Location,
		Status:       waste.StatusReported,
		Description:  req.Description,
		ReportedByID: caller.ID,
	}

	if err := h.waste.Create(w); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Waste reported", w)
}

// ListWaste handles GET /api/waste
func (h *WasteHandler) ListWaste(c *gin.Context) {
	reports, err := h.waste.GetAll()
	if err != nil {
		response.Internal(c, "Failed to list waste reports")
		return
	}

	response.Success(c, http.StatusOK, "", reports)
}

type AssignWasteRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
}

// AssignWaste handles PUT /api/waste/:id/assign. The target must actually
// hold the worker role; the ownership rule on later status updates is
// meaningless otherwise.
func (h *WasteHandler) AssignWaste(c *gin.Context) {
	var req AssignWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := validation.ValidateUUID(req.WorkerID, "worker_id"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w, err := h.waste.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	worker, err := h.users.GetByID(req.WorkerID)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if worker.Role != user.RoleWorker {
		response.BadRequest(c, "Assignee must be a worker")
		return
	}

	if err := w.Advance(waste.StatusAssigned, time.Now()); err != nil {
		response.Conflict(c, err.Error())
		return
	}
	w.AssignedToID = &worker.ID

	if err := h.waste.Update(w); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Waste assigned", w)
}

type UpdateWasteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateWasteStatus handles PUT /api/waste/:id/status. Only the assigned
// worker or an admin may advance a report, transitions are forward-only,
// and the collected/processed timestamps are stamped exactly once.
func (h *WasteHandler) UpdateWasteStatus(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req UpdateWasteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	status, valid := waste.StatusFromString(req.Status)
	if !valid {
		response.BadRequest(c, "Invalid status")
		return
	}

	w, err := h.waste.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if !auth.CanActOn(caller, w) {
		response.Forbidden(c, "Not authorized")
		return
	}

	if err := w.Advance(status, time.Now()); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	if err := h.waste.Update(w); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Waste status updated", w)
}

// ListMyAssignments handles GET /api/waste/my-assignments
func (h *WasteHandler) ListMyAssignments(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	reports, err := h.waste.GetByAssignee(caller.ID.String())
	if err != nil {
		response.Internal(c, "Failed to list assignments")
		return
	}

	response.Success(c, http.StatusOK, "", reports)
}

// UploadImage handles POST /api/waste/:id/images. Only the reporter or an
// admin may attach photos to a report.
func (h *WasteHandler) UploadImage(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	w, err := h.waste.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if w.ReportedByID != caller.ID && !caller.IsAdmin() {
		response.Forbidden(c, "Not authorized")
		return
	}

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

	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("%s/%d%s", w.ID, time.Now().Unix(), ext)

	url, err := h.images.Put(c.Request.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		response.Error(c, apperror.StatusCode(apperror.ErrUpstream), "Failed to store image")
		return
	}

	w.Images = append(w.Images, url)
	if err := h.waste.Update(w); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Image uploaded", w)
}
