package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/event"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

type EventHandler struct {
	events postgres.EventRepository

	// enforceCapacity gates the capacity check on joins. The original
	// product treated capacity as a soft, UI-only limit, so this stays
	// off unless configured.
	enforceCapacity bool
}

func NewEventHandler(events postgres.EventRepository, enforceCapacity bool) *EventHandler {
	return &EventHandler{
		events:          events,
		enforceCapacity: enforceCapacity,
	}
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.GetAll()
	if err != nil {
		response.Internal(c, "Failed to list events")
		return
	}

	response.Success(c, http.StatusOK, "", events)
}

type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date" binding:"required"`
	Location    common.Location `json:"location"`
	Capacity    int             `json:"capacity"`
}

// CreateEvent handles POST /api/events. The organizer is always the calling
// admin.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	e := &event.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      event.StatusUpcoming,
		OrganizerID: caller.ID,
	}

	if err := h.events.Create(e); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created", e)
}

// JoinEvent handles POST /api/events/:id/join. Participants form a set: a
// second join by the same caller is a conflict, not a silent no-op.
func (h *EventHandler) JoinEvent(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	e, err := h.events.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if e.IsParticipant(caller.ID) {
		response.Conflict(c, "Already joined")
		return
	}

	if h.enforceCapacity && e.IsFull() {
		response.Conflict(c, "Event is full")
		return
	}

	if err := h.events.AddParticipant(e.ID.String(), caller.ID.String()); err != nil {
		response.DomainError(c, err)
		return
	}

	updated, err := h.events.GetByID(e.ID.String())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Joined event", updated)
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateEventStatus handles PUT /api/events/:id/status
func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	var req UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	status, valid := event.StatusFromString(req.Status)
	if !valid {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := h.events.UpdateStatus(c.Param("id"), status); err != nil {
		response.DomainError(c, err)
		return
	}

	updated, err := h.events.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event status updated", updated)
}
