package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/event"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

func TestCreateEvent(t *testing.T) {
	adminID := uuid.New()
	admin := auth.CurrentUser{ID: adminID, Role: user.RoleAdmin}

	t.Run("sets organizer and upcoming status", func(t *testing.T) {
		repo := new(MockEventRepository)
		repo.On("Create", mock.AnythingOfType("*event.Event")).Return(nil)

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events", asCaller(admin), handler.CreateEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events", gin.H{
			"title": "River cleanup drive",
			"date":  time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var created event.Event
		decodeData(t, w, &created)
		assert.Equal(t, adminID, created.OrganizerID)
		assert.Equal(t, event.StatusUpcoming, created.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		repo := new(MockEventRepository)
		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events", asCaller(admin), handler.CreateEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events", gin.H{
			"date": time.Now().Format(time.RFC3339),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestJoinEvent(t *testing.T) {
	callerID := uuid.New()
	caller := auth.CurrentUser{ID: callerID, Role: user.RoleUser}

	newEvent := func(capacity int, participants ...user.User) *event.Event {
		return &event.Event{
			ID:           uuid.New(),
			Title:        "Beach cleanup",
			Date:         time.Now().Add(24 * time.Hour),
			Capacity:     capacity,
			Status:       event.StatusUpcoming,
			OrganizerID:  uuid.New(),
			Participants: participants,
		}
	}

	t.Run("adds the caller as participant", func(t *testing.T) {
		e := newEvent(10)
		joined := *e
		joined.Participants = []user.User{{ID: callerID}}

		repo := new(MockEventRepository)
		repo.On("GetByID", e.ID.String()).Return(e, nil).Once()
		repo.On("AddParticipant", e.ID.String(), callerID.String()).Return(nil)
		repo.On("GetByID", e.ID.String()).Return(&joined, nil).Once()

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events/:id/join", asCaller(caller), handler.JoinEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events/"+e.ID.String()+"/join", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var got event.Event
		decodeData(t, w, &got)
		assert.True(t, got.IsParticipant(callerID))
		repo.AssertExpectations(t)
	})

	t.Run("rejects a second join", func(t *testing.T) {
		e := newEvent(10, user.User{ID: callerID})

		repo := new(MockEventRepository)
		repo.On("GetByID", e.ID.String()).Return(e, nil)

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events/:id/join", asCaller(caller), handler.JoinEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events/"+e.ID.String()+"/join", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		repo.AssertNotCalled(t, "AddParticipant")
	})

	t.Run("rejects a full event when enforcement is on", func(t *testing.T) {
		e := newEvent(1, user.User{ID: uuid.New()})

		repo := new(MockEventRepository)
		repo.On("GetByID", e.ID.String()).Return(e, nil)

		handler := NewEventHandler(repo, true)
		router := newTestRouter()
		router.POST("/api/events/:id/join", asCaller(caller), handler.JoinEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events/"+e.ID.String()+"/join", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		repo.AssertNotCalled(t, "AddParticipant")
	})

	t.Run("ignores capacity when enforcement is off", func(t *testing.T) {
		e := newEvent(1, user.User{ID: uuid.New()})

		repo := new(MockEventRepository)
		repo.On("GetByID", e.ID.String()).Return(e, nil)
		repo.On("AddParticipant", e.ID.String(), callerID.String()).Return(nil)

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events/:id/join", asCaller(caller), handler.JoinEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events/"+e.ID.String()+"/join", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("unknown event returns 404", func(t *testing.T) {
		id := uuid.New().String()

		repo := new(MockEventRepository)
		repo.On("GetByID", id).Return(nil, notFoundErr("event"))

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.POST("/api/events/:id/join", asCaller(caller), handler.JoinEvent)

		w := doJSON(t, router, http.MethodPost, "/api/events/"+id+"/join", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateEventStatus(t *testing.T) {
	admin := auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}

	t.Run("updates to a valid status", func(t *testing.T) {
		e := &event.Event{
			ID:          uuid.New(),
			Title:       "Tree planting",
			Date:        time.Now(),
			Status:      event.StatusOngoing,
			OrganizerID: admin.ID,
		}

		repo := new(MockEventRepository)
		repo.On("UpdateStatus", e.ID.String(), event.StatusOngoing).Return(nil)
		repo.On("GetByID", e.ID.String()).Return(e, nil)

		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.PUT("/api/events/:id/status", asCaller(admin), handler.UpdateEventStatus)

		w := doJSON(t, router, http.MethodPut, "/api/events/"+e.ID.String()+"/status", gin.H{
			"status": "ongoing",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := new(MockEventRepository)
		handler := NewEventHandler(repo, false)
		router := newTestRouter()
		router.PUT("/api/events/:id/status", asCaller(admin), handler.UpdateEventStatus)

		w := doJSON(t, router, http.MethodPut, "/api/events/"+uuid.New().String()+"/status", gin.H{
			"status": "postponed",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "UpdateStatus")
	})
}
