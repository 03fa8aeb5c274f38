package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

func newTestEvent() *Event {
	return &Event{
		ID:          uuid.New(),
		Title:       "River cleanup",
		Date:        time.Now().Add(48 * time.Hour),
		Capacity:    2,
		Status:      StatusUpcoming,
		OrganizerID: uuid.New(),
	}
}

func TestIsParticipant(t *testing.T) {
	e := newTestEvent()
	userID := uuid.New()

	assert.False(t, e.IsParticipant(userID))

	e.Participants = append(e.Participants, user.User{ID: userID})
	assert.True(t, e.IsParticipant(userID))
	assert.False(t, e.IsParticipant(uuid.New()))
}

func TestIsFull(t *testing.T) {
	e := newTestEvent()
	assert.False(t, e.IsFull())

	e.Participants = []user.User{{ID: uuid.New()}, {ID: uuid.New()}}
	assert.True(t, e.IsFull())

	// Zero capacity means unlimited.
	e.Capacity = 0
	assert.False(t, e.IsFull())
}

func TestValidate(t *testing.T) {
	e := newTestEvent()
	require.NoError(t, e.Validate())

	bad := newTestEvent()
	bad.Title = ""
	assert.Error(t, bad.Validate())

	bad = newTestEvent()
	bad.Date = time.Time{}
	assert.Error(t, bad.Validate())

	bad = newTestEvent()
	bad.Capacity = -1
	assert.Error(t, bad.Validate())

	bad = newTestEvent()
	bad.OrganizerID = uuid.Nil
	assert.Error(t, bad.Validate())
}

func TestStatusFromString(t *testing.T) {
	for _, valid := range []string{"upcoming", "ongoing", "completed", "cancelled"} {
		_, ok := StatusFromString(valid)
		assert.True(t, ok, valid)
	}

	_, ok := StatusFromString("postponed")
	assert.False(t, ok)
}
