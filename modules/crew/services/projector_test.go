package services_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
	"github.com/crewdeck/crewdeck/pkg/ws"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type hubMock struct {
	frames []broadcastFrame
}

type broadcastFrame struct {
	channel string
	message []byte
}

func (h *hubMock) ServeHTTP(w http.ResponseWriter, r *http.Request) {}

func (h *hubMock) Broadcast(channel string, message []byte) {
	h.frames = append(h.frames, broadcastFrame{channel: channel, message: message})
}

func (h *hubMock) ConnectionCount(channel string) int {
	return 0
}

func (h *hubMock) Shutdown() {}

var _ ws.Huber = (*hubMock)(nil)

func TestAvailabilityProjector_OnSet(t *testing.T) {
	store := availability.NewStore()
	hub := &hubMock{}
	bus := eventbus.NewEventPublisher(testLogger())

	projector := services.NewAvailabilityProjector(store, hub, testLogger())
	projector.Register(bus)

	techID := uuid.New()
	bus.Publish(override.NewSetEvent(&override.Override{
		TechnicianID: techID,
		Date:         "2026-08-28",
		Status:       availability.StatusSick,
	}))

	status, ok := store.Get(techID.String(), "2026-08-28")
	require.True(t, ok)
	assert.Equal(t, availability.StatusSick, status)

	require.Len(t, hub.frames, 1)
	assert.Equal(t, ws.ChannelAvailability, hub.frames[0].channel)

	var frame map[string]string
	require.NoError(t, json.Unmarshal(hub.frames[0].message, &frame))
	assert.Equal(t, "availability.set", frame["type"])
	assert.Equal(t, techID.String(), frame["technicianId"])
	assert.Equal(t, "2026-08-28", frame["date"])
	assert.Equal(t, "sick", frame["status"])
}

func TestAvailabilityProjector_OnRemoved(t *testing.T) {
	store := availability.NewStore()
	hub := &hubMock{}
	bus := eventbus.NewEventPublisher(testLogger())

	projector := services.NewAvailabilityProjector(store, hub, testLogger())
	projector.Register(bus)

	techID := uuid.New()
	store.SetOne(availability.Key(techID.String(), "2026-08-28"), availability.StatusVacation)

	bus.Publish(override.NewRemovedEvent(&override.Override{
		TechnicianID: techID,
		Date:         "2026-08-28",
	}))

	_, ok := store.Get(techID.String(), "2026-08-28")
	assert.False(t, ok)

	require.Len(t, hub.frames, 1)
	var frame map[string]string
	require.NoError(t, json.Unmarshal(hub.frames[0].message, &frame))
	assert.Equal(t, "availability.removed", frame["type"])
	_, hasStatus := frame["status"]
	assert.False(t, hasStatus)
}

func TestAvailabilityProjector_Prime(t *testing.T) {
	store := availability.NewStore()
	projector := services.NewAvailabilityProjector(store, nil, testLogger())

	techID := uuid.New()
	projector.Prime(map[string]availability.Status{
		availability.Key(techID.String(), "2026-08-28"): availability.StatusTravel,
	})

	status, ok := store.Get(techID.String(), "2026-08-28")
	require.True(t, ok)
	assert.Equal(t, availability.StatusTravel, status)
}
