package services

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
	"github.com/crewdeck/crewdeck/pkg/ws"
)

// AvailabilityProjector keeps the in-memory availability store in sync with
// persisted overrides and mirrors every change onto the realtime channel.
type AvailabilityProjector struct {
	store  *availability.Store
	hub    ws.Huber
	logger *logrus.Logger
}

func NewAvailabilityProjector(store *availability.Store, hub ws.Huber, logger *logrus.Logger) *AvailabilityProjector {
	return &AvailabilityProjector{
		store:  store,
		hub:    hub,
		logger: logger,
	}
}

// Register subscribes the projector to override change events.
func (p *AvailabilityProjector) Register(bus eventbus.EventBus) {
	bus.Subscribe(p.OnSet)
	bus.Subscribe(p.OnRemoved)
}

// Prime replaces the store's contents wholesale, typically with the snapshot
// loaded at startup.
func (p *AvailabilityProjector) Prime(entries map[string]availability.Status) {
	p.store.SetAll(entries)
}

func (p *AvailabilityProjector) OnSet(event *override.SetEvent) {
	o := event.Result
	p.store.SetOne(o.Key(), o.Status)
	p.broadcast("availability.set", o, string(o.Status))
}

func (p *AvailabilityProjector) OnRemoved(event *override.RemovedEvent) {
	o := event.Result
	p.store.Remove(o.Key())
	p.broadcast("availability.removed", o, "")
}

type availabilityFrame struct {
	Type         string `json:"type"`
	TechnicianID string `json:"technicianId"`
	Date         string `json:"date"`
	Status       string `json:"status,omitempty"`
}

func (p *AvailabilityProjector) broadcast(kind string, o *override.Override, status string) {
	if p.hub == nil {
		return
	}
	payload, err := json.Marshal(availabilityFrame{
		Type:         kind,
		TechnicianID: o.TechnicianID.String(),
		Date:         o.Date,
		Status:       status,
	})
	if err != nil {
		p.logger.WithError(err).Error("failed to encode availability frame")
		return
	}
	p.hub.Broadcast(ws.ChannelAvailability, payload)
}
