package technician

type CreatedEvent struct {
	Result *Technician
}

type UpdatedEvent struct {
	Result *Technician
}

type DeletedEvent struct {
	Result *Technician
}

func NewCreatedEvent(result *Technician) *CreatedEvent {
	return &CreatedEvent{Result: result}
}

func NewUpdatedEvent(result *Technician) *UpdatedEvent {
	return &UpdatedEvent{Result: result}
}

func NewDeletedEvent(result *Technician) *DeletedEvent {
	return &DeletedEvent{Result: result}
}
