package job

type CreatedEvent struct {
	Result *Job
}

type UpdatedEvent struct {
	Result *Job
}

type DeletedEvent struct {
	Result *Job
}

func NewCreatedEvent(result *Job) *CreatedEvent {
	return &CreatedEvent{Result: result}
}

func NewUpdatedEvent(result *Job) *UpdatedEvent {
	return &UpdatedEvent{Result: result}
}

func NewDeletedEvent(result *Job) *DeletedEvent {
	return &DeletedEvent{Result: result}
}
