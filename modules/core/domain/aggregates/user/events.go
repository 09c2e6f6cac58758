package user

type CreatedEvent struct {
	Result *User
}

type UpdatedEvent struct {
	Result *User
}

func NewCreatedEvent(result *User) *CreatedEvent {
	return &CreatedEvent{Result: result}
}

func NewUpdatedEvent(result *User) *UpdatedEvent {
	return &UpdatedEvent{Result: result}
}
