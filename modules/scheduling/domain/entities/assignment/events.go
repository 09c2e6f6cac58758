package assignment

type AssignedEvent struct {
	Result *Assignment
}

type UnassignedEvent struct {
	Result *Assignment
}

func NewAssignedEvent(result *Assignment) *AssignedEvent {
	return &AssignedEvent{Result: result}
}

func NewUnassignedEvent(result *Assignment) *UnassignedEvent {
	return &UnassignedEvent{Result: result}
}
