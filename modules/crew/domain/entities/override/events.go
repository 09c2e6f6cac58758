package override

type SetEvent struct {
	Result *Override
}

type RemovedEvent struct {
	Result *Override
}

func NewSetEvent(result *Override) *SetEvent {
	return &SetEvent{Result: result}
}

func NewRemovedEvent(result *Override) *RemovedEvent {
	return &RemovedEvent{Result: result}
}
