package ecs

// UpdateFrame is handed to every system during one Scheduler.Once call.
// DeltaTime is in seconds.
type UpdateFrame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(index uint64, dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
