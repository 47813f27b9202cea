package ecs

// System is a unit of per-frame behaviour. Query and Singleton fields on the
// system struct are wired by the Scheduler on Register; any other fields are
// free to hold state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
