package driver

// RunStatus captures progress state for one script in a parallel run.
type RunStatus string

const (
	// StatusQueued indicates the script is waiting for a worker.
	StatusQueued RunStatus = "queued"
	// StatusRunning indicates the script is being evaluated.
	StatusRunning RunStatus = "running"
	// StatusDone indicates the script finished without error diagnostics.
	StatusDone RunStatus = "done"
	// StatusError indicates the script produced error diagnostics.
	StatusError RunStatus = "error"
)

// RunEvent reports progress for one script.
type RunEvent struct {
	Path   string
	Status RunStatus
}

// ProgressSink consumes run events.
type ProgressSink interface {
	OnEvent(RunEvent)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- RunEvent
}

func (s ChannelSink) OnEvent(evt RunEvent) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emitEvent(sink ProgressSink, path string, status RunStatus) {
	if sink == nil {
		return
	}
	sink.OnEvent(RunEvent{Path: path, Status: status})
}
