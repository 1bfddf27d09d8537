package stream

// ConnState tracks one target's connection health. Transitions:
//
//	Streaming -> (stream error)            -> Errored
//	Streaming -> (stream ended cleanly)    -> AwaitingReconnect
//	Errored / AwaitingReconnect -> (user reconnect) -> Reconnecting
//	Reconnecting -> (stream reopened)      -> Streaming
//
// Errored and AwaitingReconnect are stable until the user acts: the
// supervisor never retries on its own.
type ConnState string

const (
	StateStreaming         ConnState = "streaming"
	StateErrored           ConnState = "errored"
	StateAwaitingReconnect ConnState = "awaiting-reconnect"
	StateReconnecting      ConnState = "reconnecting"
)

// Active reports whether a worker currently owns this target.
func (s ConnState) Active() bool {
	return s == StateStreaming || s == StateReconnecting
}

// TargetStatus pairs a target key with its connection state for display.
type TargetStatus struct {
	Key   string
	State ConnState
}
