package target

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// Lifecycle is the container lifecycle state observed at resolution time.
type Lifecycle string

const (
	LifecycleRunning    Lifecycle = "running"
	LifecycleWaiting    Lifecycle = "waiting"
	LifecycleTerminated Lifecycle = "terminated"
	LifecycleUnknown    Lifecycle = "unknown"
)

// Target identifies one monitored container. Immutable once created;
// a fresh resolution produces fresh Targets.
type Target struct {
	Namespace string
	Pod       string
	Container string
	State     Lifecycle
}

// Key returns the registry key for this target. Two targets with the same
// key address the same container regardless of lifecycle state.
func (t Target) Key() string {
	return t.Namespace + "/" + t.Pod + "/" + t.Container
}

// Label is the display prefix shown before each log line.
func (t Target) Label() string {
	return t.Pod + " " + t.Container
}

func (t Target) String() string {
	return fmt.Sprintf("%s (%s)", t.Key(), t.State)
}

// lifecycleOf maps a container status state to a Lifecycle.
func lifecycleOf(state corev1.ContainerState) Lifecycle {
	switch {
	case state.Running != nil:
		return LifecycleRunning
	case state.Waiting != nil:
		return LifecycleWaiting
	case state.Terminated != nil:
		return LifecycleTerminated
	default:
		return LifecycleUnknown
	}
}
