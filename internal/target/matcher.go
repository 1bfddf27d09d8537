package target

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// StateMatcher filters containers by lifecycle state. "all" matches any state.
type StateMatcher struct {
	states []string
}

// NewStateMatcher validates the accepted states and builds a matcher.
// An empty list is equivalent to "all".
func NewStateMatcher(states []string) (StateMatcher, error) {
	if len(states) == 0 {
		states = []string{"all"}
	}
	for _, s := range states {
		switch s {
		case "all", "running", "terminated", "waiting":
		default:
			return StateMatcher{}, fmt.Errorf("unknown container state %q", s)
		}
	}
	return StateMatcher{states: states}, nil
}

// Matches reports whether a container state satisfies the matcher.
func (m StateMatcher) Matches(state corev1.ContainerState) bool {
	for _, accept := range m.states {
		switch accept {
		case "all":
			return true
		case "running":
			if state.Running != nil {
				return true
			}
		case "terminated":
			if state.Terminated != nil {
				return true
			}
		case "waiting":
			if state.Waiting != nil {
				return true
			}
		}
	}
	return false
}
