package target

import (
	"context"
	"log/slog"
	"strings"

	"github.com/devpopsdotin/logdeck/internal/k8s"
)

// Resolver turns the cluster's current pod set into concrete Targets.
// It is side-effect free and safe to re-invoke (manual reconnect and
// digger entry both call it again).
type Resolver struct {
	client    k8s.Client
	namespace string
	podQuery  string
	matcher   StateMatcher
}

// NewResolver creates a resolver. podQuery is matched by literal substring
// containment against pod names; empty matches every pod.
func NewResolver(client k8s.Client, namespace, podQuery string, matcher StateMatcher) *Resolver {
	return &Resolver{
		client:    client,
		namespace: namespace,
		podQuery:  podQuery,
		matcher:   matcher,
	}
}

// Resolve lists pods and returns the matching (pod, container) targets.
// Zero matches is an empty slice, not an error; only API failures error.
func (r *Resolver) Resolve(ctx context.Context) ([]Target, error) {
	pods, err := r.client.ListPods(ctx, r.namespace)
	if err != nil {
		return nil, err
	}

	var targets []Target
	for _, pod := range pods {
		if r.podQuery != "" && !strings.Contains(pod.Name, r.podQuery) {
			continue
		}
		for _, status := range pod.Status.ContainerStatuses {
			if !r.matcher.Matches(status.State) {
				continue
			}
			targets = append(targets, Target{
				Namespace: r.namespace,
				Pod:       pod.Name,
				Container: status.Name,
				State:     lifecycleOf(status.State),
			})
		}
	}

	slog.Debug("resolved targets", "namespace", r.namespace, "query", r.podQuery, "count", len(targets))
	return targets, nil
}
