package k8s

import (
	"context"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Client is the interface for the Kubernetes operations the viewer needs:
// pod discovery, follow-mode log streaming, and bounded historical fetches.
type Client interface {
	// ListPods returns all pods in a namespace.
	ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error)

	// StreamLogs opens a follow-mode log stream for one container.
	// The caller owns the returned stream and must close it.
	StreamLogs(ctx context.Context, namespace, pod, container string, sinceTime *metav1.Time) (io.ReadCloser, error)

	// FetchLogs retrieves the last tailLines log lines of one container.
	FetchLogs(ctx context.Context, namespace, pod, container string, tailLines int64) ([]string, error)
}
