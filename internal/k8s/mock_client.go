package k8s

import (
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// MockClient is a mock implementation of the Client interface for testing
type MockClient struct {
	ListPodsFunc   func(ctx context.Context, namespace string) ([]corev1.Pod, error)
	StreamLogsFunc func(ctx context.Context, namespace, pod, container string, sinceTime *metav1.Time) (io.ReadCloser, error)
	FetchLogsFunc  func(ctx context.Context, namespace, pod, container string, tailLines int64) ([]string, error)
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error) {
	if m.ListPodsFunc != nil {
		return m.ListPodsFunc(ctx, namespace)
	}
	return nil, fmt.Errorf("ListPodsFunc not implemented")
}

func (m *MockClient) StreamLogs(ctx context.Context, namespace, pod, container string, sinceTime *metav1.Time) (io.ReadCloser, error) {
	if m.StreamLogsFunc != nil {
		return m.StreamLogsFunc(ctx, namespace, pod, container, sinceTime)
	}
	return nil, fmt.Errorf("StreamLogsFunc not implemented")
}

func (m *MockClient) FetchLogs(ctx context.Context, namespace, pod, container string, tailLines int64) ([]string, error) {
	if m.FetchLogsFunc != nil {
		return m.FetchLogsFunc(ctx, namespace, pod, container, tailLines)
	}
	return nil, fmt.Errorf("FetchLogsFunc not implemented")
}
