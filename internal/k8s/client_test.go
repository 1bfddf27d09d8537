package k8s

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestMockClient_ListPods(t *testing.T) {
	mock := NewMockClient()

	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]corev1.Pod, error) {
		if namespace != "default" {
			return nil, errors.New("unexpected namespace")
		}
		return []corev1.Pod{
			{ObjectMeta: metav1.ObjectMeta{Name: "api-1"}},
			{ObjectMeta: metav1.ObjectMeta{Name: "api-2"}},
		}, nil
	}

	// Test success case
	pods, err := mock.ListPods(context.Background(), "default")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if len(pods) != 2 {
		t.Errorf("Expected 2 pods, got %d", len(pods))
	}

	// Test error case
	_, err = mock.ListPods(context.Background(), "other")
	if err == nil {
		t.Error("Expected error, got nil")
	}
}

func TestMockClient_StreamLogs(t *testing.T) {
	mock := NewMockClient()

	streamCalled := false
	mock.StreamLogsFunc = func(ctx context.Context, namespace, pod, container string, sinceTime *metav1.Time) (io.ReadCloser, error) {
		streamCalled = true
		if namespace != "default" || pod != "api-1" || container != "app" {
			return nil, errors.New("invalid parameters")
		}
		return io.NopCloser(strings.NewReader("hello\n")), nil
	}

	stream, err := mock.StreamLogs(context.Background(), "default", "api-1", "app", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer stream.Close()

	if !streamCalled {
		t.Error("StreamLogsFunc was not called")
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("Expected hello, got %s", data)
	}
}

func TestMockClient_FetchLogs(t *testing.T) {
	mock := NewMockClient()

	mock.FetchLogsFunc = func(ctx context.Context, namespace, pod, container string, tailLines int64) ([]string, error) {
		if tailLines != 300 {
			return nil, errors.New("unexpected tail lines")
		}
		return []string{"line one", "line two"}, nil
	}

	lines, err := mock.FetchLogs(context.Background(), "default", "api-1", "app", 300)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(lines))
	}
}

func TestMockClient_NotImplemented(t *testing.T) {
	mock := NewMockClient()

	if _, err := mock.ListPods(context.Background(), "default"); err == nil {
		t.Error("Expected error for unimplemented ListPods, got nil")
	}
	if _, err := mock.StreamLogs(context.Background(), "default", "api-1", "app", nil); err == nil {
		t.Error("Expected error for unimplemented StreamLogs, got nil")
	}
	if _, err := mock.FetchLogs(context.Background(), "default", "api-1", "app", 300); err == nil {
		t.Error("Expected error for unimplemented FetchLogs, got nil")
	}
}

func TestDetectContext_ExplicitWins(t *testing.T) {
	got, err := DetectContext("my-cluster")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "my-cluster" {
		t.Errorf("Expected my-cluster, got %s", got)
	}
}

func TestDetectNamespace_ExplicitWins(t *testing.T) {
	got, err := DetectNamespace("staging", "my-cluster")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "staging" {
		t.Errorf("Expected staging, got %s", got)
	}
}
