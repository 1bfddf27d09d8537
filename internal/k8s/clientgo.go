package k8s

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// ClientGoClient implements Client using client-go
type ClientGoClient struct {
	clientset kubernetes.Interface
	context   string // kubeconfig context name
}

// NewClientGoClient creates a new client-go based client
func NewClientGoClient(kubeContext string) (*ClientGoClient, error) {
	kubeconfig := filepath.Join(homedir.HomeDir(), ".kube", "config")

	// Load config with specific context
	configLoadingRules := &clientcmd.ClientConfigLoadingRules{
		ExplicitPath: kubeconfig,
	}
	configOverrides := &clientcmd.ConfigOverrides{}
	if kubeContext != "" {
		configOverrides.CurrentContext = kubeContext
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		configLoadingRules,
		configOverrides,
	).ClientConfig()
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, err
	}

	return &ClientGoClient{
		clientset: clientset,
		context:   kubeContext,
	}, nil
}

// ListPods returns all pods in a namespace
func (c *ClientGoClient) ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error) {
	slog.Debug("listing pods", "namespace", namespace, "context", c.context)

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Error("failed to list pods", "namespace", namespace, "error", err)
		return nil, HandleK8sError(err, "namespace", namespace)
	}

	slog.Debug("pods listed", "namespace", namespace, "count", len(pods.Items))
	return pods.Items, nil
}

// StreamLogs opens a follow-mode log stream for one container
func (c *ClientGoClient) StreamLogs(ctx context.Context, namespace, pod, container string, sinceTime *metav1.Time) (io.ReadCloser, error) {
	slog.Debug("opening log stream", "namespace", namespace, "pod", pod, "container", container)

	opts := &corev1.PodLogOptions{
		Container: container,
		Follow:    true,
	}
	if sinceTime != nil {
		opts.SinceTime = sinceTime
	}

	stream, err := c.clientset.CoreV1().Pods(namespace).GetLogs(pod, opts).Stream(ctx)
	if err != nil {
		slog.Error("failed to open log stream", "pod", pod, "container", container, "error", err)
		return nil, HandleK8sError(err, "pod", pod)
	}
	return stream, nil
}

// FetchLogs retrieves the last tailLines log lines of one container
func (c *ClientGoClient) FetchLogs(ctx context.Context, namespace, pod, container string, tailLines int64) ([]string, error) {
	slog.Debug("fetching logs", "namespace", namespace, "pod", pod, "container", container, "tailLines", tailLines)

	opts := &corev1.PodLogOptions{
		Container: container,
		TailLines: &tailLines,
	}

	stream, err := c.clientset.CoreV1().Pods(namespace).GetLogs(pod, opts).Stream(ctx)
	if err != nil {
		slog.Error("failed to fetch logs", "pod", pod, "container", container, "error", err)
		return nil, HandleK8sError(err, "pod", pod)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}

	slog.Debug("logs fetched", "pod", pod, "container", container, "lines", len(lines))
	return lines, nil
}
