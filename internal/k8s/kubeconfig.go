package k8s

import (
	"fmt"
	"path/filepath"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
	"k8s.io/client-go/util/homedir"
)

// DetectContext resolves the kubeconfig context to use.
// Priority: the explicitly passed context, then the kubeconfig's
// current-context. An unset current-context is an error.
func DetectContext(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	raw, err := loadRawKubeconfig()
	if err != nil {
		return "", err
	}
	if raw.CurrentContext == "" {
		return "", fmt.Errorf("current-context is not set in kubeconfig")
	}
	return raw.CurrentContext, nil
}

// DetectNamespace resolves the namespace to use.
// Priority: the explicitly passed namespace, then the namespace of the
// selected context in kubeconfig, then "default".
func DetectNamespace(explicit, kubeContext string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	raw, err := loadRawKubeconfig()
	if err != nil {
		return "", err
	}
	if ctx, ok := raw.Contexts[kubeContext]; ok && ctx.Namespace != "" {
		return ctx.Namespace, nil
	}
	return "default", nil
}

func loadRawKubeconfig() (clientcmdapi.Config, error) {
	kubeconfig := filepath.Join(homedir.HomeDir(), ".kube", "config")
	loadingRules := &clientcmd.ClientConfigLoadingRules{
		ExplicitPath: kubeconfig,
	}
	raw, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{},
	).RawConfig()
	if err != nil {
		return clientcmdapi.Config{}, fmt.Errorf("load kubeconfig: %w", err)
	}
	return raw, nil
}
