// Package kube adapts the Kubernetes API to the engine's pod-status
// provider interface and builds clients from engine-written kubeconfigs.
package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/errdefs"
)

// Client queries pod status in one namespace.
type Client struct {
	clientset kubernetes.Interface
	namespace string
}

// NewFromKubeconfig builds a client from a kubeconfig file.
func NewFromKubeconfig(path string) (*Client, error) {
	cfg, err := clientcmd.BuildConfigFromFlags("", path)
	if err != nil {
		return nil, &errdefs.ConfigError{Reason: "failed to load kubeconfig " + path, Err: err}
	}
	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, &errdefs.ConfigError{Reason: "failed to create kubernetes client", Err: err}
	}
	return &Client{clientset: clientset, namespace: corev1.NamespaceDefault}, nil
}

// NewForClientset wraps an existing clientset; used by tests and by engine
// code that already holds one.
func NewForClientset(clientset kubernetes.Interface, namespace string) *Client {
	if namespace == "" {
		namespace = corev1.NamespaceDefault
	}
	return &Client{clientset: clientset, namespace: namespace}
}

// InNamespace returns a client scoped to the given namespace.
func (c *Client) InNamespace(namespace string) *Client {
	return &Client{clientset: c.clientset, namespace: namespace}
}

// GetPods returns the readiness snapshot of every pod in the namespace.
func (c *Client) GetPods(ctx context.Context) ([]engine.PodStatus, error) {
	pods, err := c.clientset.CoreV1().Pods(c.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, wrapAPIError(err)
	}

	out := make([]engine.PodStatus, 0, len(pods.Items))
	for i := range pods.Items {
		out = append(out, mapPod(&pods.Items[i]))
	}
	return out, nil
}

func mapPod(pod *corev1.Pod) engine.PodStatus {
	ready := 0
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			ready++
		}
	}
	return engine.PodStatus{
		Name:    pod.Name,
		App:     pod.Labels["app"],
		Ready:   ready,
		Total:   len(pod.Spec.Containers),
		Phase:   string(pod.Status.Phase),
		IsReady: isPodReady(pod),
	}
}

// isPodReady requires the Running phase and a true Ready condition.
func isPodReady(pod *corev1.Pod) bool {
	if pod.Status.Phase != corev1.PodRunning {
		return false
	}
	for _, condition := range pod.Status.Conditions {
		if condition.Type == corev1.PodReady && condition.Status == corev1.ConditionTrue {
			return true
		}
	}
	return false
}

func wrapAPIError(err error) error {
	apiErr := &errdefs.APIError{Provider: "kubernetes", Err: err}
	if status, ok := err.(apierrors.APIStatus); ok {
		apiErr.StatusCode = int(status.Status().Code)
		apiErr.Code = string(status.Status().Reason)
	}
	return apiErr
}
