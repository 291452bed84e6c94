package kube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func newPod(name, app, namespace string, phase corev1.PodPhase, ready bool) *corev1.Pod {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    map[string]string{"app": app},
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{Name: "main"}, {Name: "sidecar"}},
		},
		Status: corev1.PodStatus{
			Phase:      phase,
			Conditions: []corev1.PodCondition{{Type: corev1.PodReady, Status: status}},
			ContainerStatuses: []corev1.ContainerStatus{
				{Name: "main", Ready: true},
				{Name: "sidecar", Ready: ready},
			},
		},
	}
}

func TestGetPods(t *testing.T) {
	t.Parallel()
	clientset := fake.NewSimpleClientset(
		newPod("web-1", "web", "default", corev1.PodRunning, true),
		newPod("worker-1", "worker", "default", corev1.PodPending, false),
		newPod("elsewhere-1", "web", "other", corev1.PodRunning, true),
	)

	pods, err := NewForClientset(clientset, "default").GetPods(context.Background())
	require.NoError(t, err)
	require.Len(t, pods, 2)

	byName := map[string]int{pods[0].Name: 0, pods[1].Name: 1}
	web := pods[byName["web-1"]]
	assert.Equal(t, "web", web.App)
	assert.Equal(t, 2, web.Ready)
	assert.Equal(t, 2, web.Total)
	assert.Equal(t, "Running", web.Phase)
	assert.True(t, web.IsReady)

	worker := pods[byName["worker-1"]]
	assert.Equal(t, 1, worker.Ready)
	assert.Equal(t, "Pending", worker.Phase)
	assert.False(t, worker.IsReady)
}

func TestInNamespace(t *testing.T) {
	t.Parallel()
	clientset := fake.NewSimpleClientset(
		newPod("web-1", "web", "apps", corev1.PodRunning, true),
	)

	client := NewForClientset(clientset, "")
	pods, err := client.GetPods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pods)

	pods, err = client.InNamespace("apps").GetPods(context.Background())
	require.NoError(t, err)
	assert.Len(t, pods, 1)
}

func TestIsPodReady(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		pod      *corev1.Pod
		expected bool
	}{
		{
			name:     "running with true ready condition",
			pod:      newPod("a", "web", "default", corev1.PodRunning, true),
			expected: true,
		},
		{
			name:     "running with false ready condition",
			pod:      newPod("b", "web", "default", corev1.PodRunning, false),
			expected: false,
		},
		{
			name:     "pending never ready",
			pod:      newPod("c", "web", "default", corev1.PodPending, true),
			expected: false,
		},
		{
			name:     "running without conditions",
			pod:      &corev1.Pod{Status: corev1.PodStatus{Phase: corev1.PodRunning}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, isPodReady(tt.pod))
		})
	}
}

func TestNewFromKubeconfigMissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewFromKubeconfig("/nonexistent/kubeconfig")
	require.Error(t, err)
}
