package asgard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/asg-deployer/types"
)

func TestCreateASG(t *testing.T) {
	f := newFakeAsgard(t)
	f.clusters["edx-edxapp"] = []string{"edx-edxapp-v009", "edx-edxapp-v010"}
	f.onCreate = func(cluster, imageID string) {
		f.clusters[cluster] = append(f.clusters[cluster], "edx-edxapp-v011")
	}
	f.taskStatuses = []string{"running", "completed"}

	got, err := f.lifecycle().CreateASG(context.Background(), "edx-edxapp", "ami-0123")
	require.NoError(t, err)
	assert.Equal(t, "edx-edxapp-v011", got)

	forms := f.forms(CreateNextGroup)
	require.Len(t, forms, 1)
	assert.Equal(t, "edx-edxapp", forms[0].Get("name"))
	assert.Equal(t, "ami-0123", forms[0].Get("imageId"))
	assert.Equal(t, 2, f.callCount(TaskShow))
	assert.Equal(t, 1, f.callCount(ClusterShow))
}

func TestCreateASGTaskFailed(t *testing.T) {
	f := newFakeAsgard(t)
	f.clusters["edx-edxapp"] = []string{"edx-edxapp-v010"}
	f.taskStatuses = []string{"running", "failed"}
	f.taskLog = []string{"boom"}

	_, err := f.lifecycle().CreateASG(context.Background(), "edx-edxapp", "ami-0123")
	require.Error(t, err)
	assert.True(t, types.IsBackendError(err), "expected a backend error, got: %v", err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, f.callCount(ClusterShow), "the cluster ASGs shouldn't be queried after a failed task")
}

func TestCreateASGTimeout(t *testing.T) {
	f := newFakeAsgard(t)
	f.clusters["edx-edxapp"] = []string{"edx-edxapp-v010"}
	f.taskStatuses = []string{"running"}

	c := f.client()
	l := NewLifecycle(c, NewTaskPoller(c, 10*time.Millisecond), NewDirectory(c), Timeouts{Create: 50 * time.Millisecond, Activate: time.Second, Deactivate: time.Second})

	_, err := l.CreateASG(context.Background(), "edx-edxapp", "ami-0123")
	require.Error(t, err)
	assert.True(t, types.IsTimeout(err), "expected a timeout error, got: %v", err)
	assert.Equal(t, 0, f.callCount(ClusterShow))
}

func TestActivateDeactivateASG(t *testing.T) {
	tests := []struct {
		name      string
		route     string
		statuses  []string
		wantError bool
		wantMsg   string
	}{
		{"activate", Activate, []string{"running", "completed"}, false, ""},
		{"activate failed", Activate, []string{"failed"}, true, "Failure while enabling ASG"},
		{"deactivate", Deactivate, []string{"completed"}, false, ""},
		{"deactivate failed", Deactivate, []string{"running", "failed"}, true, "Failure while disabling ASG"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeAsgard(t)
			f.taskStatuses = test.statuses
			f.taskLog = []string{"task output"}
			l := f.lifecycle()

			var err error
			if test.route == Activate {
				err = l.ActivateASG(context.Background(), "edx-edxapp-v011")
			} else {
				err = l.DeactivateASG(context.Background(), "edx-edxapp-v011")
			}

			forms := f.forms(test.route)
			require.Len(t, forms, 1)
			assert.Equal(t, "edx-edxapp-v011", forms[0].Get("name"))

			if !test.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, types.IsBackendError(err))
			assert.Contains(t, err.Error(), test.wantMsg)
			assert.Contains(t, err.Error(), "task output")
		})
	}
}

func TestLifecycleSubmitRejected(t *testing.T) {
	f := newFakeAsgard(t)
	f.failRoutes[Activate] = 503

	err := f.lifecycle().ActivateASG(context.Background(), "edx-edxapp-v011")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, 0, f.callCount(TaskShow))
}

func TestTokenIsSent(t *testing.T) {
	f := newFakeAsgard(t)
	f.clusters["edx-edxapp"] = []string{"edx-edxapp-v010"}

	c, err := NewClient(nil, f.server.URL, "wrong-token")
	require.NoError(t, err)

	_, err = NewDirectory(c).GroupsForCluster(context.Background(), "edx-edxapp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestLifecycleDefaultTimeouts(t *testing.T) {
	l := NewLifecycle(nil, nil, nil, Timeouts{Create: time.Minute})

	if got := l.timeout(actionCreate); got != time.Minute {
		t.Errorf("expected create timeout %s, got %s", time.Minute, got)
	}
	if got := l.timeout(actionActivate); got != DefaultActivateTimeout {
		t.Errorf("expected activate timeout %s, got %s", DefaultActivateTimeout, got)
	}
	if got := l.timeout(actionDeactivate); got != DefaultDeactivateTimeout {
		t.Errorf("expected deactivate timeout %s, got %s", DefaultDeactivateTimeout, got)
	}
}
