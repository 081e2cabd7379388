package asgard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/asg-deployer/types"
)

func TestAwaitCompletion(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []string
		wantStatus string
		wantPolls  int
	}{
		{"completed at once", []string{"completed"}, "completed", 1},
		{"completed after polls", []string{"running", "running", "running", "completed"}, "completed", 4},
		{"failed after polls", []string{"running", "failed"}, "failed", 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeAsgard(t)
			f.taskStatuses = test.statuses
			f.taskLog = []string{"line 1", "line 2"}
			f.tasks[7] = 0

			p := NewTaskPoller(f.client(), 5*time.Millisecond)
			task, err := p.AwaitCompletion(context.Background(), f.server.URL+"/task/show/7", time.Second)
			require.NoError(t, err)

			assert.Equal(t, test.wantStatus, task.Status)
			assert.Equal(t, []string{"line 1", "line 2"}, task.Log)
			assert.Equal(t, float64(7), task.Raw["id"])
			assert.Equal(t, test.wantPolls, f.callCount(TaskShow))
		})
	}
}

func TestAwaitCompletionTimeout(t *testing.T) {
	f := newFakeAsgard(t)
	f.taskStatuses = []string{"running"}
	f.tasks[1] = 0

	p := NewTaskPoller(f.client(), time.Second)
	start := time.Now()
	_, err := p.AwaitCompletion(context.Background(), "/task/show/1", 2*time.Second)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, types.IsTimeout(err), "expected a timeout error, got: %v", err)
	assert.True(t, elapsed >= 2*time.Second, "returned before the deadline: %s", elapsed)
	assert.True(t, elapsed < 3500*time.Millisecond, "deadline was extended: %s", elapsed)
	assert.Equal(t, 2, f.callCount(TaskShow))
}

func TestAwaitCompletionCancelled(t *testing.T) {
	f := newFakeAsgard(t)
	f.taskStatuses = []string{"running"}
	f.tasks[1] = 0

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	p := NewTaskPoller(f.client(), 10*time.Millisecond)
	start := time.Now()
	_, err := p.AwaitCompletion(ctx, "/task/show/1", time.Minute)

	require.Error(t, err)
	assert.False(t, types.IsTimeout(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, time.Since(start) < 5*time.Second)
}

func TestAwaitCompletionMissingStatus(t *testing.T) {
	f := newFakeAsgard(t)
	// Serve a payload without any status through the cluster listing route.
	f.listing = map[string]interface{}{"id": 3}

	p := NewTaskPoller(f.client(), 5*time.Millisecond)
	_, err := p.AwaitCompletion(context.Background(), "/cluster/list.json", time.Second)
	require.Error(t, err)
	assert.True(t, types.IsBackendDataError(err), "expected a backend data error, got: %v", err)
}

func TestTaskHandleNormalization(t *testing.T) {
	c, err := NewClient(nil, "http://asgard.example.com:8091/us-east-1/", "tok")
	require.NoError(t, err)
	p := NewTaskPoller(c, 0)

	tests := []struct {
		handle string
		want   string
	}{
		{"http://asgard.example.com:8091/us-east-1/task/show/75", "http://asgard.example.com:8091/us-east-1/task/show/75.json"},
		{"http://asgard.example.com:8091/us-east-1/task/show/75.json", "http://asgard.example.com:8091/us-east-1/task/show/75.json"},
		{"http://asgard.example.com:8091/us-east-1/task/show/75?asgardApiToken=tok", "http://asgard.example.com:8091/us-east-1/task/show/75.json"},
		{"/us-east-1/task/show/75", "http://asgard.example.com:8091/us-east-1/task/show/75.json"},
	}

	for _, test := range tests {
		u, err := p.normalize(test.handle)
		if err != nil {
			t.Errorf("\n- %v\n- Normalizing shouldn't fail, it did: %v", test, err)
			continue
		}
		if u.String() != test.want {
			t.Errorf("\n- %v\n- Wrong canonical handle, want: %s; got: %s", test, test.want, u)
		}
	}
}
