package asgard

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// DefaultPollInterval is the time between two task status queries
const DefaultPollInterval = 1 * time.Second

// TaskPoller waits for asynchronous asgard tasks to finish
type TaskPoller struct {
	client   *Client
	interval time.Duration
}

// NewTaskPoller returns a poller querying task status every interval
func NewTaskPoller(c *Client, interval time.Duration) *TaskPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &TaskPoller{
		client:   c,
		interval: interval,
	}
}

// AwaitCompletion polls the task behind handle until it is completed or
// failed. The deadline is absolute: it starts when the call starts and is
// never extended. A failed task is not an error here, callers decide.
func (p *TaskPoller) AwaitCompletion(ctx context.Context, handle string, timeout time.Duration) (*types.Task, error) {
	u, err := p.normalize(handle)
	if err != nil {
		return nil, err
	}

	log.Debugf("Task URL: %s", u)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		task, err := p.status(ctx, u)
		if err != nil {
			return nil, err
		}
		if task.Terminal() {
			return task, nil
		}

		t := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, errors.Wrapf(ctx.Err(), "waiting for task %s", u)
		case <-t.C:
		}
	}

	return nil, &types.TimeoutError{
		Waiting: fmt.Sprintf("task %s", u),
		Timeout: timeout,
	}
}

// normalize returns the canonical status query URL of a task handle
func (p *TaskPoller) normalize(handle string) (*url.URL, error) {
	u, err := p.client.resolve(handle)
	if err != nil {
		return nil, err
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, ".json") {
		u.Path += ".json"
	}
	return u, nil
}

func (p *TaskPoller) status(ctx context.Context, u *url.URL) (*types.Task, error) {
	raw := map[string]interface{}{}
	if err := p.client.getURL(ctx, &raw, u); err != nil {
		return nil, err
	}

	status, ok := raw["status"].(string)
	if !ok {
		return nil, types.NewBackendDataError("expected a 'status' string in task %s: %v", u, raw)
	}

	return &types.Task{
		Handle: u.String(),
		Status: status,
		Log:    taskLog(raw["log"]),
		Raw:    raw,
	}, nil
}

// taskLog flattens the task log, which asgard sends as a list of lines
func taskLog(v interface{}) []string {
	switch l := v.(type) {
	case nil:
		return nil
	case string:
		return []string{l}
	case []interface{}:
		lines := make([]string, 0, len(l))
		for _, line := range l {
			lines = append(lines, fmt.Sprint(line))
		}
		return lines
	default:
		return []string{fmt.Sprint(l)}
	}
}
