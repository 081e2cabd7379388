package asgard

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// Default task timeouts
const (
	DefaultCreateTimeout     = 300 * time.Second
	DefaultActivateTimeout   = 301 * time.Second
	DefaultDeactivateTimeout = 300 * time.Second
)

// Timeouts bound the wait for each kind of lifecycle task
type Timeouts struct {
	Create     time.Duration
	Activate   time.Duration
	Deactivate time.Duration
}

// DefaultTimeouts returns the default lifecycle task timeouts
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Create:     DefaultCreateTimeout,
		Activate:   DefaultActivateTimeout,
		Deactivate: DefaultDeactivateTimeout,
	}
}

type action int

const (
	actionCreate action = iota
	actionActivate
	actionDeactivate
)

func (a action) String() string {
	switch a {
	case actionCreate:
		return "create"
	case actionActivate:
		return "activate"
	case actionDeactivate:
		return "deactivate"
	}
	return "unknown"
}

func (a action) route() string {
	switch a {
	case actionCreate:
		return CreateNextGroup
	case actionActivate:
		return Activate
	default:
		return Deactivate
	}
}

func (a action) failure() string {
	switch a {
	case actionCreate:
		return "Failure during new ASG creation"
	case actionActivate:
		return "Failure while enabling ASG"
	default:
		return "Failure while disabling ASG"
	}
}

// Lifecycle creates, activates and deactivates ASGs through asgard tasks
type Lifecycle struct {
	client    *Client
	poller    *TaskPoller
	directory *Directory
	timeouts  Timeouts
}

// NewLifecycle returns a lifecycle controller. Unset timeouts take their
// default value.
func NewLifecycle(c *Client, p *TaskPoller, d *Directory, t Timeouts) *Lifecycle {
	def := DefaultTimeouts()
	if t.Create <= 0 {
		t.Create = def.Create
	}
	if t.Activate <= 0 {
		t.Activate = def.Activate
	}
	if t.Deactivate <= 0 {
		t.Deactivate = def.Deactivate
	}

	return &Lifecycle{
		client:    c,
		poller:    p,
		directory: d,
		timeouts:  t,
	}
}

func (l *Lifecycle) timeout(a action) time.Duration {
	switch a {
	case actionCreate:
		return l.timeouts.Create
	case actionActivate:
		return l.timeouts.Activate
	default:
		return l.timeouts.Deactivate
	}
}

// run submits an action, waits for its task and turns a failed task into a
// BackendError carrying the task log.
func (l *Lifecycle) run(ctx context.Context, a action, form url.Values) error {
	handle, err := l.client.postForm(ctx, a.route(), form)
	if err != nil {
		return errors.Wrapf(err, "submitting %s of %s", a, form.Get("name"))
	}
	log.Debugf("Sent %s request for %s, task: %s", a, form.Get("name"), handle)

	task, err := l.poller.AwaitCompletion(ctx, handle, l.timeout(a))
	if err != nil {
		return err
	}
	if task.Failed() {
		return &types.BackendError{
			Msg:  a.failure(),
			Task: task.Handle,
			Log:  task.Log,
		}
	}
	return nil
}

// CreateASG creates a new ASG in the cluster running imageID and returns its
// name.
//
// The name is inferred as the last ASG of the cluster once the task is done.
// If somebody else creates an ASG in the same cluster at the same time, the
// wrong name can be returned.
func (l *Lifecycle) CreateASG(ctx context.Context, cluster, imageID string) (string, error) {
	form := url.Values{}
	form.Set("name", cluster)
	form.Set("imageId", imageID)
	if err := l.run(ctx, actionCreate, form); err != nil {
		return "", err
	}

	asgs, err := l.directory.GroupsForCluster(ctx, cluster)
	if err != nil {
		return "", err
	}
	if len(asgs) == 0 {
		return "", types.NewBackendDataError("cluster %s has no ASGs after creating one", cluster)
	}
	newASG := asgs[len(asgs)-1]
	log.Debugf("New ASG(%s) created in cluster(%s).", newASG, cluster)

	return newASG, nil
}

// ActivateASG enables traffic and autoscaling on an ASG
func (l *Lifecycle) ActivateASG(ctx context.Context, asg string) error {
	form := url.Values{}
	form.Set("name", asg)
	return l.run(ctx, actionActivate, form)
}

// DeactivateASG disables traffic and autoscaling on an ASG. Deactivating an
// inactive ASG is a no-op on the backend.
func (l *Lifecycle) DeactivateASG(ctx context.Context, asg string) error {
	form := url.Values{}
	form.Set("name", asg)
	return l.run(ctx, actionDeactivate, form)
}

// LoadBalancers returns the load balancers attached to an ASG
func (l *Lifecycle) LoadBalancers(ctx context.Context, asg string) ([]string, error) {
	return l.directory.LoadBalancersForGroup(ctx, asg)
}
