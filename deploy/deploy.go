package deploy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/slok/asg-deployer/types"
)

// Generate collaborator mocks running go generate
//go:generate mockgen -source deploy.go -package deploymock -destination ../mock/deploymock/deploy_mock.go

// Default health gate bounds
const (
	DefaultInstancesHealthyTimeout = 300 * time.Second
	DefaultELBHealthyTimeout       = 600 * time.Second
	DefaultConcurrency             = 4
)

// ErrNoClusters is returned when no cluster serves the image's deployment
var ErrNoClusters = errors.New("no cluster is serving ASGs for this image")

// errSkipped marks clusters that were not started because another failed
var errSkipped = errors.New("skipped")

// Inventory tells which ASGs an image is meant to replace
type Inventory interface {
	EDCForImage(ctx context.Context, imageID string) (types.EDC, error)
	ASGsForEDC(ctx context.Context, edc types.EDC) ([]string, error)
}

// Directory resolves the clusters owning ASGs
type Directory interface {
	ClustersForGroups(ctx context.Context, groups []string) (map[string][]string, error)
}

// Lifecycle creates, activates and deactivates ASGs
type Lifecycle interface {
	CreateASG(ctx context.Context, cluster, imageID string) (string, error)
	ActivateASG(ctx context.Context, asg string) error
	DeactivateASG(ctx context.Context, asg string) error
	LoadBalancers(ctx context.Context, asg string) ([]string, error)
}

// HealthGate blocks until instances are healthy
type HealthGate interface {
	WaitForInService(ctx context.Context, asgNames []string, timeout time.Duration) error
	WaitForHealthyELBs(ctx context.Context, lbNames []string, timeout time.Duration) error
}

// Reporter receives a record on every deployment transition
type Reporter interface {
	Report(p types.Progress)
}

// Options tune a Deployer
type Options struct {
	Concurrency             int
	InstancesHealthyTimeout time.Duration
	ELBHealthyTimeout       time.Duration
}

// DefaultOptions returns the default deployer options
func DefaultOptions() Options {
	return Options{
		Concurrency:             DefaultConcurrency,
		InstancesHealthyTimeout: DefaultInstancesHealthyTimeout,
		ELBHealthyTimeout:       DefaultELBHealthyTimeout,
	}
}

// Deployer rolls a new image out to every cluster serving its deployment,
// blue/green: a new ASG per cluster is brought up and checked before the old
// ones are retired.
type Deployer struct {
	inventory Inventory
	directory Directory
	lifecycle Lifecycle
	health    HealthGate
	reporter  Reporter
	opts      Options
}

// NewDeployer returns a deployer. A nil reporter logs the progress.
func NewDeployer(inv Inventory, dir Directory, lc Lifecycle, hg HealthGate, r Reporter, opts Options) *Deployer {
	if r == nil {
		r = LogReporter{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.InstancesHealthyTimeout <= 0 {
		opts.InstancesHealthyTimeout = DefaultInstancesHealthyTimeout
	}
	if opts.ELBHealthyTimeout <= 0 {
		opts.ELBHealthyTimeout = DefaultELBHealthyTimeout
	}
	return &Deployer{
		inventory: inv,
		directory: dir,
		lifecycle: lc,
		health:    hg,
		reporter:  r,
		opts:      opts,
	}
}

// Deploy rolls imageID out. Any error means the deployment failed and needs
// operator attention; compensating deactivations were already attempted.
func (d *Deployer) Deploy(ctx context.Context, imageID string) error {
	_, err := d.Run(ctx, imageID)
	return err
}

// Run is Deploy returning the final plan. The plan is nil if discovery failed.
func (d *Deployer) Run(ctx context.Context, imageID string) (*types.DeploymentPlan, error) {
	r := &run{Deployer: d, imageID: imageID}

	r.report(types.Progress{Phase: types.PhaseDiscover, Message: "Processing request to deploy " + imageID})
	plan, err := r.discover(ctx)
	if err != nil {
		r.report(types.Progress{Phase: types.PhaseDiscover, Err: err, Message: "Discovery failed"})
		return nil, err
	}
	r.plan = plan

	steps := []struct {
		phase types.Phase
		do    func(context.Context) error
	}{
		{types.PhaseCreate, r.create},
		{types.PhaseAwaitInstancesHealthy, r.awaitInstances},
		{types.PhaseActivate, r.activate},
		{types.PhaseAwaitELBHealthy, r.awaitELBs},
		{types.PhaseRetireOld, r.retire},
	}
	for _, s := range steps {
		r.transition(s.phase)
		if err := s.do(ctx); err != nil {
			return plan.Snapshot(), err
		}
	}

	r.transition(types.PhaseDone)
	r.report(types.Progress{Phase: types.PhaseDone, Message: "Deploy done"})
	return plan.Snapshot(), nil
}

// run is the state of one Run call. Only the goroutine calling Run touches
// the plan; per cluster workers hand their results back through slots.
type run struct {
	*Deployer
	imageID string
	plan    *types.DeploymentPlan
}

func (r *run) report(p types.Progress) {
	p.ImageID = r.imageID
	if p.Time.IsZero() {
		p.Time = time.Now()
	}
	if r.plan != nil {
		p.Plan = r.plan.Snapshot()
	}
	r.reporter.Report(p)
}

// transition moves every cluster still in the deployment to phase
func (r *run) transition(phase types.Phase) {
	for _, cp := range r.plan.Clusters {
		if !cp.RolledBack {
			cp.Phase = phase
		}
	}
	r.report(types.Progress{Phase: phase, Message: "Entering " + string(phase)})
}

// abort marks the deployment aborted and returns err annotated with msg
func (r *run) abort(err error, format string, args ...interface{}) error {
	for _, cp := range r.plan.Clusters {
		cp.Phase = types.PhaseAbort
	}
	wrapped := errors.Wrapf(err, format, args...)
	r.report(types.Progress{Phase: types.PhaseAbort, Err: wrapped, Message: "Deployment aborted"})
	return wrapped
}

// forEachCluster runs f once per cluster on at most Concurrency goroutines.
// Once a call fails no further cluster is started, the ones in flight finish.
// The returned errors are indexed like clusters.
func (r *run) forEachCluster(ctx context.Context, clusters []string, f func(ctx context.Context, i int, cluster string) error) []error {
	errs := make([]error, len(clusters))
	var failed atomic.Bool

	var g errgroup.Group
	g.SetLimit(r.opts.Concurrency)
	for i, c := range clusters {
		i, c := i, c
		g.Go(func() error {
			if failed.Load() {
				errs[i] = errSkipped
				return nil
			}
			if err := f(ctx, i, c); err != nil {
				errs[i] = err
				failed.Store(true)
			}
			return nil
		})
	}
	g.Wait()

	return errs
}

// rollback deactivates the new ASG of a cluster, at most once per run.
// Compensation runs even if ctx was cancelled by the operator.
func (r *run) rollback(ctx context.Context, cluster string) error {
	cp := r.plan.Clusters[cluster]
	if cp == nil || cp.New == "" || cp.RolledBack {
		return nil
	}
	cp.RolledBack = true
	cp.Phase = types.PhaseAbort

	err := r.lifecycle.DeactivateASG(context.WithoutCancel(ctx), cp.New)
	msg := "Disabled traffic to " + cp.New
	if err != nil {
		msg = "Failed to disable traffic to " + cp.New
	}
	r.report(types.Progress{Phase: types.PhaseAbort, Cluster: cluster, ASG: cp.New, Rollback: true, Err: err, Message: msg})
	return err
}
