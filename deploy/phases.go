package deploy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// discover resolves the clusters currently serving the image's deployment
func (r *run) discover(ctx context.Context) (*types.DeploymentPlan, error) {
	edc, err := r.inventory.EDCForImage(ctx, r.imageID)
	if err != nil {
		return nil, errors.Wrapf(err, "reading the EDC of %s", r.imageID)
	}

	asgs, err := r.inventory.ASGsForEDC(ctx, edc)
	if err != nil {
		return nil, errors.Wrapf(err, "listing the ASGs of %s-%s-%s", edc.Environment, edc.Deployment, edc.Play)
	}

	clusters, err := r.directory.ClustersForGroups(ctx, asgs)
	if err != nil {
		return nil, errors.Wrap(err, "resolving the clusters to deploy to")
	}
	if len(clusters) == 0 {
		return nil, errors.Wrapf(ErrNoClusters, "%s-%s-%s", edc.Environment, edc.Deployment, edc.Play)
	}

	plan := types.NewDeploymentPlan(r.imageID, edc, clusters)
	log.Infof("Deploying %s to %v", r.imageID, plan.ClusterNames())
	return plan, nil
}

// create brings up one new ASG per cluster. A failure stops the phase; ASGs
// already created stay inactive and are left alone.
func (r *run) create(ctx context.Context) error {
	clusters := r.plan.ClusterNames()
	created := make([]string, len(clusters))

	errs := r.forEachCluster(ctx, clusters, func(ctx context.Context, i int, cluster string) error {
		asg, err := r.lifecycle.CreateASG(ctx, cluster, r.imageID)
		if err != nil {
			return err
		}
		created[i] = asg
		return nil
	})

	var firstErr error
	var failedCluster string
	done := []string{}
	for i, c := range clusters {
		switch {
		case errs[i] == nil:
			r.plan.Clusters[c].New = created[i]
			done = append(done, c)
			r.report(types.Progress{Phase: types.PhaseCreate, Cluster: c, ASG: created[i], Message: "Created " + created[i]})
		case errs[i] == errSkipped:
		case firstErr == nil:
			firstErr, failedCluster = errs[i], c
		default:
			log.Errorf("Failed to create new asg for %s: %v", c, errs[i])
		}
	}

	if firstErr != nil {
		log.Errorf("Failed to create new asg for %s but did make asgs for %v", failedCluster, done)
		return r.abort(firstErr, "creating new ASG for cluster %s (new ASGs created for %v)", failedCluster, done)
	}

	log.Infof("New ASGs: %v", r.plan.NewASGs())
	return nil
}

// awaitInstances waits for the new instances to be healthy. No traffic goes
// to them yet so nothing is rolled back.
func (r *run) awaitInstances(ctx context.Context) error {
	asgs := r.plan.NewASGs()
	if err := r.health.WaitForInService(ctx, asgs, r.opts.InstancesHealthyTimeout); err != nil {
		return r.abort(err, "waiting for the instances of %v to be healthy", asgs)
	}

	log.Infof("ASG instances are healthy. Enabling Traffic.")
	return nil
}

// activate sends traffic to the new ASGs and collects their load balancers.
// A cluster failing here gets its new ASG deactivated. Clusters already
// activated stay active.
func (r *run) activate(ctx context.Context) error {
	clusters := r.plan.ClusterNames()
	activated := make([]bool, len(clusters))
	elbs := make([][]string, len(clusters))

	errs := r.forEachCluster(ctx, clusters, func(ctx context.Context, i int, cluster string) error {
		asg := r.plan.Clusters[cluster].New
		if err := r.lifecycle.ActivateASG(ctx, asg); err != nil {
			return err
		}
		activated[i] = true

		lbs, err := r.lifecycle.LoadBalancers(ctx, asg)
		if err != nil {
			return errors.Wrapf(err, "reading the load balancers of %s", asg)
		}
		elbs[i] = lbs
		return nil
	})

	var firstErr error
	var failedCluster string
	for i, c := range clusters {
		cp := r.plan.Clusters[c]
		if activated[i] {
			cp.Activated = true
		}
		if errs[i] == nil {
			cp.LoadBalancers = elbs[i]
			r.report(types.Progress{Phase: types.PhaseActivate, Cluster: c, ASG: cp.New, Message: "Activated " + cp.New})
			continue
		}
		if errs[i] == errSkipped {
			continue
		}

		log.Errorf("Something went wrong with %s, disabling traffic: %v", cp.New, errs[i])
		if err := r.rollback(ctx, c); err != nil {
			log.Errorf("Disabling traffic to %s failed: %v", cp.New, err)
		}
		if firstErr == nil {
			firstErr, failedCluster = errs[i], c
		}
	}

	if firstErr != nil {
		return r.abort(firstErr, "activating %s in cluster %s (still active: %v)",
			r.plan.Clusters[failedCluster].New, failedCluster, r.activeNewASGs())
	}

	log.Infof("All new ASGs are active. The new instances will be available when they pass the healthchecks.")
	return nil
}

// awaitELBs waits for every new instance to be in service in every load
// balancer. On failure every new ASG is deactivated.
func (r *run) awaitELBs(ctx context.Context) error {
	lbs := r.loadBalancers()
	err := r.health.WaitForHealthyELBs(ctx, lbs, r.opts.ELBHealthyTimeout)
	if err == nil {
		log.Infof("New instances have succeeded in passing the healthchecks. Disabling old ASGs.")
		return nil
	}

	log.Warnf("Some instances are failing ELB health checks. Pulling out the new ASGs.")
	failed := []string{}
	for _, c := range r.plan.ClusterNames() {
		if rerr := r.rollback(ctx, c); rerr != nil {
			log.Errorf("Disabling traffic to %s failed: %v", r.plan.Clusters[c].New, rerr)
			failed = append(failed, r.plan.Clusters[c].New)
		}
	}

	if len(failed) > 0 {
		return r.abort(err, "waiting for load balancers %v to be healthy (deactivating %v also failed)", lbs, failed)
	}
	return r.abort(err, "waiting for load balancers %v to be healthy", lbs)
}

// retire deactivates the ASGs that served before the deployment. There is
// no way back from here: failures are reported, the new ASGs stay active.
func (r *run) retire(ctx context.Context) error {
	failures := []string{}
	var firstErr error
	for _, c := range r.plan.ClusterNames() {
		cp := r.plan.Clusters[c]
		for _, old := range cp.Old {
			if old == cp.New {
				continue
			}
			err := r.lifecycle.DeactivateASG(ctx, old)
			if err != nil {
				log.Errorf("Failed to disable old ASG %s: %v", old, err)
				failures = append(failures, old)
				if firstErr == nil {
					firstErr = err
				}
				r.report(types.Progress{Phase: types.PhaseRetireOld, Cluster: c, ASG: old, Err: err, Message: "Failed to disable " + old})
				continue
			}
			cp.Retired = append(cp.Retired, old)
			r.report(types.Progress{Phase: types.PhaseRetireOld, Cluster: c, ASG: old, Message: "Disabled " + old})
		}
	}

	if firstErr != nil {
		wrapped := errors.Wrapf(firstErr, "retiring old ASGs %s, the new ASGs %v stay active", strings.Join(failures, ", "), r.plan.NewASGs())
		r.report(types.Progress{Phase: types.PhaseRetireOld, Err: wrapped, Message: "Retirement failed"})
		return wrapped
	}
	return nil
}

// loadBalancers returns the union of the load balancers of the new ASGs
func (r *run) loadBalancers() []string {
	set := map[string]struct{}{}
	for _, cp := range r.plan.Clusters {
		for _, lb := range cp.LoadBalancers {
			set[lb] = struct{}{}
		}
	}
	lbs := make([]string, 0, len(set))
	for lb := range set {
		lbs = append(lbs, lb)
	}
	sort.Strings(lbs)
	return lbs
}

func (r *run) activeNewASGs() []string {
	asgs := []string{}
	for _, c := range r.plan.ClusterNames() {
		cp := r.plan.Clusters[c]
		if cp.Activated && !cp.RolledBack {
			asgs = append(asgs, cp.New)
		}
	}
	return asgs
}

// String renders a plan for operators
func String(p *types.DeploymentPlan) string {
	if p == nil {
		return "<no plan>"
	}
	lines := []string{fmt.Sprintf("image %s (%s-%s-%s)", p.ImageID, p.EDC.Environment, p.EDC.Deployment, p.EDC.Play)}
	for _, c := range p.ClusterNames() {
		lines = append(lines, fmt.Sprintf("  %s [%s]", c, p.Clusters[c].Phase))
		for _, asg := range p.Groups(c) {
			lines = append(lines, fmt.Sprintf("    %s %s", asg.Name, asg.State))
		}
	}
	return strings.Join(lines, "\n")
}
