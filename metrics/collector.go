package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

const (
	namespace = "asgdeployer"
)

// Metrics descriptions
var (
	up = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "up"),
		"Was the last deployment step successful.",
		[]string{"image"}, nil,
	)

	clusterPhase = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "cluster_phase"),
		"The deployment phase a cluster is in, 1 for the current one",
		[]string{"cluster", "asg", "phase"}, nil,
	)
)

// PlanCollector exposes the state of the latest deployment plan
type PlanCollector struct {
	sync.Mutex // Progress is reported while scrapes happen

	imageID string
	plan    *types.DeploymentPlan
	healthy bool
}

// NewPlanCollector returns a collector with no deployment yet
func NewPlanCollector() *PlanCollector {
	return &PlanCollector{healthy: true}
}

// Report keeps the plan snapshot of p. It implements deploy.Reporter.
func (c *PlanCollector) Report(p types.Progress) {
	c.Lock()
	defer c.Unlock()

	c.imageID = p.ImageID
	if p.Plan != nil {
		c.plan = p.Plan
	}
	if p.Err != nil {
		c.healthy = false
	} else if p.Phase == types.PhaseDiscover && p.Cluster == "" {
		// A new run starts clean.
		c.healthy = true
		c.plan = nil
	}
}

// Describe describes all the metrics ever exported by the collector. It
// implements prometheus.Collector.
func (c *PlanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- up
	ch <- clusterPhase
}

// Collect delivers the latest plan as Prometheus metrics. It implements
// prometheus.Collector
func (c *PlanCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debugf("Start collecting...")

	c.Lock()
	defer c.Unlock()

	if c.plan != nil {
		c.collectPlanMetrics(ch, c.plan)
	}

	v := 0.0
	if c.healthy {
		v = 1
	}
	ch <- prometheus.MustNewConstMetric(
		up, prometheus.GaugeValue, v, c.imageID,
	)
}

func (c *PlanCollector) collectPlanMetrics(ch chan<- prometheus.Metric, plan *types.DeploymentPlan) {
	for _, name := range plan.ClusterNames() {
		cp := plan.Clusters[name]
		ch <- prometheus.MustNewConstMetric(
			clusterPhase, prometheus.GaugeValue, 1, name, cp.New, string(cp.Phase),
		)
	}
}
