package types

import (
	"sort"
	"time"
)

// Asgard task statuses
const (
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// ASG lifecycle states
const (
	ASGStatePending  = "pending"
	ASGStateActive   = "active"
	ASGStateInactive = "inactive"
)

// EDC is the environment/deployment/cluster tag triple an image was built for
type EDC struct {
	Environment string
	Deployment  string
	Play        string
}

// Cluster represents an asgard cluster and the ASGs it currently runs
type Cluster struct {
	Name string   // Name of the cluster
	ASGs []string // ASG names, oldest first
}

// AutoScalingGroup represents an ASG as seen by the deployer
type AutoScalingGroup struct {
	Name          string   // Name of the ASG
	Cluster       string   // Owning cluster
	ImageID       string   // AMI the launch configuration uses
	State         string   // pending, active or inactive
	LoadBalancers []string // Attached ELB names
}

// Task is the decoded status payload of an asynchronous asgard operation
type Task struct {
	Handle string                 // Canonical status URL
	Status string                 // running, completed or failed
	Log    []string               // Task log lines, if any
	Raw    map[string]interface{} // The full decoded payload
}

// Terminal returns true when the task will not change status anymore
func (t *Task) Terminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}

// Failed returns true when the backend reported the task as failed
func (t *Task) Failed() bool {
	return t.Status == TaskStatusFailed
}

// Phase is a state of the deployment state machine
type Phase string

// deployment phases, in order
const (
	PhaseDiscover              Phase = "DISCOVER"
	PhaseCreate                Phase = "CREATE"
	PhaseAwaitInstancesHealthy Phase = "AWAIT_INSTANCES_HEALTHY"
	PhaseActivate              Phase = "ACTIVATE"
	PhaseAwaitELBHealthy       Phase = "AWAIT_ELB_HEALTHY"
	PhaseRetireOld             Phase = "RETIRE_OLD"
	PhaseDone                  Phase = "DONE"
	PhaseAbort                 Phase = "ABORT"
)

// Progress is an operator facing record emitted on each deployment transition
type Progress struct {
	ImageID  string
	Phase    Phase
	Cluster  string
	ASG      string
	Message  string
	Err      error
	Rollback bool            // The record is about a compensating deactivation
	Plan     *DeploymentPlan // Snapshot of the plan when the record was emitted
	Time     time.Time
}

// ClusterPlan is the per cluster working state of a deployment
type ClusterPlan struct {
	Cluster       string
	Old           []string // ASGs serving before the deployment
	New           string   // ASG created by this deployment, empty until created
	Phase         Phase
	LoadBalancers []string
	Activated     bool
	RolledBack    bool
	Retired       []string // Old ASGs deactivated by this deployment
}

// DeploymentPlan is the working state of one deployment run
type DeploymentPlan struct {
	ImageID  string
	EDC      EDC
	Clusters map[string]*ClusterPlan
}

// NewDeploymentPlan returns a plan for the given image with one entry per cluster
func NewDeploymentPlan(imageID string, edc EDC, clusters map[string][]string) *DeploymentPlan {
	p := &DeploymentPlan{
		ImageID:  imageID,
		EDC:      edc,
		Clusters: make(map[string]*ClusterPlan, len(clusters)),
	}
	for name, asgs := range clusters {
		old := make([]string, len(asgs))
		copy(old, asgs)
		p.Clusters[name] = &ClusterPlan{
			Cluster: name,
			Old:     old,
			Phase:   PhaseDiscover,
		}
	}
	return p
}

// ClusterNames returns the plan cluster names sorted
func (p *DeploymentPlan) ClusterNames() []string {
	names := make([]string, 0, len(p.Clusters))
	for name := range p.Clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewASGs returns the created ASG names in cluster order
func (p *DeploymentPlan) NewASGs() []string {
	asgs := []string{}
	for _, name := range p.ClusterNames() {
		if n := p.Clusters[name].New; n != "" {
			asgs = append(asgs, n)
		}
	}
	return asgs
}

// Snapshot returns a deep copy of the plan, safe to hand to other goroutines
func (p *DeploymentPlan) Snapshot() *DeploymentPlan {
	c := &DeploymentPlan{
		ImageID:  p.ImageID,
		EDC:      p.EDC,
		Clusters: make(map[string]*ClusterPlan, len(p.Clusters)),
	}
	for name, cp := range p.Clusters {
		ncp := *cp
		ncp.Old = append([]string(nil), cp.Old...)
		ncp.LoadBalancers = append([]string(nil), cp.LoadBalancers...)
		ncp.Retired = append([]string(nil), cp.Retired...)
		c.Clusters[name] = &ncp
	}
	return c
}

// Groups returns the ASGs of a plan cluster with the lifecycle state this run
// left them in, old ones first
func (p *DeploymentPlan) Groups(cluster string) []AutoScalingGroup {
	cp, ok := p.Clusters[cluster]
	if !ok {
		return nil
	}

	retired := map[string]bool{}
	for _, r := range cp.Retired {
		retired[r] = true
	}

	asgs := []AutoScalingGroup{}
	for _, old := range cp.Old {
		state := ASGStateActive
		if retired[old] {
			state = ASGStateInactive
		}
		asgs = append(asgs, AutoScalingGroup{Name: old, Cluster: cluster, State: state})
	}

	if cp.New != "" {
		state := ASGStatePending
		switch {
		case cp.RolledBack:
			state = ASGStateInactive
		case cp.Activated:
			state = ASGStateActive
		}
		asgs = append(asgs, AutoScalingGroup{
			Name:          cp.New,
			Cluster:       cluster,
			ImageID:       p.ImageID,
			State:         state,
			LoadBalancers: append([]string(nil), cp.LoadBalancers...),
		})
	}
	return asgs
}

// SortedClusters turns a cluster name to ASG names mapping into clusters
// sorted by name
func SortedClusters(m map[string][]string) []Cluster {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	cs := make([]Cluster, 0, len(names))
	for _, name := range names {
		cs = append(cs, Cluster{Name: name, ASGs: m[name]})
	}
	return cs
}
