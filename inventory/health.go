package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// DefaultHealthPollInterval is the time between two health queries
const DefaultHealthPollInterval = 10 * time.Second

// instance states reported by AWS
const (
	lifecycleInService = "InService"
	healthHealthy      = "Healthy"
	elbInService       = "InService"
)

// HealthGate blocks until instances are healthy, or a deadline passes
type HealthGate struct {
	autoscaling AutoScalingAPI
	elb         ELBAPI
	interval    time.Duration
}

// NewHealthGate returns a health gate using the given session
func NewHealthGate(s *session.Session, interval time.Duration) *HealthGate {
	return newHealthGate(autoscaling.New(s), elb.New(s), interval)
}

func newHealthGate(asg AutoScalingAPI, lb ELBAPI, interval time.Duration) *HealthGate {
	if interval <= 0 {
		interval = DefaultHealthPollInterval
	}
	return &HealthGate{
		autoscaling: asg,
		elb:         lb,
		interval:    interval,
	}
}

// WaitForInService waits until every instance of every named ASG is in
// service and healthy. A group without instances is not healthy yet.
func (h *HealthGate) WaitForInService(ctx context.Context, asgNames []string, timeout time.Duration) error {
	names := unique(asgNames)
	if len(names) == 0 {
		return nil
	}

	return h.waitFor(ctx, timeout, "instances of "+strings.Join(names, ", "), func() (string, error) {
		seen := map[string]bool{}
		pending := ""
		err := describeGroups(ctx, h.autoscaling, names, 100, func(g *autoscaling.Group) {
			name := aws.StringValue(g.AutoScalingGroupName)
			seen[name] = true
			if pending == "" {
				if why := groupPending(g); why != "" {
					pending = fmt.Sprintf("%s: %s", name, why)
				}
			}
		})
		if err != nil {
			return "", err
		}
		if pending != "" {
			return pending, nil
		}
		for _, n := range names {
			if !seen[n] {
				return n + ": not found", nil
			}
		}
		return "", nil
	})
}

// groupPending explains why a group is not healthy yet, empty when it is
func groupPending(g *autoscaling.Group) string {
	want := aws.Int64Value(g.DesiredCapacity)
	if want < 1 {
		want = 1
	}
	if int64(len(g.Instances)) < want {
		return fmt.Sprintf("%d of %d instances", len(g.Instances), want)
	}
	for _, i := range g.Instances {
		state := aws.StringValue(i.LifecycleState)
		health := aws.StringValue(i.HealthStatus)
		if state != lifecycleInService || health != healthHealthy {
			return fmt.Sprintf("instance %s is %s/%s", aws.StringValue(i.InstanceId), state, health)
		}
	}
	return ""
}

// WaitForHealthyELBs waits until every instance registered in every named
// load balancer is InService.
func (h *HealthGate) WaitForHealthyELBs(ctx context.Context, lbNames []string, timeout time.Duration) error {
	names := unique(lbNames)
	if len(names) == 0 {
		return nil
	}

	return h.waitFor(ctx, timeout, "load balancers "+strings.Join(names, ", "), func() (string, error) {
		for _, n := range names {
			resp, err := h.elb.DescribeInstanceHealthWithContext(ctx, &elb.DescribeInstanceHealthInput{
				LoadBalancerName: aws.String(n),
			})
			if err != nil {
				return "", errors.Wrapf(err, "describing instance health of %s", n)
			}
			if len(resp.InstanceStates) == 0 {
				return n + ": no instances", nil
			}
			for _, s := range resp.InstanceStates {
				if state := aws.StringValue(s.State); state != elbInService {
					return fmt.Sprintf("%s: instance %s is %s", n, aws.StringValue(s.InstanceId), state), nil
				}
			}
		}
		return "", nil
	})
}

// waitFor calls check every interval until it reports nothing pending. The
// deadline is absolute and check errors fail the wait at once.
func (h *HealthGate) waitFor(ctx context.Context, timeout time.Duration, description string, check func() (string, error)) error {
	deadline := time.Now().Add(timeout)
	lastPending := ""
	for time.Now().Before(deadline) {
		pending, err := check()
		if err != nil {
			return err
		}
		if pending == "" {
			log.Debugf("%s are healthy", description)
			return nil
		}
		lastPending = pending
		log.Debugf("Waiting for %s (%s)", description, pending)

		t := time.NewTimer(h.interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Wrapf(ctx.Err(), "waiting for %s", description)
		case <-t.C:
		}
	}

	waiting := description
	if lastPending != "" {
		waiting = fmt.Sprintf("%s (%s)", description, lastPending)
	}
	return &types.TimeoutError{Waiting: waiting, Timeout: timeout}
}

func unique(names []string) []string {
	set := map[string]struct{}{}
	for _, n := range names {
		set[n] = struct{}{}
	}
	res := make([]string, 0, len(set))
	for n := range set {
		res = append(res, n)
	}
	sort.Strings(res)
	return res
}
