package aws

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/golang/mock/gomock"

	"github.com/slok/asg-deployer/mock/aws/sdk"
)

// Group describes a mocked autoscaling group
type Group struct {
	Name      string
	Desired   int64
	Tags      map[string]string
	Instances map[string]string // instance id -> "<lifecycle state>/<health status>"
}

// MockDescribeImages mocks the description of a single image with tags
func MockDescribeImages(t *testing.T, mockMatcher *sdk.MockEC2API, wantError bool, imageID string, tags map[string]string) {
	var err error
	if wantError {
		err = errors.New("Wrong!")
	}
	img := &ec2.Image{ImageId: aws.String(imageID)}
	for k, v := range tags {
		img.Tags = append(img.Tags, &ec2.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	result := &ec2.DescribeImagesOutput{Images: []*ec2.Image{img}}

	mockMatcher.EXPECT().DescribeImagesWithContext(gomock.Any(), gomock.Any()).AnyTimes().Return(result, err)
}

// AutoScalingGroups returns the SDK representation of mocked groups
func AutoScalingGroups(groups ...Group) []*autoscaling.Group {
	res := []*autoscaling.Group{}
	for _, g := range groups {
		ag := &autoscaling.Group{
			AutoScalingGroupName: aws.String(g.Name),
			DesiredCapacity:      aws.Int64(g.Desired),
		}
		for k, v := range g.Tags {
			ag.Tags = append(ag.Tags, &autoscaling.TagDescription{
				Key:          aws.String(k),
				Value:        aws.String(v),
				ResourceId:   aws.String(g.Name),
				ResourceType: aws.String("auto-scaling-group"),
			})
		}
		for id, status := range g.Instances {
			state, health := splitStatus(status)
			ag.Instances = append(ag.Instances, &autoscaling.Instance{
				InstanceId:     aws.String(id),
				LifecycleState: aws.String(state),
				HealthStatus:   aws.String(health),
			})
		}
		res = append(res, ag)
	}
	return res
}

// MockDescribeAutoScalingGroups mocks every group description answer, in order.
// Each element of pages is one answer; all but the last carry a next token.
func MockDescribeAutoScalingGroups(t *testing.T, mockMatcher *sdk.MockAutoScalingAPI, wantError bool, pages ...[]Group) {
	if wantError {
		mockMatcher.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("Wrong!"))
		return
	}

	var calls []*gomock.Call
	for i, p := range pages {
		out := &autoscaling.DescribeAutoScalingGroupsOutput{AutoScalingGroups: AutoScalingGroups(p...)}
		if i < len(pages)-1 {
			out.NextToken = aws.String("token")
		}
		calls = append(calls, mockMatcher.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(out, nil))
	}
	gomock.InOrder(calls...)
}

// MockGroupPolls mocks successive single page group descriptions, one per
// poll; the last one repeats.
func MockGroupPolls(t *testing.T, mockMatcher *sdk.MockAutoScalingAPI, polls ...[]Group) {
	var calls []*gomock.Call
	for i, p := range polls {
		out := &autoscaling.DescribeAutoScalingGroupsOutput{AutoScalingGroups: AutoScalingGroups(p...)}
		c := mockMatcher.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(out, nil)
		if i == len(polls)-1 {
			c.AnyTimes()
		}
		calls = append(calls, c)
	}
	gomock.InOrder(calls...)
}

// MockDescribeInstanceHealth mocks the instance health of a load balancer,
// states are the successive answers; the last one repeats.
func MockDescribeInstanceHealth(t *testing.T, mockMatcher *sdk.MockELBAPI, lbName string, states ...map[string]string) {
	var calls []*gomock.Call
	for i, s := range states {
		out := &elb.DescribeInstanceHealthOutput{}
		for id, state := range s {
			out.InstanceStates = append(out.InstanceStates, &elb.InstanceState{
				InstanceId: aws.String(id),
				State:      aws.String(state),
			})
		}
		c := mockMatcher.EXPECT().DescribeInstanceHealthWithContext(gomock.Any(), LoadBalancerNamed(lbName)).Return(out, nil)
		if i == len(states)-1 {
			c.AnyTimes()
		}
		calls = append(calls, c)
	}
	gomock.InOrder(calls...)
}

// LoadBalancerNamed matches instance health queries for one load balancer
func LoadBalancerNamed(name string) gomock.Matcher {
	return lbMatcher(name)
}

type lbMatcher string

func (m lbMatcher) Matches(x interface{}) bool {
	in, ok := x.(*elb.DescribeInstanceHealthInput)
	return ok && aws.StringValue(in.LoadBalancerName) == string(m)
}

func (m lbMatcher) String() string {
	return "is instance health query for " + string(m)
}

func splitStatus(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
