package inventory

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// Tags identifying what an image and its ASGs were built for
const (
	TagEnvironment = "environment"
	TagDeployment  = "deployment"
	TagPlay        = "play"
)

// Inventory answers which ASGs an image is meant to replace
type Inventory struct {
	ec2           EC2API
	autoscaling   AutoScalingAPI
	apiMaxResults int64
}

// New returns an inventory using the given session
func New(s *session.Session) *Inventory {
	return &Inventory{
		ec2:           ec2.New(s),
		autoscaling:   autoscaling.New(s),
		apiMaxResults: 100,
	}
}

// EDCForImage reads the environment, deployment and play tags of an image
func (i *Inventory) EDCForImage(ctx context.Context, imageID string) (types.EDC, error) {
	resp, err := i.ec2.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(imageID)},
	})
	if err != nil {
		return types.EDC{}, errors.Wrapf(err, "describing image %s", imageID)
	}
	if len(resp.Images) != 1 {
		return types.EDC{}, types.NewBackendDataError("expected one image with id %s, got %d", imageID, len(resp.Images))
	}

	tags := map[string]string{}
	for _, t := range resp.Images[0].Tags {
		tags[aws.StringValue(t.Key)] = aws.StringValue(t.Value)
	}

	edc := types.EDC{
		Environment: tags[TagEnvironment],
		Deployment:  tags[TagDeployment],
		Play:        tags[TagPlay],
	}
	if edc.Environment == "" || edc.Deployment == "" || edc.Play == "" {
		return types.EDC{}, types.NewBackendDataError("image %s is missing one of the %s, %s or %s tags: %v",
			imageID, TagEnvironment, TagDeployment, TagPlay, tags)
	}
	log.Debugf("EDC for %s: %+v", imageID, edc)

	return edc, nil
}

// ASGsForEDC returns the names of the ASGs tagged with the EDC, sorted
func (i *Inventory) ASGsForEDC(ctx context.Context, edc types.EDC) ([]string, error) {
	asgs := []string{}
	err := i.eachGroup(ctx, nil, func(g *autoscaling.Group) {
		tags := map[string]string{}
		for _, t := range g.Tags {
			tags[aws.StringValue(t.Key)] = aws.StringValue(t.Value)
		}
		if tags[TagEnvironment] == edc.Environment &&
			tags[TagDeployment] == edc.Deployment &&
			tags[TagPlay] == edc.Play {
			asgs = append(asgs, aws.StringValue(g.AutoScalingGroupName))
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(asgs)
	log.Debugf("ASGs for %+v: %v", edc, asgs)

	return asgs, nil
}

// eachGroup calls f on every described group, following pagination
func (i *Inventory) eachGroup(ctx context.Context, names []string, f func(*autoscaling.Group)) error {
	return describeGroups(ctx, i.autoscaling, names, i.apiMaxResults, f)
}

func describeGroups(ctx context.Context, api AutoScalingAPI, names []string, maxResults int64, f func(*autoscaling.Group)) error {
	params := &autoscaling.DescribeAutoScalingGroupsInput{
		MaxRecords: aws.Int64(maxResults),
	}
	if len(names) > 0 {
		params.AutoScalingGroupNames = aws.StringSlice(names)
	}

	for {
		resp, err := api.DescribeAutoScalingGroupsWithContext(ctx, params)
		if err != nil {
			return errors.Wrap(err, "describing autoscaling groups")
		}

		for _, g := range resp.AutoScalingGroups {
			f(g)
		}
		if resp.NextToken == nil || aws.StringValue(resp.NextToken) == "" {
			break
		}
		params.NextToken = resp.NextToken
	}
	return nil
}
