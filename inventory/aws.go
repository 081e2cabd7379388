package inventory

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/pkg/errors"
)

// Generate AWS API mocks running go generate
//go:generate mockgen -source aws.go -package sdk -destination ../mock/aws/sdk/aws_mock.go

// EC2API is the part of the EC2 API the inventory uses
type EC2API interface {
	DescribeImagesWithContext(ctx context.Context, input *ec2.DescribeImagesInput, opts ...request.Option) (*ec2.DescribeImagesOutput, error)
}

// AutoScalingAPI is the part of the autoscaling API the inventory uses
type AutoScalingAPI interface {
	DescribeAutoScalingGroupsWithContext(ctx context.Context, input *autoscaling.DescribeAutoScalingGroupsInput, opts ...request.Option) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

// ELBAPI is the part of the classic load balancing API the inventory uses
type ELBAPI interface {
	DescribeInstanceHealthWithContext(ctx context.Context, input *elb.DescribeInstanceHealthInput, opts ...request.Option) (*elb.DescribeInstanceHealthOutput, error)
}

// NewSession returns an AWS session for the region
func NewSession(awsRegion string) (*session.Session, error) {
	s, err := session.NewSession(&aws.Config{Region: aws.String(awsRegion)})
	if err != nil {
		return nil, errors.Wrap(err, "error creating aws session")
	}
	return s, nil
}
