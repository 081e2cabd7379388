package inventory

import (
	"context"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	awsMock "github.com/slok/asg-deployer/mock/aws"
	"github.com/slok/asg-deployer/mock/aws/sdk"
	"github.com/slok/asg-deployer/types"
)

func TestEDCForImage(t *testing.T) {
	tests := []struct {
		tags        map[string]string
		wantError   bool
		wantDataErr bool
		want        types.EDC
	}{
		{
			tags: map[string]string{"environment": "prod", "deployment": "edx", "play": "edxapp", "version:edx_platform": "abc"},
			want: types.EDC{Environment: "prod", Deployment: "edx", Play: "edxapp"},
		},
		{
			tags:        map[string]string{"environment": "prod", "deployment": "edx"},
			wantError:   true,
			wantDataErr: true,
		},
		{
			tags:        map[string]string{},
			wantError:   true,
			wantDataErr: true,
		},
	}

	for _, test := range tests {
		ctrl := gomock.NewController(t)
		mockEC2 := sdk.NewMockEC2API(ctrl)
		awsMock.MockDescribeImages(t, mockEC2, false, "ami-0123", test.tags)

		i := &Inventory{ec2: mockEC2, apiMaxResults: 100}
		edc, err := i.EDCForImage(context.Background(), "ami-0123")
		if !test.wantError {
			if err != nil {
				t.Errorf("\n- %v\n-  Shouldn't return an error, it did: %v", test, err)
			}
			if edc != test.want {
				t.Errorf("\n- %v\n-  Wrong EDC, want: %+v; got: %+v", test, test.want, edc)
			}
		} else {
			if err == nil {
				t.Errorf("\n- %v\n-  Should return an error, it didn't", test)
			}
			if test.wantDataErr && !types.IsBackendDataError(err) {
				t.Errorf("\n- %v\n-  Should return a backend data error, got: %v", test, err)
			}
		}
		ctrl.Finish()
	}
}

func TestEDCForImageAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEC2 := sdk.NewMockEC2API(ctrl)
	awsMock.MockDescribeImages(t, mockEC2, true, "ami-0123", nil)

	i := &Inventory{ec2: mockEC2}
	if _, err := i.EDCForImage(context.Background(), "ami-0123"); err == nil {
		t.Errorf("Should return an error, it didn't")
	}
}

func TestASGsForEDC(t *testing.T) {
	edc := types.EDC{Environment: "prod", Deployment: "edx", Play: "edxapp"}
	prodApp := map[string]string{"environment": "prod", "deployment": "edx", "play": "edxapp"}
	prodWorker := map[string]string{"environment": "prod", "deployment": "edx", "play": "worker"}
	stageApp := map[string]string{"environment": "stage", "deployment": "edx", "play": "edxapp"}

	tests := []struct {
		pages     [][]awsMock.Group
		wantError bool
		want      []string
	}{
		{
			pages: [][]awsMock.Group{{
				{Name: "prod-edx-edxapp-v010", Tags: prodApp},
				{Name: "prod-edx-worker-v004", Tags: prodWorker},
				{Name: "stage-edx-edxapp-v020", Tags: stageApp},
			}},
			want: []string{"prod-edx-edxapp-v010"},
		},
		{
			pages: [][]awsMock.Group{
				{{Name: "prod-edx-edxapp-v011", Tags: prodApp}, {Name: "prod-edx-worker-v004", Tags: prodWorker}},
				{{Name: "prod-edx-edxapp-v010", Tags: prodApp}},
			},
			want: []string{"prod-edx-edxapp-v010", "prod-edx-edxapp-v011"},
		},
		{
			pages: [][]awsMock.Group{{}},
			want:  []string{},
		},
		{
			wantError: true,
		},
	}

	for _, test := range tests {
		ctrl := gomock.NewController(t)
		mockASG := sdk.NewMockAutoScalingAPI(ctrl)
		awsMock.MockDescribeAutoScalingGroups(t, mockASG, test.wantError, test.pages...)

		i := &Inventory{autoscaling: mockASG, apiMaxResults: 100}
		asgs, err := i.ASGsForEDC(context.Background(), edc)
		if !test.wantError {
			if err != nil {
				t.Errorf("\n- %v\n-  Shouldn't return an error, it did: %v", test, err)
			}
			if !reflect.DeepEqual(asgs, test.want) {
				t.Errorf("\n- %v\n-  Wrong ASGs, want: %v; got: %v", test, test.want, asgs)
			}
		} else if err == nil {
			t.Errorf("\n- %v\n-  Should return an error, it didn't", test)
		}
		ctrl.Finish()
	}
}
