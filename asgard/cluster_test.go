package asgard

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/asg-deployer/types"
)

func TestClustersForGroups(t *testing.T) {
	clusters := map[string][]string{
		"test-edx-edxapp": {"test-edx-edxapp-v006", "test-edx-edxapp-v007"},
		"test-edx-worker": {"test-edx-worker-v004"},
		"test-edx-forum":  {"test-edx-forum-v001"},
	}

	tests := []struct {
		name   string
		groups []string
		want   map[string][]string
	}{
		{
			name:   "one cluster",
			groups: []string{"test-edx-edxapp-v007"},
			want: map[string][]string{
				"test-edx-edxapp": {"test-edx-edxapp-v006", "test-edx-edxapp-v007"},
			},
		},
		{
			name:   "several clusters",
			groups: []string{"test-edx-edxapp-v007", "test-edx-worker-v004"},
			want: map[string][]string{
				"test-edx-edxapp": {"test-edx-edxapp-v006", "test-edx-edxapp-v007"},
				"test-edx-worker": {"test-edx-worker-v004"},
			},
		},
		{
			name:   "several matches in one cluster",
			groups: []string{"test-edx-edxapp-v006", "test-edx-edxapp-v007"},
			want: map[string][]string{
				"test-edx-edxapp": {"test-edx-edxapp-v006", "test-edx-edxapp-v007"},
			},
		},
		{
			name:   "no match",
			groups: []string{"test-edx-notes-v001"},
			want:   map[string][]string{},
		},
		{
			name:   "nothing requested",
			groups: []string{},
			want:   map[string][]string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeAsgard(t)
			f.clusters = clusters

			got, err := NewDirectory(f.client()).ClustersForGroups(context.Background(), test.groups)
			if err != nil {
				t.Fatalf("\n- %v\n- Shouldn't return an error, it did: %v", test, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("\n- %v\n- Wrong clusters, want: %v; got: %v", test, test.want, got)
			}
			if f.callCount(ClusterList) != 1 {
				t.Errorf("\n- %v\n- The listing should be queried once, it was %d times", test, f.callCount(ClusterList))
			}
		})
	}
}

func TestClustersForGroupsBadData(t *testing.T) {
	tests := []struct {
		name    string
		listing interface{}
	}{
		{"missing autoScalingGroups", []interface{}{map[string]interface{}{"cluster": "c1"}}},
		{"missing cluster", []interface{}{map[string]interface{}{"autoScalingGroups": []string{"c1-v001"}}}},
		{"one bad record among good ones", []interface{}{
			map[string]interface{}{"cluster": "c1", "autoScalingGroups": []string{"c1-v001"}},
			map[string]interface{}{"name": "c2"},
		}},
		{"wrong group type", []interface{}{map[string]interface{}{"cluster": "c1", "autoScalingGroups": "c1-v001"}}},
		{"not a list", map[string]interface{}{"cluster": "c1"}},
		{"null cluster", []interface{}{map[string]interface{}{"cluster": nil, "autoScalingGroups": []string{"c1-v001"}}}},
		{"empty cluster", []interface{}{map[string]interface{}{"cluster": "", "autoScalingGroups": []string{"c1-v001"}}}},
		{"null autoScalingGroups", []interface{}{
			map[string]interface{}{"cluster": "c1", "autoScalingGroups": []string{"c1-v001"}},
			map[string]interface{}{"cluster": "c2", "autoScalingGroups": nil},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeAsgard(t)
			f.listing = test.listing

			_, err := NewDirectory(f.client()).ClustersForGroups(context.Background(), []string{"c1-v001"})
			require.Error(t, err)
			assert.True(t, types.IsBackendDataError(err), "expected a backend data error, got: %v", err)
		})
	}
}

func TestGroupsForCluster(t *testing.T) {
	f := newFakeAsgard(t)
	f.clusters["edx-edxapp"] = []string{"edx-edxapp-v008", "edx-edxapp-v009", "edx-edxapp-v010"}

	got, err := NewDirectory(f.client()).GroupsForCluster(context.Background(), "edx-edxapp")
	require.NoError(t, err)
	assert.Equal(t, []string{"edx-edxapp-v008", "edx-edxapp-v009", "edx-edxapp-v010"}, got)
}

func TestGroupsForClusterBadData(t *testing.T) {
	tests := []struct {
		name string
		show interface{}
	}{
		{"missing name", []interface{}{map[string]interface{}{"autoScalingGroupName": "a"}, map[string]interface{}{"status": "active"}}},
		{"list of strings", []interface{}{"a", "b"}},
		{"object", map[string]interface{}{"autoScalingGroupName": "a"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeAsgard(t)
			f.showOverride["edx-edxapp"] = test.show

			_, err := NewDirectory(f.client()).GroupsForCluster(context.Background(), "edx-edxapp")
			require.Error(t, err)
			assert.True(t, types.IsBackendDataError(err), "expected a backend data error, got: %v", err)
		})
	}
}

func TestLoadBalancersForGroup(t *testing.T) {
	f := newFakeAsgard(t)
	f.loadBalancers["edx-edxapp-v011"] = []string{"edx-elb-1", "edx-elb-2"}
	d := NewDirectory(f.client())

	got, err := d.LoadBalancersForGroup(context.Background(), "edx-edxapp-v011")
	require.NoError(t, err)
	assert.Equal(t, []string{"edx-elb-1", "edx-elb-2"}, got)

	_, err = d.LoadBalancersForGroup(context.Background(), "unknown-v001")
	require.Error(t, err)
	assert.True(t, types.IsBackendDataError(err))
}

func TestDirectoryBackendUnavailable(t *testing.T) {
	f := newFakeAsgard(t)
	f.failRoutes[ClusterList] = 500

	_, err := NewDirectory(f.client()).ClustersForGroups(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.False(t, types.IsBackendDataError(err))
	assert.Contains(t, err.Error(), "500")
}
