package asgard

import (
	"context"
	"encoding/json"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// Directory resolves the relation between clusters and their ASGs
type Directory struct {
	client *Client
}

// NewDirectory returns a directory backed by the asgard client
func NewDirectory(c *Client) *Directory {
	return &Directory{client: c}
}

// ClustersForGroups returns every cluster running at least one of the given
// ASGs, mapped to all of the ASGs in that cluster. The full cluster listing
// is queried once.
func (d *Directory) ClustersForGroups(ctx context.Context, groups []string) (map[string][]string, error) {
	var listing []map[string]json.RawMessage
	if err := d.client.get(ctx, &listing, ClusterList); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		wanted[g] = struct{}{}
	}

	relevant := map[string][]string{}
	for _, c := range listing {
		rawName, okName := c["cluster"]
		rawASGs, okASGs := c["autoScalingGroups"]
		if !okName || !okASGs {
			return nil, types.NewBackendDataError("expected 'cluster' and 'autoScalingGroups' keys in %s", render(c))
		}

		// A JSON null is a missing field.
		var name *string
		var asgs *[]string
		if err := json.Unmarshal(rawName, &name); err != nil || name == nil || *name == "" {
			return nil, types.NewBackendDataError("cluster name is not a non empty string in %s", render(c))
		}
		if err := json.Unmarshal(rawASGs, &asgs); err != nil || asgs == nil {
			return nil, types.NewBackendDataError("autoScalingGroups is not a list of names in %s", render(c))
		}

		for _, asg := range *asgs {
			if _, ok := wanted[asg]; ok {
				log.Debugf("Membership: %s in cluster %s", asg, *name)
				relevant[*name] = *asgs
				break
			}
		}
	}

	return relevant, nil
}

// GroupsForCluster returns the ASGs of a cluster in backend order, which is
// creation order (oldest first).
func (d *Directory) GroupsForCluster(ctx context.Context, cluster string) ([]string, error) {
	var entries []map[string]interface{}
	if err := d.client.get(ctx, &entries, ClusterShow, "cluster", cluster); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := e["autoScalingGroupName"].(string)
		if !ok {
			return nil, types.NewBackendDataError("expected a list of dicts with an 'autoScalingGroupName' attribute. Got: %v", entries)
		}
		names = append(names, name)
	}
	log.Debugf("ASGs for cluster %s: %v", cluster, names)

	return names, nil
}

// LoadBalancersForGroup returns the load balancers attached to an ASG
func (d *Directory) LoadBalancersForGroup(ctx context.Context, asg string) ([]string, error) {
	var info struct {
		Group *struct {
			LoadBalancerNames []string `json:"loadBalancerNames"`
		} `json:"group"`
	}
	if err := d.client.get(ctx, &info, AutoScalingShow, "asg", asg); err != nil {
		return nil, err
	}
	if info.Group == nil {
		return nil, types.NewBackendDataError("expected a 'group' in the description of ASG %s", asg)
	}
	return info.Group.LoadBalancerNames, nil
}

func render(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unrenderable>"
	}
	return string(b)
}
