package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slok/asg-deployer/asgard"
	"github.com/slok/asg-deployer/types"
)

type clustersOpts struct {
	*rootOpts
}

func newClusters(parent *rootOpts) *clustersOpts {
	return &clustersOpts{rootOpts: parent}
}

func (opts *clustersOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clusters <asg>...",
		Short:   "Show which asgard clusters own the given ASGs",
		Example: "asg-deployer clusters loadtest-edx-edxapp-v010 loadtest-edx-worker-v004",
		RunE:    opts.RunE,
	}
	return cmd
}

func (opts *clustersOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errorWantedASGs
	}

	client, err := opts.asgardClient()
	if err != nil {
		return err
	}

	clusters, err := asgard.NewDirectory(client).ClustersForGroups(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range types.SortedClusters(clusters) {
		fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.ASGs, ", "))
	}
	return nil
}
