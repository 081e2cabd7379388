package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/slok/asg-deployer/asgard"
	"github.com/slok/asg-deployer/config"
	"github.com/slok/asg-deployer/log"
)

type rootOpts struct {
	cfg *config.Config
}

func newRoot() *rootOpts {
	return &rootOpts{cfg: config.New()}
}

var rootLongHelp = strings.TrimSpace(`
asg-deployer rolls an AMI out to the asgard clusters serving its
environment, deployment and play, blue/green.

Workflow:
  asg-deployer clusters loadtest-edx-edxapp-v010   # Which clusters own these ASGs?
  asg-deployer deploy ami-0123456789abcdef0       # Replace their ASGs with the new image.
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "asg-deployer",
		Long:              rootLongHelp,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.PersistentPreRunE,
	}
	cmd.PersistentFlags().AddFlagSet(opts.cfg.FlagSet())

	cmd.AddCommand(
		newDeploy(opts).Command(),
		newClusters(opts).Command(),
		newVersionCommand(),
	)

	return cmd
}

func (opts *rootOpts) PersistentPreRunE(_ *cobra.Command, _ []string) error {
	if opts.cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.SetJSONFormat(opts.cfg.JSONLogs)

	return opts.cfg.Validate()
}

// asgardClient returns the client shared by the asgard components
func (opts *rootOpts) asgardClient() (*asgard.Client, error) {
	return asgard.NewClient(
		asgard.NewHTTPClient(opts.cfg.RequestTimeout),
		opts.cfg.AsgardEndpoint,
		opts.cfg.AsgardToken,
	)
}
