package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/slok/asg-deployer/asgard"
	"github.com/slok/asg-deployer/deploy"
	"github.com/slok/asg-deployer/inventory"
	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/metrics"
)

type deployOpts struct {
	*rootOpts
}

func newDeploy(parent *rootOpts) *deployOpts {
	return &deployOpts{rootOpts: parent}
}

func (opts *deployOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deploy <image-id>",
		Short:   "Replace the ASGs serving an image's deployment with new ones running the image",
		Example: "asg-deployer deploy ami-0123456789abcdef0 --aws.region us-east-1",
		RunE:    opts.RunE,
	}
	return cmd
}

func (opts *deployOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errorWantedImage
	}
	imageID := args[0]
	cfg := opts.cfg

	log.Infof("Starting ASG deployer...")

	reporters := deploy.MultiReporter{deploy.LogReporter{}}
	if cfg.ListenAddress != "" {
		reg := prometheus.NewRegistry()
		recorder, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		planCollector := metrics.NewPlanCollector()
		if err := metrics.RegisterDefaults(reg, program, planCollector); err != nil {
			return err
		}
		reporters = append(reporters, recorder, planCollector)

		srv := metrics.NewServer(cfg.ListenAddress, cfg.MetricsPath, reg)
		defer srv.Close()
	}

	deployer, err := opts.deployer(reporters)
	if err != nil {
		return err
	}

	plan, err := deployer.Run(cmd.Context(), imageID)
	if plan != nil {
		fmt.Fprintln(cmd.OutOrStdout(), deploy.String(plan))
	}
	return err
}

// deployer wires the asgard and AWS backends into an orchestrator
func (opts *deployOpts) deployer(r deploy.Reporter) (*deploy.Deployer, error) {
	cfg := opts.cfg

	client, err := opts.asgardClient()
	if err != nil {
		return nil, err
	}
	directory := asgard.NewDirectory(client)
	lifecycle := asgard.NewLifecycle(
		client,
		asgard.NewTaskPoller(client, cfg.TaskPollInterval),
		directory,
		asgard.Timeouts{
			Create:     cfg.WaitTimeout,
			Activate:   cfg.ActivateTimeout,
			Deactivate: cfg.DeactivateTimeout,
		},
	)

	s, err := inventory.NewSession(cfg.AwsRegion)
	if err != nil {
		return nil, err
	}

	return deploy.NewDeployer(
		inventory.New(s),
		directory,
		lifecycle,
		inventory.NewHealthGate(s, cfg.HealthPollInterval),
		r,
		deploy.Options{
			Concurrency:             cfg.Concurrency,
			InstancesHealthyTimeout: cfg.InstanceHealthyWait,
			ELBHealthyTimeout:       cfg.ELBHealthyWait,
		},
	), nil
}
