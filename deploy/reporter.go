package deploy

import (
	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// LogReporter writes every progress record to the logger
type LogReporter struct{}

// Report logs p, errors and compensating deactivations on their own levels
func (LogReporter) Report(p types.Progress) {
	fields := log.Fields{
		"image": p.ImageID,
		"phase": p.Phase,
	}
	if p.Cluster != "" {
		fields["cluster"] = p.Cluster
	}
	if p.ASG != "" {
		fields["asg"] = p.ASG
	}
	entry := log.WithFields(fields)

	switch {
	case p.Err != nil:
		entry.WithError(p.Err).Error(p.Message)
	case p.Rollback:
		entry.Warn(p.Message)
	case p.Cluster == "":
		entry.Info(p.Message)
	default:
		entry.Debug(p.Message)
	}
}

// MultiReporter fans progress records out to several reporters, in order
type MultiReporter []Reporter

// Report implements Reporter
func (m MultiReporter) Report(p types.Progress) {
	for _, r := range m {
		if r != nil {
			r.Report(p)
		}
	}
}
