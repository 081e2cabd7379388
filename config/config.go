package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/slok/asg-deployer/log"
)

// Environment variables the configuration defaults are read from
const (
	EnvAsgardEndpoint    = "ASGARD_API_ENDPOINTS"
	EnvAsgardToken       = "ASGARD_API_TOKEN"
	EnvAsgardWaitTimeout = "ASGARD_WAIT_TIMEOUT"
	EnvRequestsTimeout   = "REQUESTS_TIMEOUT"
	EnvAwsRegion         = "AWS_REGION"
	EnvConcurrency       = "DEPLOY_CONCURRENCY"
)

const (
	defaultAsgardEndpoint       = "http://dummy.url:8091"
	defaultAsgardToken          = "dummy-token"
	defaultWaitTimeout          = 300 * time.Second
	defaultActivateTimeout      = 301 * time.Second
	defaultDeactivateTimeout    = 300 * time.Second
	defaultRequestTimeout       = 1 * time.Second
	defaultInstanceHealthyWait  = 300 * time.Second
	defaultELBHealthyWait       = 600 * time.Second
	defaultTaskPollInterval     = 1 * time.Second
	defaultHealthPollInterval   = 10 * time.Second
	defaultConcurrency          = 4
	defaultAwsRegion            = ""
	defaultMetricsListenAddress = ""
	defaultMetricsPath          = "/metrics"
)

// Config represents an app configuration. It is built once at process start
// and must not be modified afterwards.
type Config struct {
	fs *flag.FlagSet

	AsgardEndpoint      string
	AsgardToken         string
	WaitTimeout         time.Duration // create ASG task timeout
	ActivateTimeout     time.Duration
	DeactivateTimeout   time.Duration
	RequestTimeout      time.Duration // single HTTP request timeout
	InstanceHealthyWait time.Duration
	ELBHealthyWait      time.Duration
	TaskPollInterval    time.Duration
	HealthPollInterval  time.Duration
	Concurrency         int
	AwsRegion           string
	ListenAddress       string
	MetricsPath         string
	Debug               bool
	JSONLogs            bool
}

// New returns an initialized config with defaults taken from the environment
func New() *Config {
	return NewWithEnv(os.LookupEnv)
}

// NewWithEnv returns an initialized config using lookup to read the environment
func NewWithEnv(lookup func(string) (string, bool)) *Config {
	c := &Config{
		fs: flag.NewFlagSet(os.Args[0], flag.ContinueOnError),
	}

	c.fs.StringVar(
		&c.AsgardEndpoint, "asgard.endpoint", envString(lookup, EnvAsgardEndpoint, defaultAsgardEndpoint),
		fmt.Sprintf("Base URL of the asgard API; you can also set %s", EnvAsgardEndpoint))

	c.fs.StringVar(
		&c.AsgardToken, "asgard.token", envString(lookup, EnvAsgardToken, defaultAsgardToken),
		fmt.Sprintf("Asgard API token; you can also set %s", EnvAsgardToken))

	c.fs.DurationVar(
		&c.WaitTimeout, "asgard.wait-timeout", envSeconds(lookup, EnvAsgardWaitTimeout, defaultWaitTimeout),
		fmt.Sprintf("How long to wait for a new ASG to be created; you can also set %s in seconds", EnvAsgardWaitTimeout))

	c.fs.DurationVar(
		&c.ActivateTimeout, "asgard.activate-timeout", defaultActivateTimeout, "How long to wait for an ASG to be activated")

	c.fs.DurationVar(
		&c.DeactivateTimeout, "asgard.deactivate-timeout", defaultDeactivateTimeout, "How long to wait for an ASG to be deactivated")

	c.fs.DurationVar(
		&c.RequestTimeout, "asgard.request-timeout", envSeconds(lookup, EnvRequestsTimeout, defaultRequestTimeout),
		fmt.Sprintf("Timeout of a single asgard HTTP request; you can also set %s in seconds", EnvRequestsTimeout))

	c.fs.DurationVar(
		&c.TaskPollInterval, "asgard.poll-interval", defaultTaskPollInterval, "Interval between asgard task status queries")

	c.fs.DurationVar(
		&c.InstanceHealthyWait, "health.instances-timeout", defaultInstanceHealthyWait, "How long to wait for new instances to be healthy")

	c.fs.DurationVar(
		&c.ELBHealthyWait, "health.elb-timeout", defaultELBHealthyWait, "How long to wait for new instances to be in service in their load balancers")

	c.fs.DurationVar(
		&c.HealthPollInterval, "health.poll-interval", defaultHealthPollInterval, "Interval between health queries")

	c.fs.IntVar(
		&c.Concurrency, "deploy.concurrency", envInt(lookup, EnvConcurrency, defaultConcurrency),
		fmt.Sprintf("How many clusters are worked on at the same time; you can also set %s", EnvConcurrency))

	c.fs.StringVar(
		&c.AwsRegion, "aws.region", envString(lookup, EnvAwsRegion, defaultAwsRegion),
		fmt.Sprintf("The AWS region the ASGs live in; you can also set %s", EnvAwsRegion))

	c.fs.StringVar(
		&c.ListenAddress, "web.listen-address", defaultMetricsListenAddress, "Address to expose deployment metrics on, disabled when empty")

	c.fs.StringVar(
		&c.MetricsPath, "web.telemetry-path", defaultMetricsPath, "The path where metrics will be exposed")

	c.fs.BoolVar(&c.Debug, "debug", false, "Log debug messages")

	c.fs.BoolVar(&c.JSONLogs, "log.json", false, "Log in JSON format")

	return c
}

// FlagSet returns the flags backing the configuration
func (c *Config) FlagSet() *flag.FlagSet {
	return c.fs
}

// Validate checks the configuration values are usable
func (c *Config) Validate() error {
	u, err := url.Parse(c.AsgardEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("asgard endpoint must be an absolute http(s) URL, got %q", c.AsgardEndpoint)
	}

	if c.AwsRegion == "" {
		return fmt.Errorf("An aws region is required")
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("deploy concurrency must be positive, got %d", c.Concurrency)
	}

	durations := map[string]time.Duration{
		"asgard.wait-timeout":       c.WaitTimeout,
		"asgard.activate-timeout":   c.ActivateTimeout,
		"asgard.deactivate-timeout": c.DeactivateTimeout,
		"asgard.request-timeout":    c.RequestTimeout,
		"asgard.poll-interval":      c.TaskPollInterval,
		"health.instances-timeout":  c.InstanceHealthyWait,
		"health.elb-timeout":        c.ELBHealthyWait,
		"health.poll-interval":      c.HealthPollInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	return nil
}

func envString(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

// envSeconds reads a number of seconds, falling back to def when unset or invalid
func envSeconds(lookup func(string) (string, bool), key string, def time.Duration) time.Duration {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		log.Warnf("Ignoring invalid %s=%q, using %s", key, v, def)
		return def
	}
	return time.Duration(secs * float64(time.Second))
}

func envInt(lookup func(string) (string, bool), key string, def int) int {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return i
}
