package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/berkguzel/sls-policy/pkg/output"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

const wildcard = "*"

type Options struct {
	Project           string
	Stage             string
	Region            string
	DynamoDB          bool
	Yes               bool
	OutDir            string
	Format            string
	Profile           string
	RegionFromProfile bool
	Verbose           bool
	Quiet             bool

	format output.Format
}

func NewOptions() *Options {
	// Default the project to the current folder name
	project := ""
	if wd, err := os.Getwd(); err == nil {
		project = filepath.Base(wd)
	}

	return &Options{
		Project: project,
		Stage:   wildcard,
		Region:  wildcard,
		OutDir:  ".",
		Format:  string(output.FormatJSON),
		Profile: os.Getenv("AWS_PROFILE"),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Project, "project", "p", o.Project, "The name of the Serverless project")
	fs.StringVarP(&o.Stage, "stage", "s", o.Stage, "The name of a single stage to target")
	fs.StringVarP(&o.Region, "region", "r", o.Region, "The name of a single region to target")
	fs.BoolVar(&o.DynamoDB, "dynamodb", o.DynamoDB, "Grant access to DynamoDB tables")
	fs.BoolVarP(&o.Yes, "yes", "y", o.Yes, "Skip the prompts and use flag values")
	fs.StringVarP(&o.OutDir, "out-dir", "o", o.OutDir, "Directory the policy file is written to")
	fs.StringVarP(&o.Format, "format", "f", o.Format, "Output format (json or yaml)")
	fs.StringVar(&o.Profile, "profile", o.Profile, "AWS profile used by --region-from-profile")
	fs.BoolVar(&o.RegionFromProfile, "region-from-profile", o.RegionFromProfile, "Suggest the AWS profile's region as the default region")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "Enable debug logging")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "Do not print the permissions summary")
}

// Validate checks flag values and resolves the output directory.
func (o *Options) Validate() error {
	format, err := output.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.format = format

	if o.OutDir == "" {
		o.OutDir = "."
	}
	dir, err := homedir.Expand(o.OutDir)
	if err != nil {
		return fmt.Errorf("invalid output directory %q: %w", o.OutDir, err)
	}
	o.OutDir = dir

	if o.Verbose && o.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	return nil
}

// OutputFormat returns the parsed format. Only valid after Validate.
func (o *Options) OutputFormat() output.Format {
	return o.format
}
