// Command sls-policy writes an IAM policy that lets a CI user or
// developer deploy and operate one Serverless Framework service.
package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/berkguzel/sls-policy/internal/options"
	"github.com/berkguzel/sls-policy/pkg/analyzer"
	"github.com/berkguzel/sls-policy/pkg/aws"
	"github.com/berkguzel/sls-policy/pkg/output"
	"github.com/berkguzel/sls-policy/pkg/policy"
	"github.com/berkguzel/sls-policy/pkg/printer"
	"github.com/berkguzel/sls-policy/pkg/prompt"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "sls-policy",
		Short: "Generate an IAM policy for deploying a Serverless service",
		Long: `sls-policy asks for a service name, stage, region and whether the
service uses DynamoDB, then writes the IAM policy needed to deploy it:

    {service}-{stage}-{region}-policy.json

A stage or region of "*" targets all of them and is written as "_star_"
in the file name.

Examples:
    sls-policy                                   # interactive
    sls-policy -y -p orders -s prod -r us-east-1 --dynamodb
    sls-policy -y -p demo -f yaml -o ~/policies`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			logger := newLogger(opts, cmd.ErrOrStderr())
			asker := newAsker(opts)
			opts.DynamoDB = dynamoDBDefault(opts.DynamoDB, cmd.Flags().Changed("dynamodb"), asker)
			return run(cmd.Context(), opts, asker, cmd.OutOrStdout(), logger)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func newLogger(opts *options.Options, w io.Writer) hclog.Logger {
	level := hclog.Info
	switch {
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "sls-policy",
		Level:  level,
		Output: w,
	})
}

// newAsker prompts on the terminal unless prompts were turned off or
// stdin is not a terminal.
func newAsker(opts *options.Options) prompt.Asker {
	fd := os.Stdin.Fd()
	if opts.Yes || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return prompt.Defaults{}
	}
	return prompt.NewSurvey(os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, opts *options.Options, asker prompt.Asker, stdout io.Writer, logger hclog.Logger) error {
	region := opts.Region
	if opts.RegionFromProfile && region == wildcard {
		profileRegion, err := aws.ProfileRegion(ctx, opts.Profile)
		if err != nil {
			return err
		}
		logger.Debug("using region from AWS profile", "profile", opts.Profile, "region", profileRegion)
		region = profileRegion
	}

	answers, err := prompt.NewRunner(asker).Run(questions(opts.Project, opts.Stage, region, opts.DynamoDB))
	if err != nil {
		return err
	}
	settings := settingsFrom(answers)

	logger.Info("app name", "name", settings.Name)
	logger.Info("app stage", "stage", settings.Stage)
	logger.Info("app region", "region", settings.Region)
	logger.Debug("dynamodb access", "enabled", settings.DynamoDB)

	doc := policy.Generate(settings)

	format := opts.OutputFormat()
	data, err := output.Encode(doc, format)
	if err != nil {
		return err
	}

	fileName := output.FileName(settings, format)
	logger.Info("writing policy", "path", filepath.Join(opts.OutDir, fileName))

	path, err := output.Write(opts.OutDir, fileName, data)
	if err != nil {
		return err
	}

	summary := analyzer.Summarize(path, doc)
	logger.Debug("policy generated", "summary", summary.String())
	if !opts.Quiet {
		printer.New(stdout).Print(summary)
	}

	return nil
}
