package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/pkg/errors"
)

// ProfileRegion returns the region configured for the given shared config
// profile. An empty profile means the default profile. Environment
// variables take precedence over the config file, as they do for the SDK.
func ProfileRegion(ctx context.Context, profile string) (string, error) {
	// First try environment variables
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region != "" {
		return region, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		// LoadDefaultConfig ignores a profile missing from the shared
		// files, so check that it exists first.
		if err := checkProfile(ctx, profile); err != nil {
			return "", errors.Wrap(err, "failed to load AWS config")
		}
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to load AWS config")
	}

	if cfg.Region == "" {
		return "", errors.Errorf("no region configured for AWS profile %q", displayProfile(profile))
	}

	return cfg.Region, nil
}

// checkProfile looks the profile up in the shared config and credentials
// files, honouring AWS_CONFIG_FILE and AWS_SHARED_CREDENTIALS_FILE.
func checkProfile(ctx context.Context, profile string) error {
	env, err := config.NewEnvConfig()
	if err != nil {
		return err
	}

	_, err = config.LoadSharedConfigProfile(ctx, profile, func(o *config.LoadSharedConfigOptions) {
		if env.SharedConfigFile != "" {
			o.ConfigFiles = []string{env.SharedConfigFile}
		}
		if env.SharedCredentialsFile != "" {
			o.CredentialsFiles = []string{env.SharedCredentialsFile}
		}
	})
	return err
}

func displayProfile(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
