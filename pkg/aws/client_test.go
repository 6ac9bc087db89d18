package aws

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSharedConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestProfileRegion(t *testing.T) {
	configFile := writeSharedConfig(t, `[default]
region = eu-west-1

[profile staging]
region = ap-southeast-2

[profile noregion]
output = json
`)

	tests := []struct {
		name          string
		profile       string
		setupEnv      func(t *testing.T)
		want          string
		wantErr       bool
		errorContains string
	}{
		{
			name:    "AWS_REGION set",
			profile: "staging",
			setupEnv: func(t *testing.T) {
				t.Setenv("AWS_REGION", "us-west-2")
			},
			want: "us-west-2",
		},
		{
			name:    "AWS_DEFAULT_REGION set",
			profile: "staging",
			setupEnv: func(t *testing.T) {
				t.Setenv("AWS_DEFAULT_REGION", "us-east-1")
			},
			want: "us-east-1",
		},
		{
			name:     "default profile from config file",
			setupEnv: func(t *testing.T) {},
			want:     "eu-west-1",
		},
		{
			name:     "named profile from config file",
			profile:  "staging",
			setupEnv: func(t *testing.T) {},
			want:     "ap-southeast-2",
		},
		{
			name:          "profile without region",
			profile:       "noregion",
			setupEnv:      func(t *testing.T) {},
			wantErr:       true,
			errorContains: `no region configured for AWS profile "noregion"`,
		},
		{
			name:          "missing profile",
			profile:       "does-not-exist",
			setupEnv:      func(t *testing.T) {},
			wantErr:       true,
			errorContains: "failed to load AWS config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_REGION", "")
			t.Setenv("AWS_DEFAULT_REGION", "")
			t.Setenv("AWS_PROFILE", "")
			t.Setenv("AWS_CONFIG_FILE", configFile)
			t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))
			tt.setupEnv(t)

			region, err := ProfileRegion(context.Background(), tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, region)
		})
	}
}

func TestDisplayProfile(t *testing.T) {
	assert.Equal(t, "default", displayProfile(""))
	assert.Equal(t, "staging", displayProfile("staging"))
}

func TestProfileRegion_MissingProfile(t *testing.T) {
	configFile := writeSharedConfig(t, `[default]
region = eu-west-1
`)
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", configFile)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))

	_, err := ProfileRegion(context.Background(), "stagging")
	require.Error(t, err)

	var notExist config.SharedConfigProfileNotExistError
	assert.True(t, errors.As(err, &notExist))
	assert.Equal(t, "stagging", notExist.Profile)
	assert.NotContains(t, err.Error(), "no region configured")
}

func TestCheckProfile(t *testing.T) {
	configFile := writeSharedConfig(t, `[profile staging]
region = ap-southeast-2
`)
	credentialsFile := writeSharedConfig(t, `[ci]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secret
`)
	t.Setenv("AWS_CONFIG_FILE", configFile)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credentialsFile)

	tests := []struct {
		name    string
		profile string
		wantErr bool
	}{
		{name: "profile in config file", profile: "staging"},
		{name: "profile in credentials file", profile: "ci"},
		{name: "unknown profile", profile: "prod", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkProfile(context.Background(), tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
