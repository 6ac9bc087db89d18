package printer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/berkguzel/sls-policy/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name         string
		summary      types.Summary
		wantContains []string
	}{
		{
			name: "single permission",
			summary: types.Summary{
				Path:       "orders-prod-us-east-1-policy.json",
				Statements: 1,
				Permissions: []types.PermissionDisplay{
					{
						Action:   "s3:GetObject",
						Resource: "arn:aws:s3:::orders*serverlessdeploymentbucket*",
						Effect:   "Allow",
						IsBroad:  true,
					},
				},
			},
			wantContains: []string{
				"orders-prod-us-east-1-policy.json",
				"ACTION",
				"RESOURCE",
				"s3:GetObject",
				"WILDCARD",
			},
		},
		{
			name:    "empty permissions",
			summary: types.Summary{Path: "demo-_star_-_star_-policy.json"},
			wantContains: []string{
				"demo-_star_-_star_-policy.json",
				"No permissions granted",
			},
		},
		{
			name: "long resource is truncated",
			summary: types.Summary{
				Path:       "x-policy.json",
				Statements: 1,
				Permissions: []types.PermissionDisplay{
					{Action: "iam:*", Resource: "arn:aws:iam::*:role/" + strings.Repeat("a", 120), IsHighRisk: true},
				},
			},
			wantContains: []string{"...", "FULL", "full service grants: 1", "Full service grants:", "full service access"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Print(tt.summary)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintHighRisk(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).printHighRisk(types.Summary{
		Permissions: []types.PermissionDisplay{
			{Action: "dynamodb:*", Resource: "arn:aws:dynamodb:*:*:table/*", IsHighRisk: true},
			{Action: "s3:GetObject", Resource: "*"},
		},
	})

	assert.Contains(t, buf.String(), "dynamodb:*")
	assert.NotContains(t, buf.String(), "s3:GetObject")
}

func TestPrint_MultibyteResource(t *testing.T) {
	resource := "arn:aws:sqs:*:*:" + strings.Repeat("bestellungen-über-", 8)

	var buf bytes.Buffer
	New(&buf).Print(types.Summary{
		Path:       "bestellungen-über-prod-_star_-policy.json",
		Statements: 1,
		Permissions: []types.PermissionDisplay{
			{Action: "sqs:*", Resource: resource, IsBroad: true, IsHighRisk: true},
		},
	})

	assert.True(t, utf8.ValidString(buf.String()))
	assert.Contains(t, buf.String(), "...")
}
