package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings(t *testing.T) {
	settings := Settings{
		Name:     "orders",
		Stage:    "prod",
		Region:   "us-east-1",
		DynamoDB: true,
	}

	copied := settings
	copied.Stage = "dev"

	assert.Equal(t, "prod", settings.Stage)
	assert.Equal(t, "dev", copied.Stage)
	assert.True(t, settings.DynamoDB)
}
