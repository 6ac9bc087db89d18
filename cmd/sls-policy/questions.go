package main

import (
	"github.com/berkguzel/sls-policy/internal/types"
	"github.com/berkguzel/sls-policy/pkg/prompt"
)

const wildcard = "*"

const (
	questionName     = "name"
	questionStage    = "stage"
	questionRegion   = "region"
	questionDynamoDB = "dynamodb"
)

// questions returns the prompts in the order they are asked. The
// arguments become the defaults.
func questions(project, stage, region string, dynamodb bool) []prompt.Question {
	return []prompt.Question{
		{
			Name:     questionName,
			Message:  "Your Serverless service name",
			Default:  project,
			Validate: prompt.NoPathSeparator,
		},
		{
			Name:    questionStage,
			Message: "You can specify a specific stage, if you like:",
			Default: defaultTo(stage, wildcard),
		},
		{
			Name:    questionRegion,
			Message: "You can specify a specific region, if you like:",
			Default: defaultTo(region, wildcard),
		},
		{
			Name:       questionDynamoDB,
			Message:    "Does your service rely on DynamoDB?",
			Kind:       prompt.Confirm,
			DefaultYes: dynamodb,
		},
	}
}

// dynamoDBDefault is the default answer to the DynamoDB question. An
// explicit --dynamodb flag wins; otherwise a terminal prompt defaults to
// yes and non-interactive runs default to no.
func dynamoDBDefault(flag, flagSet bool, asker prompt.Asker) bool {
	if flagSet {
		return flag
	}
	_, interactive := asker.(*prompt.Survey)
	return interactive
}

func settingsFrom(answers prompt.Answers) types.Settings {
	return types.Settings{
		Name:     answers.String(questionName),
		Stage:    answers.String(questionStage),
		Region:   answers.String(questionRegion),
		DynamoDB: answers.Bool(questionDynamoDB),
	}
}

func defaultTo(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
