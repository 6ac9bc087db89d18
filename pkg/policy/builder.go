package policy

import (
	"github.com/berkguzel/sls-policy/internal/types"
	"github.com/berkguzel/sls-policy/pkg/aws"
)

// deploymentBucket matches the bucket the Serverless Framework creates
// for deployment artifacts, whose name starts with the service name.
const deploymentBucket = "serverlessdeploymentbucket"

// Generate builds the full document for one set of answers.
func Generate(s types.Settings) Document {
	return WithDynamoDB(Build(s.Name, s.Stage, s.Region), s.DynamoDB)
}

// Build returns the baseline statements a Serverless service needs to
// deploy and run. Inputs are not validated; they are embedded verbatim.
func Build(serviceName, stage, region string) Document {
	stackName := serviceName + "-" + stage
	resourceName := serviceName + "-" + stage + "-" + region
	bucket := aws.BucketARN(serviceName + "*" + deploymentBucket + "*")

	return Document{
		Version: Version,
		Statement: []Statement{
			{
				Effect: Allow,
				Action: Strings(
					"cloudformation:List*",
					"cloudformation:Get*",
					"cloudformation:PreviewStackUpdate",
				),
				Resource: String(aws.Wildcard),
			},
			{
				Effect: Allow,
				Action: Strings(
					"cloudformation:CreateStack",
					"cloudformation:CreateUploadBucket",
					"cloudformation:DeleteStack",
					"cloudformation:DescribeStackEvents",
					"cloudformation:DescribeStackResource",
					"cloudformation:DescribeStackResources",
					"cloudformation:UpdateStack",
					"cloudformation:DescribeStacks",
				),
				Resource: String(aws.StackARN(region, stackName)),
			},
			{
				Effect: Allow,
				Action: Strings(
					"lambda:Get*",
					"lambda:List*",
					"lambda:CreateFunction",
				),
				Resource: String(aws.Wildcard),
			},
			{
				Effect:   Allow,
				Action:   Strings("s3:CreateBucket"),
				Resource: Strings(bucket),
			},
			{
				Effect: Allow,
				Action: Strings(
					"s3:PutObject",
					"s3:GetObject",
					"s3:ListBucket",
					"s3:DeleteObject",
					"s3:DeleteBucket",
					"s3:ListBucketVersions",
				),
				Resource: Strings(bucket),
			},
			{
				Effect: Allow,
				Action: Strings(
					"lambda:AddPermission",
					"lambda:CreateAlias",
					"lambda:DeleteFunction",
					"lambda:InvokeFunction",
					"lambda:PublishVersion",
					"lambda:RemovePermission",
					"lambda:Update*",
				),
				Resource: String(aws.FunctionARN(region, stackName+"-")),
			},
			{
				Effect:   Allow,
				Action:   Strings("apigateway:GET"),
				Resource: Strings(aws.RestAPIARN("/restapis")),
			},
			{
				Effect: Allow,
				Action: Strings(
					"apigateway:GET",
					"apigateway:POST",
					"apigateway:PUT",
					"apigateway:DELETE",
				),
				Resource: Strings(aws.RestAPIARN("/restapis/*/*")),
			},
			{
				Effect:   Allow,
				Action:   Strings("iam:PassRole"),
				Resource: String(aws.RoleARN(aws.Wildcard)),
			},
			{
				Effect:   Allow,
				Action:   String("kinesis:*"),
				Resource: String(aws.StreamARN(resourceName)),
			},
			{
				Effect:   Allow,
				Action:   String("iam:*"),
				Resource: String(aws.RoleARN(resourceName + "-lambdaRole")),
			},
			{
				Effect:   Allow,
				Action:   String("sqs:*"),
				Resource: String(aws.QueueARN(resourceName)),
			},
			{
				Effect:   Allow,
				Action:   Strings("cloudwatch:GetMetricStatistics"),
				Resource: Strings(aws.Wildcard),
			},
			{
				Effect: Allow,
				Action: Strings(
					"logs:DescribeLogStreams",
					"logs:FilterLogEvents",
				),
				Resource: Strings(aws.Wildcard),
			},
			{
				Effect: Allow,
				Action: Strings(
					"events:Put*",
					"events:Remove*",
					"events:Delete*",
				),
				Resource: String(aws.RuleARN(resourceName)),
			},
		},
	}
}

// DynamoDBStatement grants full access to every DynamoDB table.
func DynamoDBStatement() Statement {
	return Statement{
		Effect:   Allow,
		Action:   Strings("dynamodb:*"),
		Resource: Strings(aws.TableARN(aws.Wildcard)),
	}
}

// WithDynamoDB appends the DynamoDB statement when enabled. The existing
// statements are left in place and in order.
func WithDynamoDB(doc Document, enabled bool) Document {
	if !enabled {
		return doc
	}
	statements := make([]Statement, 0, len(doc.Statement)+1)
	statements = append(statements, doc.Statement...)
	doc.Statement = append(statements, DynamoDBStatement())
	return doc
}
