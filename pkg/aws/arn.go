package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

const (
	// Partition is the only partition the generated policies target.
	Partition = "aws"
	// Wildcard matches any region, account or name segment.
	Wildcard = "*"
)

// ARN formats arn:aws:{service}:{region}:{account}:{resource}. Empty
// segments are kept empty, as IAM expects for global services like S3.
func ARN(service, region, account, resource string) string {
	return arn.ARN{
		Partition: Partition,
		Service:   service,
		Region:    region,
		AccountID: account,
		Resource:  resource,
	}.String()
}

// StackARN matches every stack id of the named CloudFormation stack.
func StackARN(region, stackName string) string {
	return ARN("cloudformation", region, Wildcard, "stack/"+stackName+"/*")
}

// FunctionARN matches every Lambda function whose name starts with prefix.
func FunctionARN(region, prefix string) string {
	return ARN("lambda", region, Wildcard, "function:"+prefix+"*")
}

func BucketARN(pattern string) string {
	return ARN("s3", "", "", pattern)
}

func RestAPIARN(path string) string {
	return ARN("apigateway", Wildcard, "", path)
}

func RoleARN(name string) string {
	return ARN("iam", "", Wildcard, "role/"+name)
}

func StreamARN(name string) string {
	return ARN("kinesis", Wildcard, Wildcard, "stream/"+name)
}

func QueueARN(name string) string {
	return ARN("sqs", Wildcard, Wildcard, name)
}

func RuleARN(name string) string {
	return ARN("events", Wildcard, Wildcard, "rule/"+name)
}

func TableARN(name string) string {
	return ARN("dynamodb", Wildcard, Wildcard, "table/"+name)
}
