package database

import (
	"context"

	"fibra_provisioning/internal/config"
	"fibra_provisioning/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// NewAWSConfig builds the SDK config shared by the DynamoDB and S3 clients.
//
// Local DynamoDB and MinIO do not validate credentials, but the AWS SDK
// requires them, so static credentials from config are always set.
func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates a DynamoDB client. DynamoDBEndpoint, when set,
// points the client at a local instance (e.g. http://dynamodb:8000).
func ConnectDynamoDB(awsCfg aws.Config, cfg config.AWSConfig) *dynamodb.Client {
	endpoint := cfg.DynamoDBEndpoint
	logger.Info("dynamodb client initialized", zap.String("region", awsCfg.Region), zap.String("endpoint", endpoint))
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// ConnectS3 creates the client used to look up OTDR evidence. A custom
// endpoint switches to path-style addressing, which MinIO requires.
func ConnectS3(awsCfg aws.Config, cfg config.AWSConfig) *s3.Client {
	endpoint := cfg.S3Endpoint
	logger.Info("s3 client initialized", zap.String("region", awsCfg.Region), zap.String("endpoint", endpoint))
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
