package database

import (
	"context"
	"log"
	"strings"

	appconfig "mecanica_projects/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client shared by every repository.
// A DYNAMODB_ENDPOINT (e.g. http://dynamodb:8000) points it at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(awsCfg, endpointOption(cfg.DynamoDBEndpoint))
}

func NewAWSConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

func endpointOption(endpoint string) func(*dynamodb.Options) {
	endpoint = strings.TrimSpace(endpoint)
	return func(o *dynamodb.Options) {
		if endpoint == "" {
			return
		}
		log.Printf("[dynamodb] using custom endpoint=%s", endpoint)
		o.BaseEndpoint = aws.String(endpoint)
	}
}
