package config

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWSConfig holds the explicitly constructed AWS clients and the single model
// identifier this service is permitted to invoke. It is built once at startup
// and passed down; nothing reads ambient AWS state after this point.
type AWSConfig struct {
	Config          aws.Config
	S3Client        *s3.Client
	ArchiveBucket   string
	BedrockModelID  string
	BedrockEndpoint string
}

// NewAWSConfig resolves credentials and region from the environment or shared
// config and wires the S3 archive client.
func NewAWSConfig(ctx context.Context, cfg *Config) (*AWSConfig, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return &AWSConfig{
		Config:          awsCfg,
		S3Client:        s3.NewFromConfig(awsCfg),
		ArchiveBucket:   cfg.ArchiveBucket,
		BedrockModelID:  cfg.BedrockModelID,
		BedrockEndpoint: cfg.BedrockEndpoint,
	}, nil
}

// PresignGetObject generates a presigned URL for the given object key with the
// specified expiration time.
func (a *AWSConfig) PresignGetObject(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(a.S3Client)
	presignedURL, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.ArchiveBucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
