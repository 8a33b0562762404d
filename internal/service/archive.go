package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mealmuse/backend/config"
)

// ErrArchiveDisabled is returned when no archive bucket is configured.
var ErrArchiveDisabled = errors.New("recipe archive is not configured")

// S3PutAPI is the subset of the S3 client the archive writes through.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ArchiveService keeps a plain-text copy of every generated recipe in S3 and
// hands out presigned links for sharing.
type ArchiveService struct {
	client S3PutAPI
	awsCfg *config.AWSConfig
	bucket string
}

// NewArchiveService creates an ArchiveService. The archive is optional; with
// no bucket configured every call reports ErrArchiveDisabled.
func NewArchiveService(awsCfg *config.AWSConfig) *ArchiveService {
	return &ArchiveService{
		client: awsCfg.S3Client,
		awsCfg: awsCfg,
		bucket: awsCfg.ArchiveBucket,
	}
}

// Enabled reports whether an archive bucket is configured.
func (s *ArchiveService) Enabled() bool {
	return s.bucket != ""
}

// Put stores the recipe text and returns the object key.
func (s *ArchiveService) Put(ctx context.Context, userID, recipeID uuid.UUID, body string) (string, error) {
	if !s.Enabled() {
		return "", ErrArchiveDisabled
	}

	key := ObjectKey(userID, recipeID)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive recipe: %w", err)
	}
	return key, nil
}

// ShareURL returns a presigned URL for an archived recipe.
func (s *ArchiveService) ShareURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	if !s.Enabled() {
		return "", ErrArchiveDisabled
	}
	return s.awsCfg.PresignGetObject(ctx, key, expiration)
}

// ObjectKey names an archived recipe by owner and id.
func ObjectKey(userID, recipeID uuid.UUID) string {
	return fmt.Sprintf("recipes/%s/%s.txt", userID, recipeID)
}
