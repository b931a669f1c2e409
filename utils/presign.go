package utils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

// PresignedPost describes a short-lived object-storage upload slot the
// client can use to mirror an image to S3.
type PresignedPost struct {
	URL       string `json:"url"`
	Method    string `json:"method"`
	Key       string `json:"key"`
	ExpiresIn int64  `json:"expiresIn"`
}

// getPresignClient returns a configured S3 presign client
func getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return s3.NewPresignClient(s3.NewFromConfig(cfg)), nil
}

// GeneratePresignedPost creates a presigned S3 PUT for the given object key.
// Returns nil without error when no S3_BUCKET is configured, so local-disk
// deployments keep working with no AWS credentials at all.
func GeneratePresignedPost(ctx context.Context, key, contentType string) (*PresignedPost, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	presigner, err := getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload for %s: %w", key, err)
	}

	return &PresignedPost{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		ExpiresIn: int64(presignExpiry.Seconds()),
	}, nil
}
