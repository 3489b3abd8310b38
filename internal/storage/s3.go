package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store keeps resumes in an S3-compatible bucket. Download requests are
// redirected to short-lived presigned URLs.
type S3Store struct {
	Client *minio.Client
	Bucket string
}

func NewS3Store(endpoint, accessKey, secretKey, bucket string) (*S3Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &S3Store{
		Client: client,
		Bucket: bucket,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_, err := s.Client.PutObject(
		ctx,
		s.Bucket,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return URLPrefix + name, nil
}

func (s *S3Store) Remove(ctx context.Context, name string) error {
	if err := s.Client.RemoveObject(ctx, s.Bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 remove object: %w", err)
	}
	return nil
}

func (s *S3Store) PresignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	reqParams := url.Values{}
	presignedURL, err := s.Client.PresignedGetObject(ctx, s.Bucket, name, expiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("presigned get object: %w", err)
	}
	return presignedURL.String(), nil
}
