package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
)

// sink delivers a finished report file to its destination.
type sink interface {
	Put(ctx context.Context, key string, data []byte) error
}

type localSink struct {
	basePath string
}

func (l *localSink) Put(ctx context.Context, key string, data []byte) error {
	path := filepath.Join(l.basePath, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// createParquetFile opens a parquet writer directly on disk, so local
// parquet output needs no intermediate buffer.
func (l *localSink) createParquetFile(key string) (source.ParquetFile, error) {
	path := filepath.Join(l.basePath, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return local.NewLocalFileWriter(path)
}

type s3Sink struct {
	client *s3.Client
	bucket string
}

func newS3Sink(ctx context.Context, region, bucket string) (*s3Sink, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &s3Sink{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (s *s3Sink) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("unable to upload report to S3: %w", err)
	}
	return nil
}
