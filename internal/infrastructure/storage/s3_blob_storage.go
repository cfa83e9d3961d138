package storage

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"

	"atelie/internal/config"
	"atelie/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrStorageNotConfigured = errors.New("blob storage not configured")

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3BlobStorage stores uploaded files in a single bucket.
//
// Public URLs are PublicBaseURL + "/" + key. When PublicBaseURL is empty the
// virtual-hosted S3 URL of the bucket is used.
type S3BlobStorage struct {
	client        s3API
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

var _ interfaces.IBlobStorage = (*S3BlobStorage)(nil)

// NewS3Client creates the SDK client; a custom endpoint (MinIO, localstack)
// switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3BlobStorage(client s3API, cfg config.StorageConfig, region string, logger *zap.Logger) (*S3BlobStorage, error) {
	if client == nil || strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrStorageNotConfigured
	}
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = "https://" + cfg.Bucket + ".s3." + region + ".amazonaws.com"
	}
	return &S3BlobStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: base,
		logger:        logger.Named("s3"),
	}, nil
}

func (s *S3BlobStorage) Store(ctx context.Context, data []byte, contentType, suggestedPath string) (interfaces.StoredObject, error) {
	key := strings.TrimLeft(suggestedPath, "/")
	if key == "" {
		return interfaces.StoredObject{}, errors.New("empty storage path")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.logger.Warn("put object failed", zap.String("key", key), zap.Error(err))
		return interfaces.StoredObject{}, err
	}
	s.logger.Info("object stored", zap.String("key", key), zap.Int("bytes", len(data)))

	return interfaces.StoredObject{URL: s.publicURL(key), Path: key}, nil
}

func (s *S3BlobStorage) Delete(ctx context.Context, ref string) error {
	key, ok := s.keyFromRef(ref)
	if !ok {
		s.logger.Debug("skipping delete of foreign reference", zap.String("ref", ref))
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	s.logger.Info("object deleted", zap.String("key", key))
	return nil
}

func (s *S3BlobStorage) publicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}

// keyFromRef resolves a key or one of our public URLs to a key. Inline data
// URLs and URLs of other hosts are not ours to delete.
func (s *S3BlobStorage) keyFromRef(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "", strings.HasPrefix(ref, "data:"):
		return "", false
	case strings.HasPrefix(ref, s.publicBaseURL+"/"):
		escaped := strings.TrimPrefix(ref, s.publicBaseURL+"/")
		key, err := url.PathUnescape(escaped)
		if err != nil {
			return "", false
		}
		return key, true
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return "", false
	}
	return strings.TrimLeft(ref, "/"), true
}
