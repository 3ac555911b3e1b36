package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"photomarket/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Store talks to AWS S3 or any S3-compatible service.
type S3Store struct {
	client     s3iface.S3API
	bucket     string
	endpoint   string
	region     string
	pathStyle  bool
	publicBase string
}

func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.PathStyle),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}

	return newS3Store(s3.New(sess), cfg), nil
}

func newS3Store(client s3iface.S3API, cfg config.StorageConfig) *S3Store {
	return &S3Store{
		client:     client,
		bucket:     cfg.Bucket,
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		region:     cfg.Region,
		pathStyle:  cfg.PathStyle,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String(s3.ObjectCannedACLPublicRead),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete %s from S3: %w", key, err)
	}
	return nil
}

// PublicURL prefers the configured public base (a CDN), then the endpoint in
// path or virtual-host style, then the AWS regional host.
func (s *S3Store) PublicURL(key string) string {
	switch {
	case s.publicBase != "":
		return s.publicBase + "/" + key
	case s.endpoint != "" && s.pathStyle:
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	case s.endpoint != "":
		if u, err := url.Parse(s.endpoint); err == nil && u.Host != "" {
			return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, s.bucket, u.Host, key)
		}
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
