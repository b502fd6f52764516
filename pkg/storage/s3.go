// Package storage persists uploaded resume documents in S3-compatible object
// storage. The store is optional; when it is not configured writes become
// no-ops so uploads keep working without cloud credentials.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider selects the S3-compatible backend.
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

type Config struct {
	Enabled         bool
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string

	// Wasabi-specific endpoint override, e.g. "s3.eu-central-1.wasabisys.com"
	WasabiEndpoint string
}

// wasabiEndpoints maps regions to Wasabi service endpoints.
var wasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"eu-west-2":      "s3.eu-west-2.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-northeast-2": "s3.ap-northeast-2.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
	"ap-southeast-2": "s3.ap-southeast-2.wasabisys.com",
}

const defaultWasabiEndpoint = "s3.ap-southeast-1.wasabisys.com"

// Store is an object writer bound to one bucket. The zero value is a valid,
// permanently disabled store.
type Store struct {
	client *s3.Client
	bucket string
}

// New builds a store from config. Incomplete credentials or Enabled=false
// yield a disabled store rather than an error.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if !cfg.Enabled || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" {
		return &Store{}, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	switch cfg.Provider {
	case ProviderWasabi:
		endpoint := cfg.WasabiEndpoint
		if endpoint == "" {
			endpoint = wasabiEndpoints[cfg.Region]
		}
		if endpoint == "" {
			endpoint = defaultWasabiEndpoint
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + endpoint)
			o.UsePathStyle = true // Wasabi requires path-style
		})
	default:
		client = s3.NewFromConfig(awsCfg)
	}

	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) IsConfigured() bool { return s.client != nil }

// Put writes one object. Disabled stores ignore the write and return nil.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if !s.IsConfigured() {
		return nil
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to store object %s: %w", key, err)
	}
	return nil
}

// Ping verifies bucket access by listing at most one object.
func (s *Store) Ping(ctx context.Context) error {
	if !s.IsConfigured() {
		return nil
	}
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
