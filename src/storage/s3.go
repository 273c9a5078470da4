package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/config"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

var (
	s3Singleton     *S3Client
	s3SingletonOnce sync.Once
)

// Get returns the process-wide storage client, connecting on first
// use. Long-lived commands should Close it on shutdown.
func Get() Client {
	s3SingletonOnce.Do(func() {
		s3Singleton = NewS3Client(config.Config.Storage)
	})
	return s3Singleton
}

type S3Client struct {
	client  *s3.Client
	presign *s3.PresignClient
	cfg     config.StorageConfig
}

func NewS3Client(cfg config.StorageConfig) *S3Client {
	awscfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithEndpointResolver(aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL: cfg.Endpoint,
			}, nil
		})),
	)
	if err != nil {
		panic(err)
	}

	client := s3.NewFromConfig(awscfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &S3Client{
		client:  client,
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
	}
}

func (c *S3Client) Upload(ctx context.Context, path string, content []byte, contentType string) error {
	upload := func() error {
		_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &c.cfg.Bucket,
			Key:         &path,
			Body:        bytes.NewReader(content),
			ContentType: &contentType,
		})
		return err
	}

	err := upload()
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) && apiError.ErrorCode() == "NoSuchBucket" {
			_, err := c.client.CreateBucket(ctx, &s3.CreateBucketInput{
				Bucket: &c.cfg.Bucket,
			})
			if err != nil {
				return oops.New(err, "failed to create storage bucket")
			}

			err = upload()
			if err != nil {
				return oops.New(err, "failed to upload object")
			}
		} else {
			return oops.New(err, "failed to upload object")
		}
	}

	return nil
}

func (c *S3Client) SignedURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	req, err := c.presign.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: &c.cfg.Bucket,
			Key:    &path,
		},
		s3.WithPresignExpires(expires),
	)
	if err != nil {
		return "", oops.New(err, "failed to presign object URL")
	}
	return req.URL, nil
}

func (c *S3Client) PublicURL(path string) string {
	return strings.TrimSuffix(c.cfg.PublicUrlBase, "/") + "/" + path
}

func (c *S3Client) Close() {
	// The SDK's HTTP client needs no explicit teardown.
}
