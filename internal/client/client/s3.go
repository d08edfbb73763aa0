package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/config"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

// S3API is the part of *s3.Client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) S3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Client writes files straight into an S3-compatible bucket. The object
// key doubles as the remote id.
type S3Client struct {
	api    S3API
	bucket string
	owner  func() string
	now    func() time.Time
	newID  func() string
}

func NewS3Client(api S3API, bucket string, owner func() string) *S3Client {
	return &S3Client{
		api:    api,
		bucket: bucket,
		owner:  owner,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// NewS3ClientFromConfig loads an AWS config with static credentials and
// points the S3 client at cfg.S3BaseEndpoint using path-style addressing,
// which MinIO and most self-hosted stores require.
func NewS3ClientFromConfig(ctx context.Context, cfg *config.Config, owner func() string) (*S3Client, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("s3 transfer mode requires a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	api := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Client(api, cfg.S3Bucket, owner), nil
}

func (c *S3Client) objectKey(name string) string {
	owner := ""
	if c.owner != nil {
		owner = c.owner()
	}
	if owner == "" {
		owner = "unknown"
	}
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	d := c.now().UTC()
	return fmt.Sprintf("uploads/%s/%04d/%02d/%02d/%s/%s", owner, d.Year(), int(d.Month()), d.Day(), c.newID(), base)
}

func (c *S3Client) Upload(ctx context.Context, file models.SelectedFile) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer rc.Close()

	// The SDK signs the payload, so it needs a seekable body.
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file.Name, err)
	}

	ct := file.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := c.objectKey(file.Name)
	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ct),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", classifyS3Error(err)
	}
	return key, nil
}

func classifyS3Error(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	reason := apiErr.ErrorMessage()
	if reason == "" {
		reason = apiErr.ErrorCode()
	}

	status := 0
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		status = respErr.HTTPStatusCode()
	}
	return &BackendError{StatusCode: status, Reason: reason}
}
