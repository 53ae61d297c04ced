package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const ContentTypeJSON = "application/json"

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	// ObjectPutter is the part of the S3 client the uploader needs.
	ObjectPutter interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	}

	S3Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
		Prefix    string
	}

	awsS3 struct {
		client ObjectPutter
		bucket string
		region string
		prefix string
	}
)

// NewAwsS3 builds an uploader from the default AWS credential chain, or from
// static keys when they are configured.
func NewAwsS3(ctx context.Context, cfg S3Config) (AwsS3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return NewAwsS3WithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

func NewAwsS3WithClient(client ObjectPutter, cfg S3Config) AwsS3 {
	return &awsS3{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}
}

// UploadFile stores body under prefix/folder/fileName and returns the object key.
func (a *awsS3) UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string) (string, error) {
	objectKey := path.Join(a.prefix, folder, fileName)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", objectKey, err)
	}

	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
