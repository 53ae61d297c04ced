package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"fridgemate/internal/utils/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestUploadFile(t *testing.T) {
	putter := &fakePutter{}
	uploader := storage.NewAwsS3WithClient(putter, storage.S3Config{
		Bucket: "fridge-backups",
		Region: "ap-northeast-2",
		Prefix: "/fridgemate/",
	})

	key, err := uploader.UploadFile(context.Background(), "recipes.json", []byte(`[]`), "recipes", storage.ContentTypeJSON)
	require.NoError(t, err)

	assert.Equal(t, "fridgemate/recipes/recipes.json", key)
	assert.Equal(t, "fridge-backups", aws.ToString(putter.input.Bucket))
	assert.Equal(t, key, aws.ToString(putter.input.Key))
	assert.Equal(t, storage.ContentTypeJSON, aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte(`[]`), putter.body)

	assert.Equal(t,
		"https://fridge-backups.s3.ap-northeast-2.amazonaws.com/fridgemate/recipes/recipes.json",
		uploader.GetPublicLinkKey(key),
	)
}

func TestUploadFile_Error(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	uploader := storage.NewAwsS3WithClient(putter, storage.S3Config{Bucket: "b", Region: "r"})

	_, err := uploader.UploadFile(context.Background(), "recipes.json", []byte(`[]`), "recipes", storage.ContentTypeJSON)
	assert.ErrorContains(t, err, "access denied")
}

func TestNewAwsS3_RequiresBucket(t *testing.T) {
	_, err := storage.NewAwsS3(context.Background(), storage.S3Config{Region: "ap-northeast-2"})
	assert.Error(t, err)
}
