package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects   map[string][]byte
	getErr    error
	deleteErr error
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Backend_RoundTrip(t *testing.T) {
	objects := &fakeObjects{objects: map[string][]byte{}}
	b := &S3Backend{client: objects, bucket: "resumes", key: "pratResumeData.json"}
	ctx := context.Background()

	assert.Equal(t, "s3", b.Name())

	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Save(ctx, []byte(`{"skills":[]}`)))
	assert.Contains(t, objects.objects, "resumes/pratResumeData.json")

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"skills":[]}`, string(data))

	require.NoError(t, b.Clear(ctx))
	assert.Empty(t, objects.objects)
}

func TestS3Backend_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	notFound := &S3Backend{client: &fakeObjects{getErr: &smithy.GenericAPIError{Code: "NotFound"}}, bucket: "b", key: "k"}
	_, err := notFound.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	denied := &S3Backend{client: &fakeObjects{getErr: &smithy.GenericAPIError{Code: "AccessDenied"}}, bucket: "b", key: "k"}
	_, err = denied.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get object")

	missing := &S3Backend{client: &fakeObjects{objects: map[string][]byte{}, deleteErr: &s3types.NoSuchKey{}}, bucket: "b", key: "k"}
	assert.NoError(t, missing.Clear(ctx))
}

func TestNewS3Backend_RequiresBucket(t *testing.T) {
	_, err := NewS3Backend(context.Background(), S3Options{})
	assert.Error(t, err)
}

func TestNewS3Backend_StaticCredentials(t *testing.T) {
	b, err := NewS3Backend(context.Background(), S3Options{
		Bucket:          "resumes",
		Region:          "auto",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "resumes", b.bucket)
	assert.Equal(t, "pratResumeData.json", b.key)
}
