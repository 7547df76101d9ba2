package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	puts    map[string]string
	types   map[string]string
	deletes []string
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.puts[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(b)
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3_PutDelete(t *testing.T) {
	fake := &fakeObjects{puts: map[string]string{}, types: map[string]string{}}
	s := &S3{client: fake, bucket: "listing-images"}
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "cover.png", strings.NewReader("bytes"), "image/png"))
	assert.Equal(t, "bytes", fake.puts["listing-images/cover.png"])
	assert.Equal(t, "image/png", fake.types["cover.png"])

	require.NoError(t, s.Delete(ctx, "cover.png"))
	assert.Equal(t, []string{"cover.png"}, fake.deletes)

	assert.Error(t, s.Put(ctx, "../x.png", strings.NewReader(""), "image/png"))

	fake.err = errors.New("access denied")
	err := s.Put(ctx, "other.png", strings.NewReader(""), "image/png")
	assert.ErrorContains(t, err, "access denied")
}
