package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingS3 counts calls so tests can assert nothing reached the network
// path for locally rejected files.
type recordingS3 struct {
	puts    int
	deletes int
	lastKey string
}

func (r *recordingS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.puts++
	r.lastKey = *in.Key
	return &s3.PutObjectOutput{}, nil
}

func (r *recordingS3) DeleteObject(_ context.Context, _ *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	r.deletes++
	return &s3.DeleteObjectOutput{}, nil
}

func TestUploadRejectsOversizedBeforeNetwork(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	big := bytes.Repeat([]byte{0xFF}, MaxUploadBytes+1)
	_, err := u.Upload(context.Background(), BucketMenus, "huge.jpg", "image/jpeg", big)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Msg, "5MB")
	assert.Zero(t, api.puts)
}

func TestUploadRejectsWrongContentType(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	_, err := u.Upload(context.Background(), BucketStores, "doc.pdf", "application/pdf", []byte("%PDF"))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Msg, "JPEG, PNG and WebP")
	assert.Zero(t, api.puts)
}

func TestUploadRejectsUnknownBucket(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	_, err := u.Upload(context.Background(), "secrets", "a.png", "image/png", []byte("png"))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Zero(t, api.puts)
}

func TestUploadReturnsPublicURL(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	url, err := u.Upload(context.Background(), BucketEvents, "poster.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, 1, api.puts)
	assert.Contains(t, url, "coffee-site-events.s3.ap-northeast-2.amazonaws.com/")
	assert.Contains(t, url, api.lastKey)
}

func TestUploadBatchIsolatesFailures(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	results := u.UploadBatch(context.Background(), BucketMenus, []File{
		{Name: "good.png", ContentType: "image/png", Data: []byte("png")},
		{Name: "bad.txt", ContentType: "text/plain", Data: []byte("nope")},
		{Name: "also-good.webp", ContentType: "image/webp", Data: []byte("webp")},
	})

	require.Len(t, results, 3)
	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[1].Error)
	assert.Empty(t, results[2].Error)
	assert.Equal(t, 2, api.puts)
}

func TestDeleteParsesOwnURLsOnly(t *testing.T) {
	api := &recordingS3{}
	u := NewUploader(api, "coffee-site-", "ap-northeast-2")

	url := u.PublicURL(BucketMenus, "abc.png")
	require.NoError(t, u.Delete(context.Background(), url))
	assert.Equal(t, 1, api.deletes)

	// Foreign URLs are ignored rather than forwarded.
	require.NoError(t, u.Delete(context.Background(), "https://elsewhere.example.com/file.png"))
	assert.Equal(t, 1, api.deletes)
}
