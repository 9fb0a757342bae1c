// Package storage uploads admin-provided images to S3 and hands back public
// URLs. Size and content-type limits are enforced locally before any request
// leaves the process.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxUploadBytes caps a single image at 5MB.
const MaxUploadBytes = 5 * 1024 * 1024

// Buckets the admin panel may target. Each maps to a real S3 bucket of the
// same name prefixed with the configured bucket prefix.
const (
	BucketMenus  = "menus"
	BucketStores = "stores"
	BucketEvents = "events"
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidationError marks an upload rejected before reaching S3.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// S3API is the subset of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Uploader stores images in S3 under per-purpose buckets.
type Uploader struct {
	client       S3API
	bucketPrefix string
	region       string
}

func NewUploader(client S3API, bucketPrefix, region string) *Uploader {
	return &Uploader{client: client, bucketPrefix: bucketPrefix, region: region}
}

// ValidBucket reports whether name is one of the known upload targets.
func ValidBucket(name string) bool {
	return name == BucketMenus || name == BucketStores || name == BucketEvents
}

// check rejects oversized or non-image payloads. Runs before any network
// call so a bad file never consumes bandwidth.
func check(data []byte, contentType string) error {
	if len(data) == 0 {
		return &ValidationError{Msg: "file is empty"}
	}
	if len(data) > MaxUploadBytes {
		return &ValidationError{Msg: "file exceeds the 5MB size limit"}
	}
	if _, ok := allowedTypes[strings.ToLower(contentType)]; !ok {
		return &ValidationError{Msg: "only JPEG, PNG and WebP images are accepted"}
	}
	return nil
}

// Upload validates the image and stores it under a fresh UUID-based key,
// returning the public URL.
func (u *Uploader) Upload(ctx context.Context, bucket, filename, contentType string, data []byte) (string, error) {
	if !ValidBucket(bucket) {
		return "", &ValidationError{Msg: "unknown upload bucket"}
	}
	if err := check(data, contentType); err != nil {
		return "", err
	}

	ext := allowedTypes[strings.ToLower(contentType)]
	if e := strings.ToLower(path.Ext(filename)); e != "" {
		ext = e
	}
	key := uuid.NewString() + ext

	full := u.bucketPrefix + bucket
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(full),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return u.PublicURL(bucket, key), nil
}

// UploadResult reports the outcome for one file in a batch.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// File is one member of a batch upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadBatch uploads files one by one. A failure does not abort the rest;
// each result carries its own error.
func (u *Uploader) UploadBatch(ctx context.Context, bucket string, files []File) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, f := range files {
		url, err := u.Upload(ctx, bucket, f.Name, f.ContentType, f.Data)
		r := UploadResult{Filename: f.Name, URL: url}
		if err != nil {
			r.Error = err.Error()
		}
		results = append(results, r)
	}
	return results
}

// Delete removes a previously uploaded object given its public URL. Unknown
// URLs are ignored.
func (u *Uploader) Delete(ctx context.Context, publicURL string) error {
	bucket, key, ok := u.parseURL(publicURL)
	if !ok {
		return nil
	}
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucketPrefix + bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// PublicURL builds the virtual-hosted S3 URL for an uploaded object.
func (u *Uploader) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s%s.s3.%s.amazonaws.com/%s", u.bucketPrefix, bucket, u.region, key)
}

// parseURL recovers (bucket, key) from a URL produced by PublicURL.
func (u *Uploader) parseURL(s string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(s, "https://"+u.bucketPrefix)
	if !found {
		return "", "", false
	}
	host, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", "", false
	}
	bucket, _, found = strings.Cut(host, ".s3.")
	if !found || !ValidBucket(bucket) {
		return "", "", false
	}
	return bucket, key, true
}
