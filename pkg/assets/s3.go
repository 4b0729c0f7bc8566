package assets

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// s3API is the subset of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store stores assets in an S3 bucket. Metadata travels as object
// metadata, so no separate index is needed.
type S3Store struct {
	client  s3API
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Store creates an S3-backed store.
//
//	cfg, _ := awsconfig.LoadDefaultConfig(ctx)
//	store := assets.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "assets/", 10<<20)
func NewS3Store(client *s3.Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix, maxSize: maxSize}
}

func (s *S3Store) Put(ctx context.Context, a Asset, r io.Reader) (Asset, error) {
	if s.maxSize > 0 && a.Size > s.maxSize {
		return Asset{}, ErrTooLarge
	}

	var buf bytes.Buffer
	var src io.Reader = r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(&buf, src)
	if err != nil {
		return Asset{}, err
	}
	if s.maxSize > 0 && n > s.maxSize {
		return Asset{}, ErrTooLarge
	}

	a.ID = uuid.NewString()
	a.Size = n
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.prefix + a.ID),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentType:   aws.String(a.ContentType),
		ContentLength: aws.Int64(n),
		Metadata: map[string]string{
			"filename":   a.Filename,
			"created-at": a.CreatedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return Asset{}, err
	}
	return a, nil
}

func (s *S3Store) Open(ctx context.Context, id string) (Asset, io.ReadCloser, error) {
	if !validID(id) {
		return Asset{}, nil, ErrNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + id),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return Asset{}, nil, ErrNotFound
		}
		return Asset{}, nil, err
	}

	a := Asset{ID: id}
	if out.ContentType != nil {
		a.ContentType = *out.ContentType
	}
	if out.ContentLength != nil {
		a.Size = *out.ContentLength
	}
	a.Filename = out.Metadata["filename"]
	if ts := out.Metadata["created-at"]; ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			a.CreatedAt = t
		}
	}
	return a, out.Body, nil
}

func (s *S3Store) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + id),
	})
	return err
}
