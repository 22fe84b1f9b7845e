package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

// ObjectAPI is the subset of the S3 client the snapshot adapters use
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Object stores a snapshot as an object in an S3 bucket.
// It is both a source and a sink.
type S3Object struct {
	client ObjectAPI
	bucket string
	key    string
}

var (
	_ ports.SnapshotSource = (*S3Object)(nil)
	_ ports.SnapshotSink   = (*S3Object)(nil)
)

// NewS3Object creates an adapter for bucket/key using the given client
func NewS3Object(client ObjectAPI, bucket, key string) *S3Object {
	return &S3Object{client: client, bucket: bucket, key: key}
}

// NewS3ObjectFromEnv builds an S3 client from the default AWS credential chain
// (env vars, shared config, instance role). AWS_ENDPOINT_URL selects an
// S3-compatible endpoint such as MinIO.
func NewS3ObjectFromEnv(ctx context.Context, bucket, key string) (*S3Object, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return NewS3Object(client, bucket, key), nil
}

// Location returns the s3:// URI
func (o *S3Object) Location() string {
	return "s3://" + o.bucket + "/" + o.key
}

// Load downloads and decodes the snapshot object
func (o *S3Object) Load(ctx context.Context) (domain.Tree, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
	})
	if err != nil {
		return domain.Tree{}, fmt.Errorf("get object %s: %w", o.key, err)
	}
	defer out.Body.Close()

	return Decode(out.Body, FormatFor(o.key))
}

// Save encodes the tree and uploads it
func (o *S3Object) Save(ctx context.Context, tree domain.Tree) error {
	format := FormatFor(o.key)

	var buf bytes.Buffer
	if err := Encode(&buf, tree, format); err != nil {
		return err
	}

	contentType := "application/json"
	if format == FormatYAML {
		contentType = "application/yaml"
	}

	_, err := o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(o.bucket),
		Key:           aws.String(o.key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", o.key, err)
	}
	return nil
}
