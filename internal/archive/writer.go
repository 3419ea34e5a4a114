package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Writer persists a rendered note.
type Writer interface {
	Write(ctx context.Context, note Note) error
}

// S3Writer stores each note as one object named after the note title.
type S3Writer struct {
	client *s3.Client
	bucket string
}

func NewS3Writer(client *s3.Client, bucket string) (*S3Writer, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, fmt.Errorf("bucket is empty")
	}

	return &S3Writer{client: client, bucket: bucket}, nil
}

func (w *S3Writer) Write(ctx context.Context, note Note) error {
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(note.FileName()),
		Body:        strings.NewReader(note.Render()),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("put object (key = %s): %w", note.FileName(), err)
	}

	return nil
}
