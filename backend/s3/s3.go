// Package s3 implements a ghtoken.StateBackend using AWS S3.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/telia-oss/ghtoken"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// NewClient returns a new client for S3API.
func NewClient(sess *session.Session) S3API {
	return s3.New(sess)
}

// New returns a new ghtoken.StateBackend which stores state in the bucket.
func New(client S3API, bucket string) ghtoken.StateBackend {
	return &backend{
		client: client,
		bucket: bucket,
	}
}

type backend struct {
	client S3API
	bucket string
}

// Load implements ghtoken.StateBackend.
func (b *backend) Load(_ context.Context, key string) (*ghtoken.State, error) {
	state := ghtoken.NewState()
	obj, err := b.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		e, ok := err.(awserr.Error)
		if ok && e.Code() == s3.ErrCodeNoSuchKey {
			return state, nil
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer obj.Body.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, obj.Body); err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	if err := json.Unmarshal(buf.Bytes(), state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, nil
}

// Save implements ghtoken.StateBackend.
func (b *backend) Save(_ context.Context, key string, state *ghtoken.State) error {
	o, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = b.client.PutObject(&s3.PutObjectInput{
		Body:   aws.ReadSeekCloser(bytes.NewReader(o)),
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	return err
}

// S3API wraps the interface for the API and provides a mocked implementation.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . S3API
type S3API interface {
	GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
	PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
}
