package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Client struct {
	client *s3.Client
}

func NewClient(cfg aws.Config, optFns ...func(*s3.Options)) *Client {
	return &Client{
		client: s3.NewFromConfig(cfg, optFns...),
	}
}

func (c *Client) PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	return err
}
