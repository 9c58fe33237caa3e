package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

const location = "us-east-1"

func MakeBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
