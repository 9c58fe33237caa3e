package filestorage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type s3Impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewS3Instance(s3client *minio.Client, bucketName string) Provider {
	return &s3Impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func (i s3Impl) Save(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	path := StoredName(fileName)
	_, err := i.s3client.PutObject(ctx, i.bucketName, path, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return path, nil
}

func (i s3Impl) Get(ctx context.Context, path string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrFileNotFound
		}
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}

func (i s3Impl) Delete(ctx context.Context, path string) error {
	err := i.s3client.RemoveObject(ctx, i.bucketName, path, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}
