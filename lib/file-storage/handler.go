package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"komreq-backend/config"
	"komreq-backend/lib/utils/helpers"
	s3client "komreq-backend/s3"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Provider хранилище файлов заявок и отчетов, path - относительный путь файла
type Provider interface {
	Save(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (path string, err error)
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

var Instance Provider

func NewHandler() {
	switch config.Conf.Storage.Type {
	case StorageS3:
		if s3client.Client == nil {
			log.Error("S3 клиент не инициализирован, файлы будут сохраняться локально")
			break
		}
		err := s3client.MakeBucket(context.Background(), s3client.Client, config.Conf.S3.BucketName)
		if err != nil {
			log.WithError(err).Error("ошибка создания бакета")
		}
		Instance = NewS3Instance(s3client.Client, config.Conf.S3.BucketName)
		log.WithField("bucket", config.Conf.S3.BucketName).Info("хранилище файлов: s3")
		return
	}
	Instance = NewLocalInstance(config.Conf.Storage.LocalDir)
	log.WithField("dir", config.Conf.Storage.LocalDir).Info("хранилище файлов: локальная папка")
}

// StoredName имя файла в хранилище: {uuid}_{исходное имя}
func StoredName(fileName string) string {
	return fmt.Sprintf("%s_%s", uuid.NewString(), helpers.SafeFileName(fileName))
}

var ErrFileNotFound = errors.New("файл не найден")
