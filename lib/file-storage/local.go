package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type localImpl struct {
	dir string
}

func NewLocalInstance(dir string) Provider {
	return &localImpl{dir: dir}
}

func (i localImpl) Save(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "ошибка создания папки для файлов")
	}
	path := StoredName(fileName)
	file, err := os.Create(filepath.Join(i.dir, path))
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания файла")
	}
	defer file.Close()
	if _, err = io.Copy(file, reader); err != nil {
		return "", errors.Wrap(err, "ошибка записи файла")
	}
	return path, nil
}

func (i localImpl) Get(ctx context.Context, path string) ([]byte, error) {
	fullPath, err := i.fullPath(path)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, errors.Wrap(err, "ошибка чтения файла")
	}
	return body, nil
}

func (i localImpl) Delete(ctx context.Context, path string) error {
	fullPath, err := i.fullPath(path)
	if err != nil {
		return err
	}
	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "ошибка удаления файла")
	}
	return nil
}

// путь не должен выходить за пределы папки хранилища
func (i localImpl) fullPath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", errors.Errorf("некорректный путь файла: %s", path)
	}
	fullPath := filepath.Join(i.dir, path)
	rel, err := filepath.Rel(i.dir, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("некорректный путь файла: %s", path)
	}
	return fullPath, nil
}
