// Package file stores each record as a JSON document inside a directory.
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"coffissimo/internal/domain/repository"
	"coffissimo/internal/errors"
)

const (
	recordExt = ".json"
	dirPerm   = 0o755
	filePerm  = 0o600
)

type stateRepository struct {
	dir string
}

// NewStateRepository is the constructor for the file-backed state repository.
// The directory is created on the first save.
func NewStateRepository(dir string) repository.StateRepository {
	return &stateRepository{
		dir: dir,
	}
}

func (repo *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(repo.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "failed to read record %s", key)
	}

	return payload, nil
}

// Save writes to a temporary file and renames it over the record, so readers never see a partial write.
func (repo *stateRepository) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(repo.dir, dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create storage directory %s", repo.dir)
	}

	tmp, err := os.CreateTemp(repo.dir, sanitizeKey(key)+"-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary record")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return errors.Wrapf(err, "failed to write record %s", key)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrapf(err, "failed to close record %s", key)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrapf(err, "failed to set permissions on record %s", key)
	}
	if err := os.Rename(tmpName, repo.pathFor(key)); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrapf(err, "failed to replace record %s", key)
	}

	return nil
}

func (repo *stateRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(repo.pathFor(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "failed to delete record %s", key)
	}

	return nil
}

func (repo *stateRepository) pathFor(key string) string {
	return filepath.Join(repo.dir, sanitizeKey(key)+recordExt)
}

// sanitizeKey keeps keys from escaping the storage directory.
func sanitizeKey(key string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return "_"
	}

	return cleaned
}
