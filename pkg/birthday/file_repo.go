package birthday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileRepo keeps every record in a single JSON array file.
//
// Each mutation reads the whole file, applies the change and replaces the file
// through a temp file and rename, so readers never see a partial write. There
// is no lock: two writers racing on stale data lose one of the changes. The
// deployment is expected to have a single writer.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) (*FileRepo, error) {
	r := &FileRepo{path: path}
	if err := r.ensureFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) Path() string {
	return r.path
}

func (r *FileRepo) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	_, err := os.Stat(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return r.write([]*Birthday{})
	}
	return err
}

func (r *FileRepo) read() ([]*Birthday, error) {
	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	list := make([]*Birthday, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}
	return list, nil
}

func (r *FileRepo) write(list []*Birthday) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode birthdays: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepo) GetAll(ctx context.Context) ([]*Birthday, error) {
	return r.read()
}

func (r *FileRepo) GetByID(ctx context.Context, id int) (*Birthday, error) {
	list, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *FileRepo) Create(ctx context.Context, in Input) (*Birthday, error) {
	list, err := r.read()
	if err != nil {
		return nil, err
	}

	b := in.Build(nextID(list))
	list = append(list, b)

	if err := r.write(list); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *FileRepo) Update(ctx context.Context, id int, patch Patch) (*Birthday, error) {
	list, err := r.read()
	if err != nil {
		return nil, err
	}

	for _, b := range list {
		if b.ID != id {
			continue
		}
		patch.Apply(b)
		if err := r.write(list); err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, ErrNotFound
}

func (r *FileRepo) Delete(ctx context.Context, id int) error {
	list, err := r.read()
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, b := range list {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.write(kept)
}
