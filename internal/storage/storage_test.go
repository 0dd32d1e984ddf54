package storage_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"birthdayreminder/internal/config"
	"birthdayreminder/internal/storage"
	"birthdayreminder/pkg/birthday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "birthdays.json")
	cfg := &config.Config{Storage: config.StorageFile, DataFile: path}

	repo, closeFn, err := storage.Open(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &birthday.FileRepo{}, repo)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestOpen_Unknown(t *testing.T) {
	repo, closeFn, err := storage.Open(context.Background(), &config.Config{Storage: "redis"}, slog.Default())

	assert.Error(t, err)
	assert.Nil(t, repo)
	assert.Nil(t, closeFn)
}
