package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupFile_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	bakPath, err := BackupFile(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	assert.Empty(t, bakPath)
}

func TestBackupFile_CopiesContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte("Host old\n"), 0o600))

	bakPath, err := BackupFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, bakPath)
	assert.True(t, strings.HasPrefix(bakPath, path+".bak-"))

	data, err := os.ReadFile(bakPath)
	require.NoError(t, err)
	assert.Equal(t, "Host old\n", string(data))

	// 原文件不受影响
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Host old\n", string(data))
}

func TestBackupFile_DirectoryIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := BackupFile(dir)
	require.Error(t, err)
}
