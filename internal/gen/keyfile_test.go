package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStager(t *testing.T) *KeyStager {
	t.Helper()
	return &KeyStager{
		KeepDir: filepath.Join(t.TempDir(), "sshkey"),
		OutDir:  filepath.Join(t.TempDir(), "out"),
	}
}

func TestKeyStager_RelativePathResolvesAgainstKeepDir(t *testing.T) {
	t.Parallel()

	stager := newTestStager(t)
	require.NoError(t, os.MkdirAll(stager.KeepDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stager.KeepDir, "id_rsa"), []byte("key"), 0o600))

	staged, err := stager.Resolve("id_rsa")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stager.OutDir, "id_rsa"), staged)

	data, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "key", string(data))
}

func TestKeyStager_AbsolutePathCopied(t *testing.T) {
	t.Parallel()

	stager := newTestStager(t)
	src := filepath.Join(t.TempDir(), "mykey")
	require.NoError(t, os.WriteFile(src, []byte("key"), 0o600))

	staged, err := stager.Resolve(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stager.OutDir, "mykey"), staged)
	assert.FileExists(t, staged)
}

func TestKeyStager_AlreadyInOutDirNotCopied(t *testing.T) {
	t.Parallel()

	stager := newTestStager(t)
	require.NoError(t, os.MkdirAll(stager.OutDir, 0o755))
	src := filepath.Join(stager.OutDir, "id_rsa")
	require.NoError(t, os.WriteFile(src, []byte("key"), 0o600))

	staged, err := stager.Resolve(src)
	require.NoError(t, err)
	assert.Equal(t, src, staged)
}

func TestKeyStager_TildeExpandsToUserHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows 上 UserHomeDir 用这个

	stager := newTestStager(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "keys"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "keys", "id_rsa"), []byte("key"), 0o600))

	staged, err := stager.Resolve("~/keys/id_rsa")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stager.OutDir, "id_rsa"), staged)

	data, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "key", string(data))
}

func TestKeyStager_TildeUserIsNotExpanded(t *testing.T) {
	t.Parallel()

	// ~user 不展开, 按相对路径挂到 KeepDir 下
	stager := newTestStager(t)
	require.NoError(t, os.MkdirAll(filepath.Join(stager.KeepDir, "~bob"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stager.KeepDir, "~bob", "id_rsa"), []byte("key"), 0o600))

	staged, err := stager.Resolve("~bob/id_rsa")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stager.OutDir, "id_rsa"), staged)
}

func TestKeyStager_MissingKeyFileIsAnError(t *testing.T) {
	t.Parallel()

	stager := newTestStager(t)
	_, err := stager.Resolve("no-such-key")
	require.Error(t, err)
}
