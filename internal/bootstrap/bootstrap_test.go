package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrim/quotesbook/internal/core/domain"
)

func homeAt(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestResolve_Paths(t *testing.T) {
	home := t.TempDir()

	paths, err := Resolve(Options{HomeDir: homeAt(home), WorkDir: t.TempDir()})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".quotesbook"), paths.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".quotesbook", "quotes.db"), paths.StorePath)
	assert.Equal(t, filepath.Join(home, ".quotesbook", "config.toml"), paths.ConfigFile)
	assert.Contains(t, paths.String(), paths.StorePath)
}

func TestResolve_CreatesPrivateDir(t *testing.T) {
	home := t.TempDir()

	paths, err := Resolve(Options{HomeDir: homeAt(home), WorkDir: t.TempDir()})
	require.NoError(t, err)

	info, err := os.Stat(paths.ConfigDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestResolve_ExistingDirIsKept(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".quotesbook")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := Resolve(Options{HomeDir: homeAt(home), WorkDir: t.TempDir()})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestResolve_DirCreationFailureIgnored(t *testing.T) {
	home := filepath.Join(t.TempDir(), "does", "not", "exist")

	paths, err := Resolve(Options{HomeDir: homeAt(home), WorkDir: t.TempDir()})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".quotesbook", "quotes.db"), paths.StorePath)
}

func TestResolve_HomeDirError(t *testing.T) {
	_, err := Resolve(Options{HomeDir: func() (string, error) {
		return "", errors.New("$HOME is not defined")
	}})

	require.Error(t, err)
	assert.Equal(t, domain.KindUserData, domain.KindOf(err))
}

func TestResolve_AdoptsSample(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	sample := filepath.Join(work, SampleFileName)
	require.NoError(t, os.WriteFile(sample, []byte("sample"), 0o600))

	paths, err := Resolve(Options{HomeDir: homeAt(home), WorkDir: work})
	require.NoError(t, err)

	data, err := os.ReadFile(paths.StorePath)
	require.NoError(t, err)
	assert.Equal(t, "sample", string(data))
	_, err = os.Stat(sample)
	assert.True(t, os.IsNotExist(err))
}

func TestAdoptSample_StoreExists(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, SampleFileName)
	store := filepath.Join(dir, StoreFileName)
	require.NoError(t, os.WriteFile(sample, []byte("sample"), 0o600))
	require.NoError(t, os.WriteFile(store, []byte("mine"), 0o600))

	moved := AdoptSample(sample, store)

	assert.False(t, moved)
	data, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
	_, err = os.Stat(sample)
	assert.NoError(t, err, "sample must be left alone")
}

func TestAdoptSample_NoSample(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, StoreFileName)

	assert.False(t, AdoptSample(filepath.Join(dir, SampleFileName), store))
	_, err := os.Stat(store)
	assert.True(t, os.IsNotExist(err))
}
