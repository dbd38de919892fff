package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// faultyFs injects errors into selected afero operations and counts how
// often the filesystem was consulted.
type faultyFs struct {
	afero.Fs
	openErrs map[string]error
	statErrs map[string]error
	calls    int
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	f.calls++
	if err, ok := f.openErrs[name]; ok {
		return nil, err
	}

	return f.Fs.Open(name)
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	f.calls++
	if err, ok := f.statErrs[name]; ok {
		return nil, err
	}

	return f.Fs.Stat(name)
}

func newFaultyFs() *faultyFs {
	return &faultyFs{
		Fs:       afero.NewMemMapFs(),
		openErrs: map[string]error{},
		statErrs: map[string]error{},
	}
}

func writeFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0o644))
}

func mkdir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0o755))
}
