package upload_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/upload"
)

func spool(t *testing.T, name, content string) upload.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spool-"+name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return upload.File{Name: name, Type: "text/plain", TmpPath: path, Size: int64(len(content))}
}

func TestFileIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		file  upload.File
		empty bool
	}{
		{"zero descriptor", upload.File{}, true},
		{"no file code", upload.File{Name: "a.txt", Error: upload.NoFile}, true},
		{"partial upload is not empty", upload.File{Error: upload.Partial}, false},
		{"too large is not empty", upload.File{Name: "big.bin", Error: upload.IniSize}, false},
		{"sent file", upload.File{Name: "a.txt", TmpPath: "/tmp/x", Size: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.empty, tt.file.IsEmpty())
		})
	}
}

func TestFileMoveTo(t *testing.T) {
	t.Parallel()

	t.Run("moves to client base name", func(t *testing.T) {
		t.Parallel()
		f := spool(t, "report.txt", "hello")
		oldPath := f.TmpPath
		dir := t.TempDir()

		got, err := f.MoveTo(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.txt"), got)
		assert.Equal(t, got, f.TmpPath)

		data, err := os.ReadFile(got)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		_, err = os.Stat(oldPath)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("strips directories from client name", func(t *testing.T) {
		t.Parallel()
		f := spool(t, "x.txt", "x")
		f.Name = `C:\Users\me\..\evil.txt`
		dir := t.TempDir()

		got, err := f.MoveTo(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "evil.txt"), got)
	})

	t.Run("rejects unsent file", func(t *testing.T) {
		t.Parallel()
		f := upload.File{Error: upload.Partial}
		_, err := f.MoveTo(t.TempDir())
		assert.ErrorIs(t, err, upload.ErrNoFile)
	})

	t.Run("rejects empty dir", func(t *testing.T) {
		t.Parallel()
		f := spool(t, "a.txt", "a")
		_, err := f.MoveTo("")
		assert.ErrorIs(t, err, upload.ErrEmptyDir)
	})

	t.Run("missing target dir fails", func(t *testing.T) {
		t.Parallel()
		f := spool(t, "a.txt", "a")
		_, err := f.MoveTo(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, upload.ErrMoveFailed)
	})
}

func TestFileOpenRemove(t *testing.T) {
	t.Parallel()

	f := spool(t, "a.txt", "content")
	r, err := f.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "content", string(data))
	assert.Equal(t, ".txt", f.Ext())

	require.NoError(t, f.Remove())
	require.NoError(t, f.Remove(), "second remove is a no-op")

	_, err = upload.File{}.Open()
	assert.ErrorIs(t, err, upload.ErrNoFile)
}
