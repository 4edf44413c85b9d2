package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "public")
	s := NewFileStorage(base)

	require.NoError(t, s.Save("US_flag_250.png", strings.NewReader("png bytes")))

	data, err := os.ReadFile(filepath.Join(base, "US_flag_250.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	base := t.TempDir()
	s := NewFileStorage(base)

	require.NoError(t, s.Save("NO_flag_250.png", strings.NewReader("first")))
	require.NoError(t, s.Save("NO_flag_250.png", strings.NewReader("second")))

	data, err := os.ReadFile(s.FullPath("NO_flag_250.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestSaveFailureLeavesNoTempFiles(t *testing.T) {
	base := t.TempDir()
	s := NewFileStorage(base)

	require.NoError(t, s.Save("SE_flag_250.png", strings.NewReader("original")))
	require.Error(t, s.Save("SE_flag_250.png", failingReader{}))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SE_flag_250.png", entries[0].Name())

	data, err := os.ReadFile(s.FullPath("SE_flag_250.png"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestSaveConcurrentWritersNeverTear(t *testing.T) {
	base := t.TempDir()
	s := NewFileStorage(base)

	payloads := [][]byte{
		bytes.Repeat([]byte("a"), 64*1024),
		bytes.Repeat([]byte("b"), 64*1024),
		bytes.Repeat([]byte("c"), 64*1024),
	}

	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func(p []byte) {
			defer wg.Done()
			assert.NoError(t, s.Save("DK_flag_250.png", bytes.NewReader(p)))
		}(p)
	}
	wg.Wait()

	data, err := os.ReadFile(s.FullPath("DK_flag_250.png"))
	require.NoError(t, err)
	require.Len(t, data, 64*1024)

	matched := false
	for _, p := range payloads {
		if bytes.Equal(p, data) {
			matched = true
		}
	}
	assert.True(t, matched, "file content must equal exactly one writer's payload")
}

func TestFullPath(t *testing.T) {
	s := NewFileStorage("public")
	assert.Equal(t, filepath.Join("public", "US_flag_250.png"), s.FullPath("US_flag_250.png"))
}
