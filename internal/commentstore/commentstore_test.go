package commentstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/structedit"
)

func comment(id, content string) structedit.Comment {
	return structedit.Comment{
		ID:        id,
		Content:   content,
		Author:    structedit.Author{Name: "ada"},
		CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")

	store, err := Open(path, nil)
	require.NoError(t, err)
	assert.Empty(t, store.Threads())
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}

func TestAppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")

	store, err := Open(path, nil)
	require.NoError(t, err)

	require.NoError(t, store.Append("title", comment("1", "first")))
	require.NoError(t, store.Append("title", comment("2", "second")))
	require.NoError(t, store.Append("plans[0].name", comment("3", "rename?")))

	// Reload from disk and check per-key insertion order survived.
	reloaded, err := Open(path, nil)
	require.NoError(t, err)

	threads := reloaded.Threads()
	require.Len(t, threads, 2)
	require.Len(t, threads["title"], 2)
	assert.Equal(t, "first", threads["title"][0].Content)
	assert.Equal(t, "second", threads["title"][1].Content)
	assert.Equal(t, "rename?", threads["plans[0].name"][0].Content)
}

func TestAppendLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comments.json")

	store, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Append("title", comment("1", "hello")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}

func TestThreadsReturnsCopies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")

	store, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Append("title", comment("1", "original")))

	threads := store.Threads()
	threads["title"][0].Content = "mutated"
	threads["other"] = []structedit.Comment{comment("2", "x")}

	again := store.Threads()
	require.Len(t, again, 1)
	assert.Equal(t, "original", again["title"][0].Content)
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path, nil)
	assert.Error(t, err)
}
