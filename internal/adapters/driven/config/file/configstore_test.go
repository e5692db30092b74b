package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	// Paths under /dev/null cannot be created on Unix systems
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.precision", 12))
	require.NoError(t, store.Set("cache.enabled", false))
	require.NoError(t, store.Set("data.dir", "/var/lib/unitconv"))

	assert.Equal(t, 12, store.GetInt("output.precision"))
	assert.False(t, store.GetBool("cache.enabled"))
	assert.Equal(t, "/var/lib/unitconv", store.GetString("data.dir"))

	// Wrong type or missing key yields the zero value
	assert.Equal(t, "", store.GetString("output.precision"))
	assert.Equal(t, 0, store.GetInt("data.dir"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.precision", 6))
	require.NoError(t, store1.Set("cache.enabled", true))
	require.NoError(t, store1.Set("data.dir", "/tmp/units"))

	// New instance loads from file; TOML integers come back as int64
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 6, store2.GetInt("output.precision"))
	assert.True(t, store2.GetBool("cache.enabled"))
	assert.Equal(t, "/tmp/units", store2.GetString("data.dir"))
	assert.Equal(t, []string{"cache.enabled", "data.dir", "output.precision"}, store2.Keys())
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.precision", 6))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "precision = 6")
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[output]\nprecision = 4\n\n[cache]\nenabled = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 4, store.GetInt("output.precision"))
	_, ok := store.Get("cache.enabled")
	assert.True(t, ok)
	assert.False(t, store.GetBool("cache.enabled"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(""), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("output.precision", n+1)
			_ = store.GetInt("output.precision")
		}(i)
	}
	wg.Wait()

	assert.NotZero(t, store.GetInt("output.precision"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"output": map[string]any{"precision": int64(8)},
		"cache":  map[string]any{"enabled": true},
		"top":    "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"output.precision": int64(8),
		"cache.enabled":    true,
		"top":              "level",
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_TableWinsOverScalar(t *testing.T) {
	nested := nestMap(map[string]any{
		"output":           "scalar",
		"output.precision": 3,
	})

	assert.Equal(t, map[string]any{"output": map[string]any{"precision": 3}}, nested)
}
