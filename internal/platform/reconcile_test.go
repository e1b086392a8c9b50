package platform

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorsmith/platup/internal/meta"
)

// recorder is an OpLog stub that records every disposition in order.
type recorder struct {
	ops []string
}

func (r *recorder) Keep(path string)   { r.ops = append(r.ops, "keep "+filepath.Base(path)) }
func (r *recorder) Remove(path string) { r.ops = append(r.ops, "remove "+filepath.Base(path)) }
func (r *recorder) Rename(oldPath, newPath string) {
	r.ops = append(r.ops, "rename "+filepath.Base(oldPath)+" "+filepath.Base(newPath))
}

// makeTree creates a platforms root with one subdirectory per name, each
// holding a marker file so recursive removal is exercised.
func makeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "usr", "lib"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "usr", "lib", "libc.so"), []byte("elf"), 0o644))
	}
	return root
}

func listNames(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func testMetadata() meta.Platforms {
	return meta.Platforms{
		Min:     21,
		Max:     33,
		Aliases: map[string]int{"Q": 29, "Tiramisu": 33},
	}
}

func TestReconcile(t *testing.T) {
	root := makeTree(t,
		"android-16", "android-21", "android-30", "android-34",
		"android-Q", "android-Tiramisu", "android-Weird")

	rec := &recorder{}
	stats, err := Reconcile(root, testMetadata(), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"android-21", "android-29", "android-30", "android-33"},
		listNames(t, root))
	assert.Equal(t, Stats{Kept: 2, Renamed: 2, Removed: 3}, stats)

	// Renamed directories keep their contents.
	assert.FileExists(t, filepath.Join(root, "android-29", "usr", "lib", "libc.so"))
}

func TestReconcile_DeterministicOrder(t *testing.T) {
	root := makeTree(t,
		"android-34", "android-16", "android-Weird", "android-21", "android-Q")

	rec := &recorder{}
	_, err := Reconcile(root, testMetadata(), rec)
	require.NoError(t, err)

	// Lexicographic by raw name regardless of creation order.
	assert.Equal(t, []string{
		"remove android-16",
		"keep android-21",
		"remove android-34",
		"rename android-Q android-29",
		"remove android-Weird",
	}, rec.ops)
}

func TestReconcile_RangeBoundsInclusive(t *testing.T) {
	root := makeTree(t, "android-20", "android-21", "android-33", "android-34")

	stats, err := Reconcile(root, testMetadata(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"android-21", "android-33"}, listNames(t, root))
	assert.Equal(t, Stats{Kept: 2, Removed: 2}, stats)
}

func TestReconcile_UnknownCodenameRemoved(t *testing.T) {
	root := makeTree(t, "android-UpsideDownCake", "android-22")

	_, err := Reconcile(root, testMetadata(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"android-22"}, listNames(t, root))
}

func TestReconcile_Idempotent(t *testing.T) {
	root := makeTree(t,
		"android-16", "android-21", "android-30", "android-34",
		"android-Q", "android-Tiramisu", "android-Weird")

	_, err := Reconcile(root, testMetadata(), nil)
	require.NoError(t, err)
	after := listNames(t, root)

	rec := &recorder{}
	stats, err := Reconcile(root, testMetadata(), rec)
	require.NoError(t, err)

	assert.Equal(t, after, listNames(t, root))
	assert.Equal(t, Stats{Kept: len(after)}, stats)
	for _, op := range rec.ops {
		assert.Contains(t, op, "keep ", "second pass must not mutate")
	}
}

func TestReconcile_AliasCollision(t *testing.T) {
	root := makeTree(t, "android-29", "android-Q")

	rec := &recorder{}
	_, err := Reconcile(root, testMetadata(), rec)

	var collision *AliasCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "Q", collision.Codename)
	assert.Equal(t, filepath.Join(root, "android-Q"), collision.From)
	assert.Equal(t, filepath.Join(root, "android-29"), collision.To)

	// Neither of the colliding pair was deleted or renamed.
	assert.Equal(t, []string{"android-29", "android-Q"}, listNames(t, root))
}

func TestReconcile_CollisionStopsFurtherProcessing(t *testing.T) {
	// "android-Q" collides; "android-Weird" sorts after it and must be
	// left alone. "android-16" sorts before and is already gone, an
	// accepted limitation of immediate mutation.
	root := makeTree(t, "android-16", "android-29", "android-Q", "android-Weird")

	_, err := Reconcile(root, testMetadata(), nil)
	require.Error(t, err)

	assert.Equal(t, []string{"android-29", "android-Q", "android-Weird"}, listNames(t, root))
}

func TestReconcile_AliasFreedBySameRun(t *testing.T) {
	// android-34 is out of range and sorts before android-Z, so its
	// removal frees the name before the rename is attempted.
	root := makeTree(t, "android-34", "android-Zen")
	platforms := meta.Platforms{Min: 21, Max: 33, Aliases: map[string]int{"Zen": 34}}

	_, err := Reconcile(root, platforms, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"android-34"}, listNames(t, root))
}

func TestReconcile_IgnoresNonPlatformEntries(t *testing.T) {
	root := makeTree(t, "android-25")
	require.NoError(t, os.WriteFile(filepath.Join(root, "NOTICE"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sysroot"), 0o755))

	_, err := Reconcile(root, testMetadata(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"NOTICE", "android-25", "sysroot"}, listNames(t, root))
}

func TestReconcile_MissingRoot(t *testing.T) {
	_, err := Reconcile(filepath.Join(t.TempDir(), "absent"), testMetadata(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReconcile_EmptyRoot(t *testing.T) {
	stats, err := Reconcile(t.TempDir(), testMetadata(), nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
