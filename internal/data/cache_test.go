package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTableCache(t *testing.T) {
	path := writeDataset(t, ";",
		buildRow(";", map[int]string{1: "Lisboa", 8: "3900"}),
	)

	t.Run("serves repeated gets from one load", func(t *testing.T) {
		c := NewTableCache()
		first, err := c.Get(path)
		require.NoError(t, err)
		second, err := c.Get(path)
		require.NoError(t, err)
		// Same backing slice: no reload happened.
		require.Equal(t, &first[0], &second[0])
	})

	t.Run("reloads when the file changes", func(t *testing.T) {
		c := NewTableCache()
		_, err := c.Get(path)
		require.NoError(t, err)

		content := buildRow(";", map[int]string{1: "Porto", 8: "2800"})
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		// Push the mtime forward explicitly; some filesystems have coarse
		// timestamp resolution.
		future := time.Now().Add(2 * time.Second)
		require.NoError(t, os.Chtimes(path, future, future))

		records, err := c.Get(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Porto", records[0].Locality)
	})

	t.Run("nil cache loads fresh", func(t *testing.T) {
		var c *TableCache
		records, err := c.Get(path)
		require.NoError(t, err)
		require.NotEmpty(t, records)
	})

	t.Run("missing file", func(t *testing.T) {
		c := NewTableCache()
		_, err := c.Get(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		c := NewTableCache()
		_, err := c.Get(path)
		require.NoError(t, err)
		c.Clear()
		require.Empty(t, c.store)
	})
}
