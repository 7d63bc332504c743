package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticContentSource(t *testing.T) {
	source := NewStaticContentSource(DefaultContent())
	c, err := source.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultContent(), c)
}

func TestFileContentSourceReloads(t *testing.T) {
	path := writeFile(t, "help.yaml", "title: Before\n")
	source := NewFileContentSource(path)

	c, err := source.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Before", c.Title)

	require.NoError(t, os.WriteFile(path, []byte("title: After\n"), 0o600))
	c, err = source.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "After", c.Title)

	require.NoError(t, os.Remove(path))
	_, err = source.Get(context.Background())
	require.Error(t, err)
}

func TestNewContentSource(t *testing.T) {
	t.Run("loads once outside dev mode", func(t *testing.T) {
		path := writeFile(t, "help.yaml", "title: Before\n")
		source, err := NewContentSource(&ServerConfig{ContentFile: path})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("title: After\n"), 0o600))
		c, err := source.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Before", c.Title)
	})

	t.Run("reloads per call in dev mode", func(t *testing.T) {
		path := writeFile(t, "help.yaml", "title: Before\n")
		source, err := NewContentSource(&ServerConfig{ContentFile: path, DevMode: true})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("title: After\n"), 0o600))
		c, err := source.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, "After", c.Title)
	})

	t.Run("bad file fails at startup in both modes", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		_, err := NewContentSource(&ServerConfig{ContentFile: missing})
		require.Error(t, err)
		_, err = NewContentSource(&ServerConfig{ContentFile: missing, DevMode: true})
		require.Error(t, err)
	})
}
