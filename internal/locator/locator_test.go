package locator

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsqlite/acronyms/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLocator returns a Locator that reads env from the given map and
// pretends the executable lives in exeDir.
func newTestLocator(t *testing.T, env map[string]string, exeDir string) *Locator {
	t.Helper()

	l, err := New(Config{
		Logger:   log.NewLogger(io.Discard, true),
		EnvKey:   DefaultEnvKey,
		FileName: DefaultFileName,
		Getenv: func(key string) string {
			return env[key]
		},
		Executable: func() (string, error) {
			if exeDir == "" {
				return "", errors.New("no executable")
			}
			// The binary itself does not exist so EvalSymlinks keeps the path.
			return filepath.Join(exeDir, "acronyms-test-binary"), nil
		},
	})
	require.NoError(t, err)
	return l
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNew(t *testing.T) {
	logger := log.NewLogger(io.Discard, false)

	t.Run("MissingLogger", func(t *testing.T) {
		_, err := New(Config{EnvKey: DefaultEnvKey, FileName: DefaultFileName})
		assert.EqualError(t, err, "logger is required")
	})

	t.Run("MissingEnvKey", func(t *testing.T) {
		_, err := New(Config{Logger: logger, FileName: DefaultFileName})
		assert.Error(t, err)
	})

	t.Run("MissingFileName", func(t *testing.T) {
		_, err := New(Config{Logger: logger, EnvKey: DefaultEnvKey})
		assert.Error(t, err)
	})

	t.Run("Defaults", func(t *testing.T) {
		l, err := New(Config{Logger: logger, EnvKey: DefaultEnvKey, FileName: DefaultFileName})
		require.NoError(t, err)
		assert.NotNil(t, l.Getenv)
		assert.NotNil(t, l.Executable)
	})
}

func TestResolve(t *testing.T) {
	t.Run("EnvTakesPriority", func(t *testing.T) {
		envDir := t.TempDir()
		exeDir := t.TempDir()
		envPath := filepath.Join(envDir, "shared.db")
		writeFile(t, envPath, "env database")
		writeFile(t, filepath.Join(exeDir, DefaultFileName), "local")

		l := newTestLocator(t, map[string]string{DefaultEnvKey: envPath}, exeDir)
		loc, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, envPath, loc.Path)
		assert.Equal(t, "shared.db", loc.Name)
		assert.EqualValues(t, len("env database"), loc.Size)
		assert.Equal(t, SourceEnv, loc.Source)
		assert.False(t, loc.ModTime.IsZero())
	})

	t.Run("FallbackWhenEnvUnset", func(t *testing.T) {
		exeDir := t.TempDir()
		want := filepath.Join(exeDir, DefaultFileName)
		writeFile(t, want, "local")

		l := newTestLocator(t, map[string]string{}, exeDir)
		loc, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, want, loc.Path)
		assert.Equal(t, SourceExecutable, loc.Source)
	})

	t.Run("FallbackWhenEnvEmpty", func(t *testing.T) {
		exeDir := t.TempDir()
		want := filepath.Join(exeDir, DefaultFileName)
		writeFile(t, want, "local")

		l := newTestLocator(t, map[string]string{DefaultEnvKey: ""}, exeDir)
		loc, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, want, loc.Path)
	})

	t.Run("FallbackWhenEnvIsDirectory", func(t *testing.T) {
		exeDir := t.TempDir()
		want := filepath.Join(exeDir, DefaultFileName)
		writeFile(t, want, "local")

		l := newTestLocator(t, map[string]string{DefaultEnvKey: t.TempDir()}, exeDir)
		loc, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, want, loc.Path)
		assert.Equal(t, SourceExecutable, loc.Source)
	})

	t.Run("FallbackWhenEnvMissingFile", func(t *testing.T) {
		exeDir := t.TempDir()
		want := filepath.Join(exeDir, DefaultFileName)
		writeFile(t, want, "local")

		missing := filepath.Join(t.TempDir(), "missing.db")
		l := newTestLocator(t, map[string]string{DefaultEnvKey: missing}, exeDir)
		loc, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, want, loc.Path)
	})

	t.Run("NotFound", func(t *testing.T) {
		exeDir := t.TempDir()
		missing := filepath.Join(t.TempDir(), "missing.db")

		l := newTestLocator(t, map[string]string{DefaultEnvKey: missing}, exeDir)
		_, err := l.Resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{missing, filepath.Join(exeDir, DefaultFileName)}, notFound.Checked)
		assert.Contains(t, err.Error(), DefaultEnvKey)
	})

	t.Run("NotFoundWhenFallbackIsDirectory", func(t *testing.T) {
		exeDir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(exeDir, DefaultFileName), 0755))

		l := newTestLocator(t, map[string]string{}, exeDir)
		_, err := l.Resolve()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NotFoundWithoutExecutable", func(t *testing.T) {
		l := newTestLocator(t, map[string]string{}, "")
		_, err := l.Resolve()
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
