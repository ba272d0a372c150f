package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/deskmate/pkg/layout"
)

func write(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.NoError(t, err)

	assert.Equal(t, "", config.DataDir)
	assert.Equal(t, layout.DefaultConfig, config.Classroom())
	assert.True(t, config.Optimize)
	assert.True(t, config.Color)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := write(t, "students: 30\nrows: 5\noptimize: false\ndata-dir: /tmp/class\n")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, config.Students)
	assert.Equal(t, 5, config.Rows)
	assert.False(t, config.Optimize)
	assert.True(t, config.Color)
	assert.Equal(t, "/tmp/class", config.DataDir)
}

func TestLoadEnvironment(t *testing.T) {
	path := write(t, "students: 30\n")
	t.Setenv("DESKMATE_STUDENTS", "12")
	t.Setenv("DESKMATE_DATA_DIR", "/srv/deskmate")
	t.Setenv("DESKMATE_COLOR", "false")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, config.Students)
	assert.Equal(t, "/srv/deskmate", config.DataDir)
	assert.False(t, config.Color)
}

func TestLoadInvalid(t *testing.T) {
	path := write(t, "students: 2\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, layout.ErrOutOfBounds)

	path = write(t, "rows: [1, 2\n")
	_, err = Load(path)
	assert.Error(t, err)
}
