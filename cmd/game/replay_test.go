package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sharkie/internal/application/replay"
	"github.com/younwookim/sharkie/internal/application/system"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, loader, err := loadConfig("", "level1")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())
	assert.Equal(t, "level1", cfg.Level.Name)
	assert.NotEmpty(t, cfg.SpritePaths())
}

func TestLoadConfig_Directory(t *testing.T) {
	cfg, loader, err := loadConfig("configs", "level1")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())
	assert.Equal(t, 720, cfg.Game.Display.ScreenWidth)

	_, _, err = loadConfig("configs", "missing")
	assert.Error(t, err)
}

// recordSession drives a session like the desktop build does and saves it.
func recordSession(t *testing.T, frames int) string {
	t.Helper()
	rec := replay.NewRecorder(99, "level1", "easy")
	for i := range frames {
		in := system.InputState{Move: entity.Input{Right: i%120 < 90, Up: i%240 < 30}}
		if i%45 == 0 {
			in.FinSlap = true
		}
		rec.RecordFrame(1000.0/60, in)
	}
	path := filepath.Join(t.TempDir(), replay.GenerateFilename())
	require.NoError(t, rec.Save(path))
	return path
}

func TestRunReplay_Deterministic(t *testing.T) {
	cfg, _, err := loadConfig("", "level1")
	require.NoError(t, err)
	path := recordSession(t, 600)

	first, err := runReplay(path, cfg)
	require.NoError(t, err)
	second, err := runReplay(path, cfg)
	require.NoError(t, err)

	assert.Equal(t, 600, first.Frames)
	assert.Equal(t, first, second)
	assert.InDelta(t, 10000.0, first.SimMs, 1)
}

func TestRunReplay_MissingFile(t *testing.T) {
	cfg, _, err := loadConfig("", "level1")
	require.NoError(t, err)

	_, err = runReplay(filepath.Join(t.TempDir(), "nope.msgpack"), cfg)
	assert.ErrorContains(t, err, "failed to open file")
}
