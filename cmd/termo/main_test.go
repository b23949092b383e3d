package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termo/internal/game"
	"github.com/vovakirdan/termo/internal/platform/tui"
	"github.com/vovakirdan/termo/internal/storage"
)

func resetPuzzleFlags(t *testing.T) {
	t.Helper()
	flagConfig, flagRules, flagWordsPath = "", "", ""
	t.Cleanup(func() { flagConfig, flagRules, flagWordsPath = "", "", "" })
}

func TestEnvOr(t *testing.T) {
	t.Setenv("TERMO_TEST_VALUE", "")
	assert.Equal(t, "def", envOr("TERMO_TEST_VALUE", "def"))

	t.Setenv("TERMO_TEST_VALUE", "set")
	assert.Equal(t, "set", envOr("TERMO_TEST_VALUE", "def"))
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "nonsense", portOf("nonsense"))
}

func TestLoadPuzzleAppliesPreset(t *testing.T) {
	resetPuzzleFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagRules = "fair"
	cfg, dict, err := loadPuzzle()
	require.NoError(t, err)
	assert.Equal(t, "two-pass", cfg.Rules.Scoring)
	assert.True(t, dict.Contains("jogar"))
}

func TestLoadPuzzleUnknownPreset(t *testing.T) {
	resetPuzzleFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagRules = "hardcore"
	_, _, err := loadPuzzle()
	assert.ErrorContains(t, err, "unknown rules preset")
}

func TestLoadPuzzleCustomWords(t *testing.T) {
	resetPuzzleFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# mine\nbolas\n"), 0o644))

	flagWordsPath = path
	_, dict, err := loadPuzzle()
	require.NoError(t, err)
	assert.True(t, dict.Contains("bolas"))
	assert.True(t, dict.Contains("comigo"), "level targets are always accepted")
	assert.False(t, dict.Contains("tempo"))

	flagWordsPath = filepath.Join(t.TempDir(), "missing.txt")
	_, _, err = loadPuzzle()
	assert.Error(t, err)
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"play", "serve", "levels", "stats"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("rules"))
	assert.NotNil(t, playCmd.Flags().Lookup("level"))
}

func TestPlayRecordedFinishesRunOnFailure(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	boom := errors.New("no terminal")
	var recorder game.Recorder
	err = playRecorded(store, "ana", tui.Options{}, func(opts tui.Options) error {
		recorder = opts.Recorder
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, recorder, "play should get the run as recorder")

	runs, err := store.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ana", runs[0].Player)
	assert.False(t, runs[0].FinishedAt.IsZero(), "failed play must still finish the run")
}

func TestPlayRecordedFinishesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	err = playRecorded(store, "bia", tui.Options{}, func(tui.Options) error { return nil })
	require.NoError(t, err)

	runs, err := store.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].FinishedAt.IsZero())
	assert.False(t, runs[0].Completed)
}
