package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("lexique", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.String("sheet", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("config", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, used, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, []string{"NOM", "ADJ"}, cfg.Classes)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, _, err := Load("", newFlags(t, "--output", "out.sqlite", "--sheet", "Lexique", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "out.sqlite", cfg.Output)
	assert.Equal(t, "Lexique", cfg.Sheet)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, "output: from-file.sqlite\nsheet: Feuil1\nclasses: [NOM]\n")

	cfg, used, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, used)
	assert.Equal(t, "from-file.sqlite", cfg.Output, "unchanged flags must not override file values")
	assert.Equal(t, "Feuil1", cfg.Sheet)
	assert.Equal(t, []string{"NOM"}, cfg.Classes)
}

func TestLoadFlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: from-file.sqlite\n")

	cfg, used, err := Load(path, newFlags(t, "--output", "from-flag.sqlite"))
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "from-flag.sqlite", cfg.Output)
}

func TestLoadExplicitMissingConfigFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), newFlags(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoadMalformedConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "output: [unclosed\n")

	_, _, err := Load(path, newFlags(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Output: "out.sqlite", Classes: []string{"NOM", "ADJ"}}, false},
		{"missing output", Config{Classes: []string{"NOM"}}, true},
		{"blank output", Config{Output: "  ", Classes: []string{"NOM"}}, true},
		{"no classes", Config{Output: "out.sqlite"}, true},
		{"blank class", Config{Output: "out.sqlite", Classes: []string{"NOM", ""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalid))
				return
			}
			require.NoError(t, err)
		})
	}
}
