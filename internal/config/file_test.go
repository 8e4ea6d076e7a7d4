package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RawConfig
	}{
		{
			name:  "simple pair",
			input: "key = value\n",
			want:  RawConfig{"key": "value"},
		},
		{
			name:  "surrounding whitespace and trailing comment",
			input: "   key   =   5.0   # five seconds\n",
			want:  RawConfig{"key": "5.0"},
		},
		{
			name:  "no spaces around equals",
			input: "key=40",
			want:  RawConfig{"key": "40"},
		},
		{
			name:  "comments and blank lines are skipped",
			input: "# header\n\n   \t\n# key = ignored\nkey = 1\n",
			want:  RawConfig{"key": "1"},
		},
		{
			name:  "value keeps text after a second equals",
			input: "key = a=b\n",
			want:  RawConfig{"key": "a=b"},
		},
		{
			name:  "last duplicate wins",
			input: "key = 1\nkey = 2\n",
			want:  RawConfig{"key": "2"},
		},
		{
			name:  "windows line endings",
			input: "key = 1\r\nother = 2\r\n",
			want:  RawConfig{"key": "1", "other": "2"},
		},
		{
			name:  "empty input",
			input: "",
			want:  RawConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMalformedLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no equals", "distance_mouse_moves 40"},
		{"empty key", " = 40"},
		{"empty value", "distance_mouse_moves =   "},
		{"value only a comment", "distance_mouse_moves = # 40"},
		{"bare equals", "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("time_mouse_spends_moving = 1.0\n" + tt.line + "\n"))
			require.ErrorIs(t, err, ErrMalformedLine)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.line, cfgErr.Line)
			assert.Contains(t, err.Error(), "KEY = VALUE")
		})
	}
}

func TestEnsureFileExists(t *testing.T) {
	t.Run("creates default file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)

		created, err := EnsureFileExists(path)
		require.NoError(t, err)
		assert.True(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultFile, string(data))
	})

	t.Run("leaves existing file alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("custom = 1\n"), 0o644))

		created, err := EnsureFileExists(path)
		require.NoError(t, err)
		assert.False(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "custom = 1\n", string(data))
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", FileName)

		_, err := EnsureFileExists(path)
		assert.Error(t, err)
	})
}
