package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stegamoji/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		tomlContent string
		wantCarrier string
		wantScheme  domain.Scheme
		wantErr     bool
	}{
		{
			name: "full config",
			tomlContent: `
default_carrier = "🎁"
default_scheme = "binary"
`,
			wantCarrier: "🎁",
			wantScheme:  domain.SchemeBinary,
		},
		{
			name:        "empty file keeps defaults",
			tomlContent: "",
			wantCarrier: DefaultCarrier,
			wantScheme:  DefaultScheme,
		},
		{
			name:        "carrier only",
			tomlContent: `default_carrier = "🦊"`,
			wantCarrier: "🦊",
			wantScheme:  DefaultScheme,
		},
		{
			name:        "auto is not an encoding scheme",
			tomlContent: `default_scheme = "auto"`,
			wantErr:     true,
		},
		{
			name:        "unknown scheme",
			tomlContent: `default_scheme = "rot13"`,
			wantErr:     true,
		},
		{
			name:        "malformed toml",
			tomlContent: `default_carrier = `,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.tomlContent))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCarrier, cfg.DefaultCarrier)
			assert.Equal(t, tt.wantScheme, cfg.Scheme())
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCarrier, cfg.DefaultCarrier)
	assert.Equal(t, DefaultScheme, cfg.Scheme())
}
