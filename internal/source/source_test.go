package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "json backend", cfg: Config{Backend: BackendJSON, Path: "model.json"}},
		{name: "sqlite backend", cfg: Config{Backend: BackendSQLite, Path: "model.db"}},
		{
			name:    "empty backend",
			cfg:     Config{Path: "model.json"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "csv", Path: "model.csv"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "empty path",
			cfg:     Config{Backend: BackendJSON},
			wantErr: ErrPathEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenDispatch(t *testing.T) {
	src, err := Open(Config{Backend: BackendJSON, Path: "model.json"})
	require.NoError(t, err)
	assert.IsType(t, &JSONSource{}, src)

	src, err = Open(Config{Backend: BackendSQLite, Path: "model.db"})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, src)

	_, err = Open(Config{Backend: "csv", Path: "model.csv"})
	assert.ErrorIs(t, err, ErrBackendUnknown)
}

func TestInitValidatesConfig(t *testing.T) {
	assert.ErrorIs(t, Init(Config{Backend: BackendJSON}), ErrPathEmpty)
}
