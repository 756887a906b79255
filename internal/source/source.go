// Package source implements the model sources a check run can fetch its
// root graph from: a JSON model document on disk, or a SQLite object store
// holding one node per row with children referenced by object id.
package source

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("source backend must not be empty")
	ErrBackendUnknown = errors.New("unknown source backend")
	ErrPathEmpty      = errors.New("source path must not be empty")
)

// knownBackends lists the backends Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Config selects and parameterizes a model source.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	Path    string `json:"path" yaml:"path"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	if c.Path == "" {
		return ErrPathEmpty
	}
	return nil
}

// Open returns the configured model source.
func Open(cfg Config) (check.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendJSON:
		return NewJSONSource(cfg.Path), nil
	default:
		return NewSQLiteSource(cfg.Path), nil
	}
}

// Init prepares the configured source location so a later run can fetch
// from it. For SQLite this creates the object store schema; the JSON
// backend needs no preparation.
func Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Backend == BackendSQLite {
		db, err := InitStore(cfg.Path)
		if err != nil {
			return fmt.Errorf("initialize object store: %w", err)
		}
		return db.Close()
	}
	return nil
}
