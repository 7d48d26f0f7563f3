package releasemanager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eivindveg/go-releasemanager/internal"
)

// ModelVersionFile is the name of the marker file in the application home directory
const ModelVersionFile = "model_version"

// ModelState is the state of the local data compared to the model version expected by the code
type ModelState int

const (
	// ModelCurrent means the local data is up to date: nothing was done
	ModelCurrent ModelState = iota
	// ModelFirstRun means no marker was found: it's been written with the expected version
	ModelFirstRun
	// ModelStale means the local data was written by an older model
	ModelStale
	// ModelUnavailable means the marker could not be read or written
	ModelUnavailable
)

func (s ModelState) String() string {
	switch s {
	case ModelFirstRun:
		return "first run"
	case ModelStale:
		return "stale"
	case ModelUnavailable:
		return "unavailable"
	default:
		return "current"
	}
}

// Migration upgrades the local data from the stored model version to the expected one.
// It returns the model version to record in the marker.
type Migration interface {
	Migrate(stored, expected int64) (int64, error)
}

// MigrationFunc is a function implementing Migration
type MigrationFunc func(stored, expected int64) (int64, error)

func (f MigrationFunc) Migrate(stored, expected int64) (int64, error) {
	return f(stored, expected)
}

// NoMigration is the default Migration. Data migration is not implemented yet:
// it keeps the stored version, so a stale marker never advances and is reported stale on every run.
var NoMigration Migration = MigrationFunc(func(stored, expected int64) (int64, error) {
	return stored, nil
})

// ModelGuardConfig is an object to pass to NewModelGuard
type ModelGuardConfig struct {
	// Home is the application home directory holding the marker file
	Home string
	// Expected is the model version of the running code
	Expected int64
	// Migration is run when the marker is older than Expected (default to NoMigration)
	Migration Migration
}

// ModelCheck is the result of a model guard run.
// Stored is the version found in the marker (when it could be read), and Err is only set with ModelUnavailable.
type ModelCheck struct {
	State    ModelState
	Stored   int64
	Expected int64
	Err      error
}

// ModelGuard reconciles the model version marker with the version expected by the code
type ModelGuard struct {
	path      string
	expected  int64
	migration Migration
}

// NewModelGuard creates a guard on the marker file inside the home directory.
// The home directory is created if needed.
func NewModelGuard(config ModelGuardConfig) (*ModelGuard, error) {
	if config.Home == "" {
		return nil, errors.New("application home directory must be set")
	}
	home, err := internal.ResolveHome(config.Home)
	if err != nil {
		return nil, fmt.Errorf("cannot use application home %q: %w", config.Home, err)
	}
	migration := config.Migration
	if migration == nil {
		migration = NoMigration
	}
	return &ModelGuard{
		path:      filepath.Join(home, ModelVersionFile),
		expected:  config.Expected,
		migration: migration,
	}, nil
}

// Path returns the location of the marker file
func (g *ModelGuard) Path() string {
	return g.path
}

// Run reads the marker and updates it when needed. Failures are logged and
// reported in the result, they are never returned as errors.
// An unreadable marker is left untouched.
func (g *ModelGuard) Run() ModelCheck {
	result := ModelCheck{Expected: g.expected}

	stored, err := ReadModelVersion(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Print("First run: assigning model version")
		if err := WriteModelVersion(g.path, g.expected); err != nil {
			log.Printf("Could not write model version: %s", err)
			result.State, result.Err = ModelUnavailable, err
			return result
		}
		result.State, result.Stored = ModelFirstRun, g.expected
		return result
	}
	if err != nil {
		log.Printf("Could not read model version: %s", err)
		result.State, result.Err = ModelUnavailable, err
		return result
	}

	result.Stored = stored
	if stored >= g.expected {
		result.State = ModelCurrent
		return result
	}

	log.Printf("Model version %d is older than %d", stored, g.expected)
	result.State = ModelStale
	migrated, err := g.migration.Migrate(stored, g.expected)
	if err != nil {
		log.Printf("Could not migrate model version %d: %s", stored, err)
		result.State, result.Err = ModelUnavailable, err
		return result
	}
	if err := WriteModelVersion(g.path, migrated); err != nil {
		log.Printf("Could not write model version: %s", err)
		result.State, result.Err = ModelUnavailable, err
		return result
	}
	result.Stored = migrated
	if migrated >= g.expected {
		result.State = ModelCurrent
	}
	return result
}

// ReadModelVersion reads a marker file. A missing file gives an error matching fs.ErrNotExist,
// other failures match ErrMarkerRead.
func ReadModelVersion(path string) (int64, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMarkerRead, err)
	}
	version, err := strconv.ParseInt(strings.TrimSpace(string(content)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMarkerRead, err)
	}
	return version, nil
}

// WriteModelVersion writes the decimal version into the marker file, replacing its content.
func WriteModelVersion(path string, version int64) error {
	err := os.WriteFile(path, []byte(strconv.FormatInt(version, 10)), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarkerWrite, err)
	}
	return nil
}
