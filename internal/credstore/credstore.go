// package credstore reads and writes per-user credential records.
//
// A record holds the authentication headers captured from a user's browser
// session with the upstream music service. Records are created and updated by
// operator tooling; the function path only ever reads them.
package credstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reverbify/musicfn/internal/shared"
)

// ErrNoRecord indicates the user has no stored credentials.
//
// Distinct from infrastructure failures so callers can prompt the user to
// re-authenticate instead of retrying.
var ErrNoRecord = errors.New("no credential record for user")

// Record is the credential record stored for one user.
type Record struct {
	Headers   map[string]string `json:"headers"`
	Cookie    string            `json:"cookie,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Store defines credential record persistence keyed by user identity.
type Store interface {
	// Get retrieves the record for a user. Returns [ErrNoRecord] when the
	// user has no stored credentials.
	Get(ctx context.Context, userID string) (*Record, error)

	// Put stores or replaces the record for a user.
	Put(ctx context.Context, userID string, record *Record) error

	// Close releases the underlying connection.
	Close() error
}

// NewStore constructs a [Store] from configuration, selecting the backend by driver name.
func NewStore(cfg shared.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", "sqlite":
		db, err := shared.NewDatabase(cfg.Path)
		if err != nil {
			return nil, err
		}
		if cfg.MaxOpenConns > 0 {
			shared.ConfigureDatabase(db, cfg.MaxOpenConns, cfg.MaxIdleConns)
		}
		store := NewSQLiteStore(db)
		if err := store.Init(context.Background()); err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown store driver %q", shared.ErrInvalidConfig, cfg.Driver)
	}
}
