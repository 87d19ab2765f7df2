// Package store persists taskpad state as a small key-value contract.
// Two backends exist: a JSON file per key (default) and a single-table
// SQLite database. Values round-trip through JSON in both.
package store

// Storage keys. The task snapshot and the theme preference are persisted
// independently so a theme change never rewrites the task list.
const (
	KeyTasks = "tasks"
	KeyTheme = "theme"
)

// Store is the persistence contract. Save durably writes a serialized
// value; Load reads it back, reporting found=false when the key has never
// been written. Serialization or IO faults surface as errors and are
// treated as fatal by callers at startup.
type Store interface {
	Save(key string, value any) error
	Load(key string, dest any) (found bool, err error)
	Close() error
}
