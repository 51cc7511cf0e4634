package model

// StorageBackend names a task store implementation.
type StorageBackend string

const (
	StorageBackendFile   StorageBackend = "file"
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendMemory StorageBackend = "memory"
)

// Valid returns true if the backend is a known one.
func (s StorageBackend) Valid() bool {
	switch s {
	case StorageBackendFile, StorageBackendSQLite, StorageBackendMemory:
		return true
	}
	return false
}

// Settings are the user settings, all fields are optional and empty values
// mean "use the default".
type Settings struct {
	Storage StorageBackend
	DataDir string
	Key     string
	Filter  FilterMode
}
