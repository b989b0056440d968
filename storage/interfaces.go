package storage

// SeenStore is the interface any fingerprint persistence backend must satisfy.
// Load must never fail hard: a backend that cannot read its state returns an
// empty slice so startup is never blocked on persistence.
type SeenStore interface {
	Load() []string
	Save(fingerprints []string) error
	Close() error
}
