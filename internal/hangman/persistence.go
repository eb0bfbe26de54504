package hangman

// Persistence is the optional save/load capability a frontend may offer.
// The game never calls it itself; loops invoke it on a save request or a
// load choice. No storage format is defined here.
type Persistence interface {
	Save(s Snapshot) error
	Load() (Snapshot, error)
}

// NoPersistence is the default Persistence. Both operations report
// ErrPersistenceUnavailable.
type NoPersistence struct{}

// Save always fails with ErrPersistenceUnavailable.
func (NoPersistence) Save(Snapshot) error {
	return ErrPersistenceUnavailable
}

// Load always fails with ErrPersistenceUnavailable.
func (NoPersistence) Load() (Snapshot, error) {
	return Snapshot{}, ErrPersistenceUnavailable
}

var _ Persistence = NoPersistence{}
