package store

import "github.com/MKhiriev/go-cash-card/internal/logger"

// Storages bundles the repositories built on a single database.
type Storages struct {
	CashCardRepository CashCardRepository
	Pinger             Pinger
}

// NewStorages builds all repositories on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CashCardRepository: NewCashCardRepository(db, log),
		Pinger:             db,
	}
}
