package config

import (
	"time"

	"github.com/MKhiriev/go-cash-card/models"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultDriver         = "sqlite3"
	defaultSQLiteDSN      = "file:cashcard?mode=memory&cache=shared"
	defaultPageSize       = 20
	defaultMaxPageSize    = 2000
)

// Defaults returns the configuration used when no other source sets a
// field. The two principals mirror the demo accounts: one card owner and
// one principal without the owner role.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			RequiredRole: models.RoleCardOwner,
			Principals: []string{
				"sarah1:abc123:" + models.RoleCardOwner,
				"hank-owns-no-cards:qrs456:" + models.RoleNonOwner,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDriver,
				DSN:    defaultSQLiteDSN,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Pagination: Pagination{
			DefaultSize: defaultPageSize,
			MaxSize:     defaultMaxPageSize,
		},
	}
}
