package pgsql

import (
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres backed repository. The token revocation store is
// not database backed and is left for the caller to set.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonalRepo:   newPgxPersonalRepository(dbPool),
		CajaRepo:       newPgxCajaRepository(dbPool),
		CotizacionRepo: newPgxCotizacionRepository(dbPool),
		ClienteRepo:    newPgxClienteRepository(dbPool),
		PrepagoRepo:    newPgxPrepagoRepository(dbPool),
		ComandaRepo:    newPgxComandaRepository(dbPool),
		MovimientoRepo: newPgxMovimientoRepository(dbPool),
		AuditLogRepo:   newPgxAuditLogRepository(dbPool),
	}
}
