package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PersonalRepo   PersonalRepositoryFacade
	CajaRepo       CajaRepositoryFacade
	CotizacionRepo CotizacionRepositoryFacade
	ClienteRepo    ClienteRepositoryFacade
	PrepagoRepo    PrepagoRepositoryFacade
	ComandaRepo    ComandaRepositoryFacade
	MovimientoRepo MovimientoRepositoryFacade
	AuditLogRepo   AuditLogRepositoryFacade
	RevocationRepo TokenRevocationStore
}
