package services

import (
	portsrepo "github.com/SscSPs/comandas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	base := BaseService{Location: cfg.Location()}
	container := &portssvc.ServiceContainer{}

	// Auth first: Google sign-in issues tokens through it.
	container.Auth = NewAuthService(repos.PersonalRepo, repos.RevocationRepo, TokenConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		Expiry: cfg.JWTExpiryDuration,
	}, base)
	container.GoogleAuth = NewGoogleAuthService(GoogleAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
	}, repos.PersonalRepo, container.Auth, base)

	container.Personal = NewPersonalService(repos.PersonalRepo, base)
	container.Caja = NewCajaService(repos.CajaRepo, base)
	container.Cotizacion = NewCotizacionService(repos.CotizacionRepo, base)
	container.Cliente = NewClienteService(repos.ClienteRepo, base)
	container.Prepago = NewPrepagoService(repos.PrepagoRepo, repos.ClienteRepo, repos.CajaRepo, base)
	container.Comanda = NewComandaService(ComandaServiceDeps{
		Comandas:     repos.ComandaRepo,
		Clientes:     repos.ClienteRepo,
		Personal:     repos.PersonalRepo,
		Cajas:        repos.CajaRepo,
		Cotizaciones: repos.CotizacionRepo,
		Prepagos:     repos.PrepagoRepo,
	}, base)
	container.Movimiento = NewMovimientoService(repos.MovimientoRepo, repos.CajaRepo, base)
	container.Audit = NewAuditService(repos.AuditLogRepo, base)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
	_ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)
	_ portssvc.PersonalSvcFacade   = (*personalService)(nil)
	_ portssvc.CajaSvcFacade       = (*cajaService)(nil)
	_ portssvc.CotizacionSvcFacade = (*cotizacionService)(nil)
	_ portssvc.ClienteSvcFacade    = (*clienteService)(nil)
	_ portssvc.PrepagoSvcFacade    = (*prepagoService)(nil)
	_ portssvc.ComandaSvcFacade    = (*comandaService)(nil)
	_ portssvc.MovimientoSvcFacade = (*movimientoService)(nil)
	_ portssvc.AuditSvcFacade      = (*auditService)(nil)
)
