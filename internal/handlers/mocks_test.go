package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}
func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}
func (m *MockAuthService) IssueToken(ctx context.Context, identity *domain.Identity) (string, time.Time, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) Logout(ctx context.Context, identity *domain.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) Enabled() bool {
	return m.Called().Bool(0)
}
func (m *MockGoogleAuthService) LoginURL(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockGoogleAuthService) LoginWithCode(ctx context.Context, code string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockGoogleAuthService) LoginWithIDToken(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.GoogleAuthSvcFacade = (*MockGoogleAuthService)(nil)

// --- Mock PersonalService ---
type MockPersonalService struct {
	mock.Mock
}

func (m *MockPersonalService) GetPersonal(ctx context.Context, personalID string) (*domain.Personal, error) {
	args := m.Called(ctx, personalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Personal), args.Error(1)
}
func (m *MockPersonalService) ListPersonal(ctx context.Context, params dto.ListPersonalParams) ([]domain.Personal, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Personal), args.Error(1)
}
func (m *MockPersonalService) CreatePersonal(ctx context.Context, req dto.CreatePersonalRequest, actorID string) (*domain.Personal, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Personal), args.Error(1)
}
func (m *MockPersonalService) UpdatePersonal(ctx context.Context, personalID string, req dto.UpdatePersonalRequest, actorID string) (*domain.Personal, error) {
	args := m.Called(ctx, personalID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Personal), args.Error(1)
}
func (m *MockPersonalService) SetPassword(ctx context.Context, personalID string, req dto.SetPasswordRequest, actorID string) error {
	return m.Called(ctx, personalID, req, actorID).Error(0)
}
func (m *MockPersonalService) DeactivatePersonal(ctx context.Context, personalID string, actorID string) error {
	return m.Called(ctx, personalID, actorID).Error(0)
}

var _ portssvc.PersonalSvcFacade = (*MockPersonalService)(nil)

// --- Mock CajaService ---
type MockCajaService struct {
	mock.Mock
}

func (m *MockCajaService) ListCajas(ctx context.Context) ([]domain.Caja, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Caja), args.Error(1)
}
func (m *MockCajaService) GetCaja(ctx context.Context, cajaID string) (*domain.Caja, error) {
	args := m.Called(ctx, cajaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caja), args.Error(1)
}
func (m *MockCajaService) GetBalance(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error) {
	args := m.Called(ctx, cajaID, desde, hasta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CajaBalance), args.Error(1)
}

var _ portssvc.CajaSvcFacade = (*MockCajaService)(nil)

// --- Mock CotizacionService ---
type MockCotizacionService struct {
	mock.Mock
}

func (m *MockCotizacionService) CreateCotizacion(ctx context.Context, req dto.CreateCotizacionRequest, actorID string) (*domain.CotizacionDolar, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CotizacionDolar), args.Error(1)
}
func (m *MockCotizacionService) GetLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CotizacionDolar), args.Error(1)
}
func (m *MockCotizacionService) ListCotizaciones(ctx context.Context, params dto.ListCotizacionesParams) ([]domain.CotizacionDolar, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CotizacionDolar), args.Error(1)
}
func (m *MockCotizacionService) Convert(ctx context.Context, params dto.ConvertParams) (*dto.ConvertResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertResponse), args.Error(1)
}

var _ portssvc.CotizacionSvcFacade = (*MockCotizacionService)(nil)

// --- Mock ClienteService ---
type MockClienteService struct {
	mock.Mock
}

func (m *MockClienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest, actorID string) (*domain.Cliente, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteService) GetCliente(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}
func (m *MockClienteService) ListClientes(ctx context.Context, params dto.ListClientesParams) ([]domain.Cliente, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cliente), args.Error(1)
}
func (m *MockClienteService) UpdateCliente(ctx context.Context, clienteID string, req dto.UpdateClienteRequest, actorID string) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cliente), args.Error(1)
}

var _ portssvc.ClienteSvcFacade = (*MockClienteService)(nil)

// --- Mock PrepagoService ---
type MockPrepagoService struct {
	mock.Mock
}

func (m *MockPrepagoService) CreatePrepago(ctx context.Context, req dto.CreatePrepagoRequest, actorID string) (*dto.PrepagoResponse, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PrepagoResponse), args.Error(1)
}
func (m *MockPrepagoService) GetPrepago(ctx context.Context, prepagoID string) (*domain.Prepago, error) {
	args := m.Called(ctx, prepagoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prepago), args.Error(1)
}
func (m *MockPrepagoService) ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prepago), args.Error(1)
}
func (m *MockPrepagoService) ListPrepagosDisponibles(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrepagoGuardado), args.Error(1)
}

var _ portssvc.PrepagoSvcFacade = (*MockPrepagoService)(nil)

// --- Mock ComandaService ---
type MockComandaService struct {
	mock.Mock
}

func (m *MockComandaService) GetComanda(ctx context.Context, comandaID string) (*domain.Comanda, error) {
	args := m.Called(ctx, comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}
func (m *MockComandaService) ListComandas(ctx context.Context, params dto.ListComandasParams) ([]domain.Comanda, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comanda), args.Error(1)
}
func (m *MockComandaService) ResumenComisiones(ctx context.Context, params dto.ComisionesParams) (*domain.ComisionResumen, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComisionResumen), args.Error(1)
}
func (m *MockComandaService) CreateComanda(ctx context.Context, req dto.CreateComandaRequest, actorID string) (*domain.Comanda, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}
func (m *MockComandaService) UpdateComanda(ctx context.Context, comandaID string, req dto.UpdateComandaRequest, actorID string) (*domain.Comanda, error) {
	args := m.Called(ctx, comandaID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}
func (m *MockComandaService) DeleteComanda(ctx context.Context, comandaID string, actorID string) error {
	return m.Called(ctx, comandaID, actorID).Error(0)
}

var _ portssvc.ComandaSvcFacade = (*MockComandaService)(nil)

// --- Mock MovimientoService ---
type MockMovimientoService struct {
	mock.Mock
}

func (m *MockMovimientoService) CreateMovimiento(ctx context.Context, req dto.CreateMovimientoRequest, actorID string) (*domain.Movimiento, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movimiento), args.Error(1)
}
func (m *MockMovimientoService) GetMovimiento(ctx context.Context, movimientoID string) (*domain.Movimiento, error) {
	args := m.Called(ctx, movimientoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movimiento), args.Error(1)
}
func (m *MockMovimientoService) ListMovimientos(ctx context.Context, cajaID string, params dto.ListMovimientosParams) (*domain.MovimientoPage, error) {
	args := m.Called(ctx, cajaID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovimientoPage), args.Error(1)
}
func (m *MockMovimientoService) DeleteMovimiento(ctx context.Context, movimientoID string, actorID string) error {
	return m.Called(ctx, movimientoID, actorID).Error(0)
}

var _ portssvc.MovimientoSvcFacade = (*MockMovimientoService)(nil)

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry domain.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockAuditService) ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, entity, entityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)
