package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonalRepository ---
type MockPersonalRepository struct {
	mock.Mock
}

func (m *MockPersonalRepository) FindPersonalByID(ctx context.Context, personalID string) (*domain.Personal, error) {
	args := m.Called(ctx, personalID)
	var p *domain.Personal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Personal)
	}
	return p, args.Error(1)
}

func (m *MockPersonalRepository) FindActivePersonalByID(ctx context.Context, personalID string) (*domain.Personal, error) {
	args := m.Called(ctx, personalID)
	var p *domain.Personal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Personal)
	}
	return p, args.Error(1)
}

func (m *MockPersonalRepository) FindActivePersonalByEmail(ctx context.Context, email string) (*domain.Personal, error) {
	args := m.Called(ctx, email)
	var p *domain.Personal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Personal)
	}
	return p, args.Error(1)
}

func (m *MockPersonalRepository) ListPersonal(ctx context.Context, filter domain.PersonalFilter) ([]domain.Personal, error) {
	args := m.Called(ctx, filter)
	var list []domain.Personal
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Personal)
	}
	return list, args.Error(1)
}

func (m *MockPersonalRepository) SavePersonal(ctx context.Context, p domain.Personal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPersonalRepository) UpdatePersonal(ctx context.Context, p domain.Personal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPersonalRepository) UpdatePasswordHash(ctx context.Context, personalID, hash string, at time.Time, by string) error {
	return m.Called(ctx, personalID, hash, at, by).Error(0)
}

func (m *MockPersonalRepository) DeactivatePersonal(ctx context.Context, personalID string, at time.Time, by string) error {
	return m.Called(ctx, personalID, at, by).Error(0)
}

// --- Mock CajaRepository ---
type MockCajaRepository struct {
	mock.Mock
}

func (m *MockCajaRepository) FindCajaByID(ctx context.Context, cajaID string) (*domain.Caja, error) {
	args := m.Called(ctx, cajaID)
	var c *domain.Caja
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Caja)
	}
	return c, args.Error(1)
}

func (m *MockCajaRepository) ListCajas(ctx context.Context) ([]domain.Caja, error) {
	args := m.Called(ctx)
	var list []domain.Caja
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Caja)
	}
	return list, args.Error(1)
}

func (m *MockCajaRepository) SumMovimientos(ctx context.Context, cajaID string, desde, hasta *time.Time) (*domain.CajaBalance, error) {
	args := m.Called(ctx, cajaID, desde, hasta)
	var b *domain.CajaBalance
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.CajaBalance)
	}
	return b, args.Error(1)
}

// --- Mock CotizacionRepository ---
type MockCotizacionRepository struct {
	mock.Mock
}

func (m *MockCotizacionRepository) FindLatestCotizacion(ctx context.Context) (*domain.CotizacionDolar, error) {
	args := m.Called(ctx)
	var c *domain.CotizacionDolar
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.CotizacionDolar)
	}
	return c, args.Error(1)
}

func (m *MockCotizacionRepository) ListCotizaciones(ctx context.Context, limit, offset int) ([]domain.CotizacionDolar, error) {
	args := m.Called(ctx, limit, offset)
	var list []domain.CotizacionDolar
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.CotizacionDolar)
	}
	return list, args.Error(1)
}

func (m *MockCotizacionRepository) SaveCotizacion(ctx context.Context, c domain.CotizacionDolar) error {
	return m.Called(ctx, c).Error(0)
}

// --- Mock ClienteRepository ---
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) SaveCliente(ctx context.Context, c domain.Cliente) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClienteRepository) FindClienteByID(ctx context.Context, clienteID string) (*domain.Cliente, error) {
	args := m.Called(ctx, clienteID)
	var c *domain.Cliente
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Cliente)
	}
	return c, args.Error(1)
}

func (m *MockClienteRepository) ListClientes(ctx context.Context, filter domain.ClienteFilter) ([]domain.Cliente, error) {
	args := m.Called(ctx, filter)
	var list []domain.Cliente
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Cliente)
	}
	return list, args.Error(1)
}

func (m *MockClienteRepository) UpdateCliente(ctx context.Context, c domain.Cliente) error {
	return m.Called(ctx, c).Error(0)
}

// --- Mock PrepagoRepository ---
type MockPrepagoRepository struct {
	mock.Mock
}

func (m *MockPrepagoRepository) FindPrepagoByID(ctx context.Context, prepagoID string) (*domain.Prepago, error) {
	args := m.Called(ctx, prepagoID)
	var p *domain.Prepago
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Prepago)
	}
	return p, args.Error(1)
}

func (m *MockPrepagoRepository) ListPrepagosByCliente(ctx context.Context, clienteID string) ([]domain.Prepago, error) {
	args := m.Called(ctx, clienteID)
	var list []domain.Prepago
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Prepago)
	}
	return list, args.Error(1)
}

func (m *MockPrepagoRepository) FindPrepagoGuardadoByID(ctx context.Context, id string) (*domain.PrepagoGuardado, error) {
	args := m.Called(ctx, id)
	var g *domain.PrepagoGuardado
	if args.Get(0) != nil {
		g = args.Get(0).(*domain.PrepagoGuardado)
	}
	return g, args.Error(1)
}

func (m *MockPrepagoRepository) ListUnusedPrepagosGuardados(ctx context.Context, clienteID string) ([]domain.PrepagoGuardado, error) {
	args := m.Called(ctx, clienteID)
	var list []domain.PrepagoGuardado
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.PrepagoGuardado)
	}
	return list, args.Error(1)
}

func (m *MockPrepagoRepository) SavePrepago(ctx context.Context, p domain.Prepago, guardado *domain.PrepagoGuardado) error {
	return m.Called(ctx, p, guardado).Error(0)
}

// --- Mock ComandaRepository ---
type MockComandaRepository struct {
	mock.Mock
}

func (m *MockComandaRepository) FindComandaByID(ctx context.Context, comandaID string) (*domain.Comanda, error) {
	args := m.Called(ctx, comandaID)
	var c *domain.Comanda
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Comanda)
	}
	return c, args.Error(1)
}

func (m *MockComandaRepository) ListComandas(ctx context.Context, filter domain.ComandaFilter) ([]domain.Comanda, error) {
	args := m.Called(ctx, filter)
	var list []domain.Comanda
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Comanda)
	}
	return list, args.Error(1)
}

func (m *MockComandaRepository) NextNumero(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComandaRepository) SaveComanda(ctx context.Context, c domain.Comanda) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockComandaRepository) UpdateComanda(ctx context.Context, c domain.Comanda) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockComandaRepository) MarkComandaDeleted(ctx context.Context, comandaID string, deletedAt time.Time, deletedBy string) error {
	return m.Called(ctx, comandaID, deletedAt, deletedBy).Error(0)
}

// --- Mock MovimientoRepository ---
type MockMovimientoRepository struct {
	mock.Mock
}

func (m *MockMovimientoRepository) SaveMovimiento(ctx context.Context, mov domain.Movimiento) error {
	return m.Called(ctx, mov).Error(0)
}

func (m *MockMovimientoRepository) FindMovimientoByID(ctx context.Context, movimientoID string) (*domain.Movimiento, error) {
	args := m.Called(ctx, movimientoID)
	var mov *domain.Movimiento
	if args.Get(0) != nil {
		mov = args.Get(0).(*domain.Movimiento)
	}
	return mov, args.Error(1)
}

func (m *MockMovimientoRepository) ListMovimientos(ctx context.Context, filter domain.MovimientoFilter) ([]domain.Movimiento, error) {
	args := m.Called(ctx, filter)
	var list []domain.Movimiento
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Movimiento)
	}
	return list, args.Error(1)
}

func (m *MockMovimientoRepository) DeleteMovimiento(ctx context.Context, movimientoID string) error {
	return m.Called(ctx, movimientoID).Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, entity, entityID string, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, entity, entityID, limit)
	var list []domain.AuditLog
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.AuditLog)
	}
	return list, args.Error(1)
}
