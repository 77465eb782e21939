package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/core/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovimientoServiceTestSuite struct {
	suite.Suite
	movimientos *MockMovimientoRepository
	cajas       *MockCajaRepository
	service     portssvc.MovimientoSvcFacade
	ctx         context.Context
	actorID     string
	cajaID      string
}

func (s *MovimientoServiceTestSuite) SetupTest() {
	s.movimientos = new(MockMovimientoRepository)
	s.cajas = new(MockCajaRepository)
	s.service = services.NewMovimientoService(s.movimientos, s.cajas, testBase())
	s.ctx = context.Background()
	s.actorID = uuid.NewString()
	s.cajaID = uuid.NewString()
	s.cajas.On("FindCajaByID", s.ctx, s.cajaID).Return(&domain.Caja{CajaID: s.cajaID, Nombre: domain.Caja1, Activo: true}, nil).Maybe()
}

func TestMovimientoServiceSuite(t *testing.T) {
	suite.Run(t, new(MovimientoServiceTestSuite))
}

func boolPtr(b bool) *bool { return &b }

func (s *MovimientoServiceTestSuite) TestCreateMovimiento_Egreso() {
	s.movimientos.On("SaveMovimiento", s.ctx, mock.MatchedBy(func(m domain.Movimiento) bool {
		return !m.EsIngreso && m.MontoARS.Equal(decimal.NewFromInt(5000)) && m.MontoUSD.IsZero() && m.Comentario == "insumos"
	})).Return(nil).Once()

	m, err := s.service.CreateMovimiento(s.ctx, dto.CreateMovimientoRequest{
		CajaID:     s.cajaID,
		MontoARS:   decimal.NewFromInt(5000),
		EsIngreso:  boolPtr(false),
		MetodoPago: "efectivo",
		Comentario: " insumos ",
	}, s.actorID)

	s.Require().NoError(err)
	s.True(m.Fecha.Equal(fixedNow))
	s.movimientos.AssertExpectations(s.T())
}

func (s *MovimientoServiceTestSuite) TestCreateMovimiento_BothAmountsZero() {
	_, err := s.service.CreateMovimiento(s.ctx, dto.CreateMovimientoRequest{
		CajaID:     s.cajaID,
		EsIngreso:  boolPtr(true),
		MetodoPago: "efectivo",
	}, s.actorID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.movimientos.AssertNotCalled(s.T(), "SaveMovimiento", mock.Anything, mock.Anything)
}

func (s *MovimientoServiceTestSuite) TestCreateMovimiento_MissingDirection() {
	_, err := s.service.CreateMovimiento(s.ctx, dto.CreateMovimientoRequest{
		CajaID:     s.cajaID,
		MontoUSD:   decimal.NewFromInt(10),
		MetodoPago: "efectivo",
	}, s.actorID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *MovimientoServiceTestSuite) movimientosAt(n int) []domain.Movimiento {
	out := make([]domain.Movimiento, n)
	for i := range out {
		out[i] = domain.Movimiento{
			MovimientoID: uuid.NewString(),
			CajaID:       s.cajaID,
			Fecha:        fixedNow.Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

func (s *MovimientoServiceTestSuite) TestListMovimientos_FirstPageHasNextToken() {
	rows := s.movimientosAt(3)
	s.movimientos.On("ListMovimientos", s.ctx, mock.MatchedBy(func(f domain.MovimientoFilter) bool {
		return f.CajaID == s.cajaID && f.Limit == 3 && f.AfterFecha == nil
	})).Return(rows, nil).Once()

	page, err := s.service.ListMovimientos(s.ctx, s.cajaID, dto.ListMovimientosParams{Limit: 2})

	s.Require().NoError(err)
	s.Len(page.Movimientos, 2)
	s.Require().NotEmpty(page.NextPageToken)
	cursor, err := pagination.DecodeToken(page.NextPageToken)
	s.Require().NoError(err)
	s.Equal(rows[1].MovimientoID, cursor.ID)
	s.True(rows[1].Fecha.Equal(cursor.Fecha))
}

func (s *MovimientoServiceTestSuite) TestListMovimientos_ContinuesFromToken() {
	last := s.movimientosAt(1)[0]
	token := pagination.EncodeToken(last.Fecha, last.MovimientoID)
	s.movimientos.On("ListMovimientos", s.ctx, mock.MatchedBy(func(f domain.MovimientoFilter) bool {
		return f.AfterFecha != nil && f.AfterFecha.Equal(last.Fecha) && f.AfterID == last.MovimientoID
	})).Return(s.movimientosAt(1), nil).Once()

	page, err := s.service.ListMovimientos(s.ctx, s.cajaID, dto.ListMovimientosParams{Limit: 2, PageToken: token})

	s.Require().NoError(err)
	s.Len(page.Movimientos, 1)
	s.Empty(page.NextPageToken)
	s.movimientos.AssertExpectations(s.T())
}

func (s *MovimientoServiceTestSuite) TestListMovimientos_BadToken() {
	for _, token := range []string{"%%%", pagination.EncodeToken(fixedNow, "not-a-uuid")} {
		_, err := s.service.ListMovimientos(s.ctx, s.cajaID, dto.ListMovimientosParams{PageToken: token})
		s.ErrorIs(err, apperrors.ErrValidation, token)
	}
	s.movimientos.AssertNotCalled(s.T(), "ListMovimientos", mock.Anything, mock.Anything)
}

func (s *MovimientoServiceTestSuite) TestDeleteMovimiento() {
	id := uuid.NewString()
	s.movimientos.On("DeleteMovimiento", s.ctx, id).Return(nil).Once()
	s.Require().NoError(s.service.DeleteMovimiento(s.ctx, id, s.actorID))

	s.movimientos.On("DeleteMovimiento", s.ctx, "gone").Return(apperrors.ErrNotFound).Once()
	s.ErrorIs(s.service.DeleteMovimiento(s.ctx, "gone", s.actorID), apperrors.ErrNotFound)
}
