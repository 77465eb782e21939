package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/audit"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/handlers"
	"github.com/SscSPs/comandas_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine

	auth        *MockAuthService
	google      *MockGoogleAuthService
	personal    *MockPersonalService
	cajas       *MockCajaService
	cotizacion  *MockCotizacionService
	clientes    *MockClienteService
	prepagos    *MockPrepagoService
	comandas    *MockComandaService
	movimientos *MockMovimientoService
	auditSvc    *MockAuditService

	cfg       *config.Config
	container *portssvc.ServiceContainer
	adminID   string
	userID    string
	recorded  []domain.AuditLog
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.recorded = nil
	s.adminID = uuid.NewString()
	s.userID = uuid.NewString()

	s.auth = new(MockAuthService)
	s.google = new(MockGoogleAuthService)
	s.personal = new(MockPersonalService)
	s.cajas = new(MockCajaService)
	s.cotizacion = new(MockCotizacionService)
	s.clientes = new(MockClienteService)
	s.prepagos = new(MockPrepagoService)
	s.comandas = new(MockComandaService)
	s.movimientos = new(MockMovimientoService)
	s.auditSvc = new(MockAuditService)

	s.auth.On("ValidateToken", mock.Anything, adminToken).
		Return(&domain.Identity{PersonalID: s.adminID, Rol: domain.RolAdmin, TokenID: "jti-admin"}, nil).Maybe()
	s.auth.On("ValidateToken", mock.Anything, userToken).
		Return(&domain.Identity{PersonalID: s.userID, Rol: domain.RolUser, TokenID: "jti-user"}, nil).Maybe()
	s.auth.On("ValidateToken", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Maybe()
	s.auditSvc.On("Record", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		s.recorded = append(s.recorded, args.Get(1).(domain.AuditLog))
	}).Return(nil).Maybe()

	s.cfg = &config.Config{
		IsProduction:       true,
		LoginRateLimit:     "100-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost/callback",
	}
	s.container = &portssvc.ServiceContainer{
		Auth:       s.auth,
		GoogleAuth: s.google,
		Personal:   s.personal,
		Caja:       s.cajas,
		Cotizacion: s.cotizacion,
		Cliente:    s.clientes,
		Prepago:    s.prepagos,
		Comanda:    s.comandas,
		Movimiento: s.movimientos,
		Audit:      s.auditSvc,
	}
	s.Require().NoError(handlers.RegisterRoutes(s.router, s.cfg, s.container))
}

func (s *HandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestLogin_RecordsAuditWithoutPassword() {
	s.auth.On("Login", mock.Anything, "a@x.com", "secretpass").Return(&dto.LoginResponse{
		Token:     "signed",
		ExpiresAt: time.Now().Add(time.Hour),
		Personal:  domain.Identity{PersonalID: s.adminID, Email: "a@x.com", Rol: domain.RolAdmin},
	}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@x.com", "password": "secretpass"})

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("signed", resp.Token)
	s.NotContains(w.Body.String(), "secretpass")

	s.Require().Len(s.recorded, 1)
	entry := s.recorded[0]
	s.Equal("LOGIN", entry.Action)
	s.Equal(s.adminID, entry.ActorID)
	s.Equal(s.adminID, entry.EntityID)
	s.Equal(audit.RedactedValue, entry.Payload["password"])
	s.Equal("a@x.com", entry.Payload["email"])
}

func (s *HandlerTestSuite) TestLogin_InvalidCredentials() {
	s.auth.On("Login", mock.Anything, "a@x.com", "wrongpass").Return(nil, apperrors.ErrUnauthorized).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrongpass"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid credentials", s.decodeError(w))
	s.Empty(s.recorded)
}

func (s *HandlerTestSuite) TestLogin_MalformedBody() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.auth.AssertNotCalled(s.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestProtectedRoutes_RequireToken() {
	cases := []struct {
		name  string
		token string
	}{
		{name: "missing", token: ""},
		{name: "invalid", token: "garbage"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(http.MethodGet, "/api/v1/comandas", tc.token, nil)
			s.Equal(http.StatusUnauthorized, w.Code)
		})
	}
	s.comandas.AssertNotCalled(s.T(), "ListComandas", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestMe() {
	w := s.do(http.MethodGet, "/api/v1/auth/me", userToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var identity domain.Identity
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &identity))
	s.Equal(s.userID, identity.PersonalID)
	s.Equal(domain.RolUser, identity.Rol)
}

func (s *HandlerTestSuite) TestLogout_RevokesCurrentToken() {
	s.auth.On("Logout", mock.Anything, mock.MatchedBy(func(i *domain.Identity) bool {
		return i.TokenID == "jti-user"
	})).Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/logout", userToken, nil)

	s.Equal(http.StatusNoContent, w.Code)
	s.Require().Len(s.recorded, 1)
	s.Equal("LOGOUT", s.recorded[0].Action)
	s.Equal(s.userID, s.recorded[0].ActorID)
	s.auth.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestGoogleCallback_RejectsStateMismatch() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=one", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "two"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.google.AssertNotCalled(s.T(), "LoginWithCode", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestGoogleCallback_MatchingState() {
	s.google.On("LoginWithCode", mock.Anything, "abc").Return(&dto.LoginResponse{
		Token:    "signed",
		Personal: domain.Identity{PersonalID: s.userID},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=same", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "same"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Require().Len(s.recorded, 1)
	s.Equal(s.userID, s.recorded[0].ActorID)
}

func (s *HandlerTestSuite) TestGoogleRoutes_AbsentWithoutSecret() {
	cfg := *s.cfg
	cfg.GoogleClientSecret = ""
	router := gin.New()
	s.Require().NoError(handlers.RegisterRoutes(router, &cfg, s.container))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=same", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "same"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
	s.google.AssertNotCalled(s.T(), "LoginWithCode", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) validComandaBody(clienteID, prepagoID string) map[string]any {
	return map[string]any{
		"clienteID":    clienteID,
		"personalID":   uuid.NewString(),
		"cajaID":       uuid.NewString(),
		"moneda":       "pesos",
		"total":        "150000",
		"metodoPago":   "efectivo",
		"descripcion":  "brazo completo",
		"prepagoARSID": prepagoID,
	}
}

func (s *HandlerTestSuite) TestCreateComanda_RecordsRelations() {
	clienteID := uuid.NewString()
	prepagoID := uuid.NewString()
	body := s.validComandaBody(clienteID, prepagoID)

	created := &domain.Comanda{
		ComandaID:    uuid.NewString(),
		Numero:       7,
		ClienteID:    clienteID,
		PersonalID:   body["personalID"].(string),
		CajaID:       body["cajaID"].(string),
		Moneda:       domain.MonedaPesos,
		Total:        decimal.NewFromInt(150000),
		Saldo:        decimal.NewFromInt(100000),
		Estado:       domain.ComandaPendiente,
		PrepagoARSID: &prepagoID,
	}
	s.comandas.On("CreateComanda", mock.Anything, mock.MatchedBy(func(req dto.CreateComandaRequest) bool {
		return req.ClienteID == clienteID && req.Total.Equal(decimal.NewFromInt(150000)) &&
			req.PrepagoARSID != nil && *req.PrepagoARSID == prepagoID
	}), s.userID).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/comandas", userToken, body)

	s.Require().Equal(http.StatusCreated, w.Code)
	var resp domain.Comanda
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(created.ComandaID, resp.ComandaID)
	s.True(resp.Saldo.Equal(decimal.NewFromInt(100000)))

	s.Require().Len(s.recorded, 1)
	entry := s.recorded[0]
	s.Equal("CREATE", entry.Action)
	s.Equal("comanda", entry.Entity)
	s.Equal(created.ComandaID, entry.EntityID)
	s.Equal(s.userID, entry.ActorID)
	s.Contains(entry.Related, clienteID)
	s.Contains(entry.Related, prepagoID)
	s.comandas.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateComanda_RejectsInvalidBody() {
	cases := []struct {
		name  string
		patch map[string]any
	}{
		{name: "unknown currency", patch: map[string]any{"moneda": "euros"}},
		{name: "unknown payment method", patch: map[string]any{"metodoPago": "bitcoin"}},
		{name: "negative total", patch: map[string]any{"total": "-1"}},
		{name: "cliente not a uuid", patch: map[string]any{"clienteID": "abc"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := s.validComandaBody(uuid.NewString(), uuid.NewString())
			for k, v := range tc.patch {
				body[k] = v
			}
			w := s.do(http.MethodPost, "/api/v1/comandas", userToken, body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.comandas.AssertNotCalled(s.T(), "CreateComanda", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.recorded)
}

func (s *HandlerTestSuite) TestCreateComanda_ConflictIsNotAudited() {
	s.comandas.On("CreateComanda", mock.Anything, mock.Anything, s.userID).
		Return(nil, apperrors.NewConflictError("prepago already used")).Once()

	w := s.do(http.MethodPost, "/api/v1/comandas", userToken, s.validComandaBody(uuid.NewString(), uuid.NewString()))

	s.Equal(http.StatusConflict, w.Code)
	s.Empty(s.recorded)
}

func (s *HandlerTestSuite) TestUpdateComanda_CapturesBefore() {
	id := uuid.NewString()
	before := &domain.Comanda{ComandaID: id, ClienteID: uuid.NewString(), Estado: domain.ComandaPendiente}
	after := *before
	after.Estado = domain.ComandaPagada
	s.comandas.On("GetComanda", mock.Anything, id).Return(before, nil).Once()
	s.comandas.On("UpdateComanda", mock.Anything, id, mock.MatchedBy(func(req dto.UpdateComandaRequest) bool {
		return req.Estado != nil && *req.Estado == "pagada"
	}), s.userID).Return(&after, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/comandas/"+id, userToken, map[string]string{"estado": "pagada"})

	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Len(s.recorded, 1)
	entry := s.recorded[0]
	s.Equal("UPDATE", entry.Action)
	s.Equal(id, entry.EntityID)
	s.Equal("pendiente", entry.Before["estado"])
	s.Contains(entry.Related, before.ClienteID)
}

func (s *HandlerTestSuite) TestUpdateComanda_RejectsUnknownEstado() {
	id := uuid.NewString()
	s.comandas.On("GetComanda", mock.Anything, id).Return(&domain.Comanda{ComandaID: id}, nil).Maybe()

	w := s.do(http.MethodPut, "/api/v1/comandas/"+id, userToken, map[string]string{"estado": "cerrada"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.comandas.AssertNotCalled(s.T(), "UpdateComanda", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestDeleteComanda_AdminOnly() {
	id := uuid.NewString()

	w := s.do(http.MethodDelete, "/api/v1/comandas/"+id, userToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.comandas.AssertNotCalled(s.T(), "DeleteComanda", mock.Anything, mock.Anything, mock.Anything)

	s.comandas.On("GetComanda", mock.Anything, id).Return(&domain.Comanda{ComandaID: id}, nil).Once()
	s.comandas.On("DeleteComanda", mock.Anything, id, s.adminID).Return(nil).Once()

	w = s.do(http.MethodDelete, "/api/v1/comandas/"+id, adminToken, nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Require().Len(s.recorded, 1)
	s.Equal("DELETE", s.recorded[0].Action)
	s.Equal(id, s.recorded[0].Before["comandaID"])
}

func (s *HandlerTestSuite) TestListComandas_BindsFilters() {
	cajaID := uuid.NewString()
	s.comandas.On("ListComandas", mock.Anything, mock.MatchedBy(func(p dto.ListComandasParams) bool {
		return p.CajaID == cajaID && p.Estado == "pendiente" && p.Limit == 10 &&
			p.Desde != nil && p.Desde.Equal(time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC))
	})).Return([]domain.Comanda{{ComandaID: uuid.NewString()}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/comandas?cajaID="+cajaID+"&estado=pendiente&limit=10&desde=2024-03-01T00:00:00-03:00", userToken, nil)

	s.Equal(http.StatusOK, w.Code)
	s.comandas.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestResumenComisiones_SelfOrManager() {
	other := uuid.NewString()
	w := s.do(http.MethodGet, "/api/v1/comandas/comisiones?personalID="+other, userToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.comandas.AssertNotCalled(s.T(), "ResumenComisiones", mock.Anything, mock.Anything)

	s.comandas.On("ResumenComisiones", mock.Anything, mock.MatchedBy(func(p dto.ComisionesParams) bool {
		return p.PersonalID == s.userID && p.Desde != nil
	})).Return(&domain.ComisionResumen{
		PersonalID:  s.userID,
		Comandas:    2,
		ComisionARS: decimal.NewFromInt(40000),
	}, nil).Once()

	w = s.do(http.MethodGet, "/api/v1/comandas/comisiones?personalID="+s.userID+"&desde=2024-03-01T00:00:00-03:00", userToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resumen domain.ComisionResumen
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resumen))
	s.Equal(2, resumen.Comandas)
	s.True(resumen.ComisionARS.Equal(decimal.NewFromInt(40000)))
	s.comandas.AssertNotCalled(s.T(), "GetComanda", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestResumenComisiones_RequiresPersonal() {
	w := s.do(http.MethodGet, "/api/v1/comandas/comisiones", adminToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListClientes_InternalErrorIsNotLeaked() {
	s.clientes.On("ListClientes", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset by peer")).Once()

	w := s.do(http.MethodGet, "/api/v1/clientes", userToken, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to list clientes", s.decodeError(w))
}

func (s *HandlerTestSuite) TestCreatePrepago_Guardado() {
	clienteID := uuid.NewString()
	cajaID := uuid.NewString()
	resp := &dto.PrepagoResponse{
		Prepago:  domain.Prepago{PrepagoID: uuid.NewString(), ClienteID: clienteID, CajaID: cajaID},
		Guardado: &domain.PrepagoGuardado{PrepagoGuardadoID: uuid.NewString(), ClienteID: clienteID},
	}
	s.prepagos.On("CreatePrepago", mock.Anything, mock.MatchedBy(func(req dto.CreatePrepagoRequest) bool {
		return req.Guardar && req.Moneda == "dolares"
	}), s.userID).Return(resp, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/prepagos", userToken, map[string]any{
		"clienteID":  clienteID,
		"cajaID":     cajaID,
		"monto":      "100",
		"moneda":     "dolares",
		"metodoPago": "transferencia",
		"guardar":    true,
	})

	s.Require().Equal(http.StatusCreated, w.Code)
	s.Require().Len(s.recorded, 1)
	s.Equal(resp.Prepago.PrepagoID, s.recorded[0].EntityID)
	s.ElementsMatch([]string{clienteID, cajaID, resp.Guardado.PrepagoGuardadoID}, s.recorded[0].Related)
}

func (s *HandlerTestSuite) TestCreatePrepago_RejectsZeroAmount() {
	w := s.do(http.MethodPost, "/api/v1/prepagos", userToken, map[string]any{
		"clienteID":  uuid.NewString(),
		"cajaID":     uuid.NewString(),
		"monto":      "0",
		"moneda":     "pesos",
		"metodoPago": "efectivo",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.prepagos.AssertNotCalled(s.T(), "CreatePrepago", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListPrepagosDisponibles() {
	clienteID := uuid.NewString()
	s.prepagos.On("ListPrepagosDisponibles", mock.Anything, clienteID).
		Return([]domain.PrepagoGuardado{{PrepagoGuardadoID: uuid.NewString(), ClienteID: clienteID}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/clientes/"+clienteID+"/prepagos/disponibles", userToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var list []domain.PrepagoGuardado
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Len(list, 1)
}

func (s *HandlerTestSuite) TestCajaBalance() {
	cajaID := uuid.NewString()
	s.cajas.On("GetBalance", mock.Anything, cajaID, (*time.Time)(nil), (*time.Time)(nil)).Return(&domain.CajaBalance{
		CajaID:      cajaID,
		IngresosARS: decimal.NewFromInt(1000),
		EgresosARS:  decimal.NewFromInt(300),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/cajas/"+cajaID+"/balance", userToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(cajaID, resp.CajaID)
	s.True(resp.IngresosARS.Equal(decimal.NewFromInt(1000)))
}

func (s *HandlerTestSuite) TestCajaBalance_BadDate() {
	w := s.do(http.MethodGet, "/api/v1/cajas/"+uuid.NewString()+"/balance?desde=yesterday", userToken, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.cajas.AssertNotCalled(s.T(), "GetBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListMovimientos_PassesPageToken() {
	cajaID := uuid.NewString()
	s.movimientos.On("ListMovimientos", mock.Anything, cajaID, mock.MatchedBy(func(p dto.ListMovimientosParams) bool {
		return p.PageToken == "next-page" && p.Limit == 10
	})).Return(&domain.MovimientoPage{Movimientos: []domain.Movimiento{}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/cajas/"+cajaID+"/movimientos?limit=10&pageToken=next-page", userToken, nil)

	s.Equal(http.StatusOK, w.Code)
	s.movimientos.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateMovimiento_RequiresDirection() {
	w := s.do(http.MethodPost, "/api/v1/movimientos", userToken, map[string]any{
		"cajaID":     uuid.NewString(),
		"montoARS":   "500",
		"metodoPago": "efectivo",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.movimientos.AssertNotCalled(s.T(), "CreateMovimiento", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateMovimiento() {
	cajaID := uuid.NewString()
	created := &domain.Movimiento{MovimientoID: uuid.NewString(), CajaID: cajaID, EsIngreso: false}
	s.movimientos.On("CreateMovimiento", mock.Anything, mock.MatchedBy(func(req dto.CreateMovimientoRequest) bool {
		return req.EsIngreso != nil && !*req.EsIngreso && req.MontoARS.Equal(decimal.NewFromInt(500))
	}), s.userID).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/movimientos", userToken, map[string]any{
		"cajaID":     cajaID,
		"montoARS":   "500",
		"esIngreso":  false,
		"metodoPago": "efectivo",
	})

	s.Require().Equal(http.StatusCreated, w.Code)
	s.Require().Len(s.recorded, 1)
	s.Equal(created.MovimientoID, s.recorded[0].EntityID)
	s.Equal([]string{cajaID}, s.recorded[0].Related)
}

func (s *HandlerTestSuite) TestConvert() {
	s.cotizacion.On("Convert", mock.Anything, mock.MatchedBy(func(p dto.ConvertParams) bool {
		return p.Monto.Equal(decimal.NewFromInt(100)) && p.De == "dolares" && p.A == "pesos"
	})).Return(&dto.ConvertResponse{
		Monto:     decimal.NewFromInt(100),
		De:        domain.MonedaDolares,
		A:         domain.MonedaPesos,
		Resultado: decimal.NewFromInt(105000),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/cotizaciones/convert?monto=100&de=dolares&a=pesos", userToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Resultado.Equal(decimal.NewFromInt(105000)))
}

func (s *HandlerTestSuite) TestCreateCotizacion_ManagersOnly() {
	body := map[string]any{"compra": "1000", "venta": "1050", "fuente": "blue"}

	w := s.do(http.MethodPost, "/api/v1/cotizaciones", userToken, body)
	s.Equal(http.StatusForbidden, w.Code)

	s.cotizacion.On("CreateCotizacion", mock.Anything, mock.Anything, s.adminID).
		Return(&domain.CotizacionDolar{CotizacionID: uuid.NewString()}, nil).Once()
	w = s.do(http.MethodPost, "/api/v1/cotizaciones", adminToken, body)
	s.Equal(http.StatusCreated, w.Code)
	s.Len(s.recorded, 1)
}

func (s *HandlerTestSuite) TestSetPassword_SelfOrAdmin() {
	other := uuid.NewString()
	body := map[string]string{"password": "a-new-password"}

	w := s.do(http.MethodPut, "/api/v1/personal/"+other+"/password", userToken, body)
	s.Equal(http.StatusForbidden, w.Code)

	s.personal.On("SetPassword", mock.Anything, s.userID, dto.SetPasswordRequest{Password: "a-new-password"}, s.userID).
		Return(nil).Once()
	w = s.do(http.MethodPut, "/api/v1/personal/"+s.userID+"/password", userToken, body)
	s.Equal(http.StatusNoContent, w.Code)

	s.Require().Len(s.recorded, 1)
	s.Equal(audit.RedactedValue, s.recorded[0].Payload["password"])
	s.personal.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreatePersonal_AdminOnly() {
	body := map[string]any{
		"email":    "new@studio.com",
		"password": "long-enough",
		"nombre":   "Nuevo",
		"rol":      "user",
	}
	w := s.do(http.MethodPost, "/api/v1/personal", userToken, body)
	s.Equal(http.StatusForbidden, w.Code)

	s.personal.On("CreatePersonal", mock.Anything, mock.Anything, s.adminID).
		Return(&domain.Personal{PersonalID: uuid.NewString(), Email: "new@studio.com", PasswordHash: "$2a$hash"}, nil).Once()
	w = s.do(http.MethodPost, "/api/v1/personal", adminToken, body)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.NotContains(w.Body.String(), "$2a$hash")
	s.NotContains(w.Body.String(), "long-enough")
}

func (s *HandlerTestSuite) TestAuditLogs_AdminOnly() {
	w := s.do(http.MethodGet, "/api/v1/audit-logs", userToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.auditSvc.On("ListAuditLogs", mock.Anything, "comanda", "abc", 50).Return([]domain.AuditLog{}, nil).Once()
	w = s.do(http.MethodGet, "/api/v1/audit-logs?entity=comanda&entityID=abc", adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.auditSvc.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestAuditLogs_Unfiltered() {
	s.auditSvc.On("ListAuditLogs", mock.Anything, "", "", 50).Return([]domain.AuditLog{
		{Entity: "comanda", Action: "CREATE"},
		{Entity: "prepago", Action: "CREATE"},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/audit-logs", adminToken, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var logs []domain.AuditLog
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &logs))
	s.Len(logs, 2)
	s.auditSvc.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestMalformedPathIDIsBadRequest() {
	for _, path := range []string{"/api/v1/comandas/admin", "/api/v1/clientes/1", "/api/v1/movimientos/x"} {
		w := s.do(http.MethodGet, path, userToken, nil)
		s.Equal(http.StatusBadRequest, w.Code, path)
	}
	w := s.do(http.MethodDelete, "/api/v1/comandas/not-a-uuid", adminToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.comandas.AssertNotCalled(s.T(), "GetComanda", mock.Anything, mock.Anything)
	s.comandas.AssertNotCalled(s.T(), "DeleteComanda", mock.Anything, mock.Anything, mock.Anything)
	s.Empty(s.recorded)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
