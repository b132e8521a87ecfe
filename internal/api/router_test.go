package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/service"
)

const testSecret = "router-test-secret"

// --- In-memory collaborators ---

type memCredentials struct {
	mu      sync.Mutex
	byUser  map[string]domain.Credential
	cedulas map[string]bool
	nextID  int64
}

func newMemCredentials() *memCredentials {
	return &memCredentials{byUser: map[string]domain.Credential{}, cedulas: map[string]bool{}}
}

func (m *memCredentials) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byUser[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &c, nil
}

func (m *memCredentials) Register(_ context.Context, reg domain.Registration, hash string) (*domain.RegistrationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byUser[reg.Username]; taken || m.cedulas[reg.Cedula] {
		return nil, domain.ErrConflictDuplicate
	}
	m.nextID++
	m.byUser[reg.Username] = domain.Credential{
		UserID:       m.nextID,
		Username:     reg.Username,
		PasswordHash: hash,
		Role:         domain.RoleCliente,
		PersonaID:    m.nextID,
		Nombre:       reg.Nombre,
	}
	m.cedulas[reg.Cedula] = true
	return &domain.RegistrationResult{PersonaID: m.nextID, ClienteID: m.nextID}, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.AuditEvent) {}

type stubClientes struct {
	listed bool
}

func (s *stubClientes) List(context.Context) ([]domain.ClienteDetail, error) {
	s.listed = true
	return nil, nil
}
func (s *stubClientes) Get(context.Context, int64) (*domain.Cliente, error) {
	return nil, domain.NewError(domain.ErrNotFound, "Cliente no encontrado")
}
func (s *stubClientes) Create(context.Context, domain.Cliente) (int64, error) { return 1, nil }
func (s *stubClientes) UpdateDireccion(context.Context, int64, string) error { return nil }
func (s *stubClientes) Delete(context.Context, int64) error                   { return nil }

type stubCentros struct {
	err error
}

func (s *stubCentros) List(context.Context) ([]domain.Centro, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Centro{{ID: 1, Ubicacion: "Quito", Capacidad: 500}}, nil
}
func (s *stubCentros) Get(context.Context, int64) (*domain.Centro, error) {
	return nil, domain.NewError(domain.ErrNotFound, "Centro no encontrado")
}
func (s *stubCentros) Create(context.Context, string, int) (int64, error) { return 9, nil }
func (s *stubCentros) Update(context.Context, int64, int, string) (string, error) {
	return "Capacidad actualizada", nil
}
func (s *stubCentros) Delete(context.Context, int64) (string, error) {
	return "Centro eliminado exitosamente", nil
}

// --- Harness ---

type testServer struct {
	e        *echo.Echo
	tokens   *service.TokenService
	clientes *stubClientes
	centros  *stubCentros
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := service.NewTokenService(testSecret, service.DefaultTokenTTL)
	auth, err := service.NewAuthService(
		newMemCredentials(),
		service.NewBcryptHasher(bcrypt.MinCost),
		tokens,
		nopPublisher{},
		service.AuthOptions{},
		zerolog.Nop(),
	)
	require.NoError(t, err)

	ts := &testServer{tokens: tokens, clientes: &stubClientes{}, centros: &stubCentros{}}
	ts.e = NewRouter(Dependencies{
		Log:      zerolog.Nop(),
		Tokens:   tokens,
		Auth:     auth,
		Clientes: ts.clientes,
		Centros:  ts.centros,
		Registry: prometheus.NewRegistry(),
	})
	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("authorization", token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	tok, err := ts.tokens.Issue(domain.Claims{UserID: 100, PersonaID: 200, Nombre: "Staff", Role: role})
	require.NoError(t, err)
	return tok
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

const anaJSON = `{"nombre":"Ana Pérez","cedula":"0912345678","telefono":"0999999999","edad":30,"sexo":"F","direccion":"Av. Central 123","nombreusuario":"ana","password":"pw123"}`

// --- Registration and login ---

func TestRouter_RegisterThenLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/auth/register", anaJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reg := decode(t, rec)
	assert.Equal(t, "Registro exitoso", reg["mensaje"])
	assert.EqualValues(t, 1, reg["id_persona"])
	assert.EqualValues(t, 1, reg["id_cliente"])
	assert.NotContains(t, reg, "token")

	rec = ts.do(http.MethodPost, "/api/auth/login", `{"nombreusuario":"ana","password":"pw123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode(t, rec)
	assert.Equal(t, "Login exitoso", login["mensaje"])
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	claims, err := ts.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCliente, claims.Role)
	assert.Equal(t, "Ana Pérez", claims.Nombre)

	rec = ts.do(http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode(t, rec)
	assert.Equal(t, "cliente", me["rol"])
	assert.EqualValues(t, 1, me["id_usuario"])
}

func TestRouter_LoginFailures(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/auth/register", anaJSON, "").Code)

	rec := ts.do(http.MethodPost, "/api/auth/login", `{"nombreusuario":"ana","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]any{"error": "Contraseña incorrecta"}, decode(t, rec))

	rec = ts.do(http.MethodPost, "/api/auth/login", `{"nombreusuario":"nadie","password":"pw123"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "Usuario no encontrado"}, decode(t, rec))

	rec = ts.do(http.MethodPost, "/api/auth/login", `{"nombreusuario":"ana"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")
}

func TestRouter_DuplicateRegistration(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/auth/register", anaJSON, "").Code)

	rec := ts.do(http.MethodPost, "/api/auth/register", anaJSON, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, map[string]any{"error": "Usuario o cédula ya existen"}, decode(t, rec))
}

// --- Gates ---

func TestRouter_TokenGate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/centros", "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, map[string]any{"mensaje": "Token requerido"}, decode(t, rec))

	rec = ts.do(http.MethodGet, "/api/centros", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]any{"mensaje": "Token inválido"}, decode(t, rec))

	expired := service.NewTokenService(testSecret, time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-3 * time.Hour) })
	old, err := expired.Issue(domain.Claims{UserID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	rec = ts.do(http.MethodGet, "/api/centros", "", old)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodGet, "/api/centros", "", "Bearer "+ts.tokenFor(t, domain.RoleCliente))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownAPIRouteIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/nonexistent", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Token requerido")

	rec = ts.do(http.MethodGet, "/api/nonexistent", "", ts.tokenFor(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RoleGate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/clientes", "", ts.tokenFor(t, domain.RoleCliente))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, map[string]any{"mensaje": "Acceso solo para administradores"}, decode(t, rec))
	assert.False(t, ts.clientes.listed, "handler must not run when the gate denies")

	rec = ts.do(http.MethodGet, "/api/clientes", "", ts.tokenFor(t, domain.RoleEmpleado))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodGet, "/api/clientes", "", ts.tokenFor(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.True(t, ts.clientes.listed)

	rec = ts.do(http.MethodPost, "/api/centros", `{"ubicacion":"Lima","capacidad":10}`, ts.tokenFor(t, domain.RoleEmpleado))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/api/centros", `{"ubicacion":"Lima","capacidad":10}`, ts.tokenFor(t, domain.RoleAdmin))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 9, decode(t, rec)["id_centro"])
}

// --- Error envelopes ---

func TestRouter_ErrorEnvelopes(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.tokenFor(t, domain.RoleAdmin)

	rec := ts.do(http.MethodGet, "/api/centros/5", "", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"mensaje": "Centro no encontrado"}, decode(t, rec))

	rec = ts.do(http.MethodGet, "/api/centros/abc", "", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")

	rec = ts.do(http.MethodPost, "/api/centros", `{"ubicacion":"Lima","capacidad":0}`, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "capacidad")

	ts.centros.err = errors.New("connection reset by peer")
	rec = ts.do(http.MethodGet, "/api/centros", "", admin)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "error interno del servidor"}, decode(t, rec))
}

func TestRouter_InfrastructureRoutesArePublic(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health/ready", "", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/metrics", "", "").Code)
}
