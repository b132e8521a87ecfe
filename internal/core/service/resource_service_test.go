package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockPersonaRepo struct{ mock.Mock }

func (m *mockPersonaRepo) List(ctx context.Context) ([]domain.Persona, error) {
	args := m.Called(ctx)
	personas, _ := args.Get(0).([]domain.Persona)
	return personas, args.Error(1)
}

func (m *mockPersonaRepo) FindByID(ctx context.Context, id int64) (*domain.Persona, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Persona)
	return p, args.Error(1)
}

func (m *mockPersonaRepo) Create(ctx context.Context, p *domain.Persona) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 42
	}
	return args.Error(0)
}

func (m *mockPersonaRepo) Update(ctx context.Context, id int64, u domain.PersonaUpdate) error {
	return m.Called(ctx, id, u).Error(0)
}

func (m *mockPersonaRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockClienteRepo struct{ mock.Mock }

func (m *mockClienteRepo) List(ctx context.Context) ([]domain.ClienteDetail, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.ClienteDetail)
	return c, args.Error(1)
}

func (m *mockClienteRepo) FindByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Cliente)
	return c, args.Error(1)
}

func (m *mockClienteRepo) Create(ctx context.Context, c *domain.Cliente) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 5
	}
	return args.Error(0)
}

func (m *mockClienteRepo) UpdateDireccion(ctx context.Context, id int64, direccion string) error {
	return m.Called(ctx, id, direccion).Error(0)
}

func (m *mockClienteRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type stubPaqueteRepo struct {
	createRes *domain.ProcedureResult
	err       error
	estados   map[int64]int
}

func (r *stubPaqueteRepo) Create(context.Context, domain.Paquete) (*domain.ProcedureResult, error) {
	return r.createRes, r.err
}

func (r *stubPaqueteRepo) UpdateEstado(_ context.Context, id int64, estado int) error {
	if r.err != nil {
		return r.err
	}
	r.estados[id] = estado
	return nil
}

func (r *stubPaqueteRepo) Update(context.Context, domain.Paquete) error { return r.err }

func (r *stubPaqueteRepo) List(context.Context, domain.PaqueteFilter) ([]domain.Paquete, error) {
	return nil, r.err
}

func (r *stubPaqueteRepo) FindByID(context.Context, int64) (*domain.Paquete, error) {
	return nil, r.err
}

func (r *stubPaqueteRepo) Delete(context.Context, int64) error { return r.err }

type stubCentroRepo struct {
	deleteResult string
	err          error
}

func (r *stubCentroRepo) List(context.Context) ([]domain.Centro, error)            { return nil, r.err }
func (r *stubCentroRepo) FindByID(context.Context, int64) (*domain.Centro, error) { return nil, r.err }
func (r *stubCentroRepo) Create(context.Context, string, int) (int64, error)      { return 1, r.err }
func (r *stubCentroRepo) Update(context.Context, int64, int, string) (string, error) {
	return "Capacidad actualizada", r.err
}
func (r *stubCentroRepo) Delete(context.Context, int64) (string, error) { return r.deleteResult, r.err }

// ---------------------------------------------------------------------------
// Persona / Cliente
// ---------------------------------------------------------------------------

func TestPersonaService_CreateDuplicate(t *testing.T) {
	repo := &mockPersonaRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflictDuplicate)

	_, err := NewPersonaService(repo).Create(context.Background(), domain.Persona{Nombre: "Ana", Cedula: "1"})
	require.ErrorIs(t, err, domain.ErrConflictDuplicate)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "ID_PERSONA o CEDULA ya existen", msg)
}

func TestPersonaService_DeleteWithDependents(t *testing.T) {
	repo := &mockPersonaRepo{}
	repo.On("Delete", mock.Anything, int64(3)).Return(domain.ErrDependencyConflict)

	err := NewPersonaService(repo).Delete(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrDependencyConflict)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "No se puede eliminar: la persona está asociada a un cliente o empleado", msg)
	repo.AssertExpectations(t)
}

func TestClienteService_CreateRequiresPersona(t *testing.T) {
	personas := &mockPersonaRepo{}
	personas.On("FindByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
	clientes := &mockClienteRepo{}

	_, err := NewClienteService(clientes, personas).Create(context.Background(), domain.Cliente{PersonaID: 99, Direccion: "x"})
	require.ErrorIs(t, err, domain.ErrMissingReference)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "La persona no existe", msg)
	clientes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClienteService_CreateSuccess(t *testing.T) {
	personas := &mockPersonaRepo{}
	personas.On("FindByID", mock.Anything, int64(1)).Return(&domain.Persona{ID: 1}, nil)
	clientes := &mockClienteRepo{}
	clientes.On("Create", mock.Anything, mock.Anything).Return(nil)

	id, err := NewClienteService(clientes, personas).Create(context.Background(), domain.Cliente{PersonaID: 1, Direccion: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestClienteService_UpdateDireccionNotFound(t *testing.T) {
	clientes := &mockClienteRepo{}
	clientes.On("UpdateDireccion", mock.Anything, int64(8), "Calle 1").Return(domain.ErrNotFound)

	err := NewClienteService(clientes, &mockPersonaRepo{}).UpdateDireccion(context.Background(), 8, "Calle 1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "Cliente no encontrado", msg)
}

// ---------------------------------------------------------------------------
// Paquete / Centro
// ---------------------------------------------------------------------------

func TestPaqueteService_UpdateEstadoPublishesActor(t *testing.T) {
	repo := &stubPaqueteRepo{estados: map[int64]int{}}
	pub := &stubPublisher{}
	svc := NewPaqueteService(repo, pub)

	ctx := domain.WithClaims(context.Background(), &domain.Claims{UserID: 3, Role: domain.RoleEmpleado})
	require.NoError(t, svc.UpdateEstado(ctx, 10, 2))

	assert.Equal(t, 2, repo.estados[10])
	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, domain.AuditPaqueteEstado, ev.Action)
	assert.Equal(t, "10", ev.EntityID)
	assert.Equal(t, int64(3), ev.ActorID)
	assert.Equal(t, domain.RoleEmpleado, ev.ActorRole)
}

func TestPaqueteService_FailureDoesNotPublish(t *testing.T) {
	repo := &stubPaqueteRepo{err: domain.ErrNotFound, estados: map[int64]int{}}
	pub := &stubPublisher{}

	err := NewPaqueteService(repo, pub).UpdateEstado(context.Background(), 10, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestPaqueteService_CreateValidatesPeso(t *testing.T) {
	svc := NewPaqueteService(&stubPaqueteRepo{}, &stubPublisher{})
	_, err := svc.Create(context.Background(), domain.Paquete{Peso: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaqueteService_DeleteWithRutas(t *testing.T) {
	svc := NewPaqueteService(&stubPaqueteRepo{err: domain.ErrDependencyConflict}, &stubPublisher{})
	err := svc.Delete(context.Background(), 1)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "No se puede eliminar: El paquete tiene rutas asociadas", msg)
}

func TestCentroService_DeleteMessage(t *testing.T) {
	svc := NewCentroService(&stubCentroRepo{deleteResult: "Centro 4 eliminado"})
	msg, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Centro eliminado exitosamente", msg)

	svc = NewCentroService(&stubCentroRepo{deleteResult: "El centro no existe"})
	msg, err = svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "El centro no existe", msg)
}

func TestCentroService_UpdateRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewCentroService(&stubCentroRepo{}).Update(context.Background(), 1, 0, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
