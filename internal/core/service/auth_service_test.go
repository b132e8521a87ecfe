package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCredentialRepo struct {
	mu      sync.Mutex
	byUser  map[string]*domain.Credential
	cedulas map[string]bool
	nextID  int64
	findErr error
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{
		byUser:  make(map[string]*domain.Credential),
		cedulas: make(map[string]bool),
	}
}

func (r *stubCredentialRepo) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.byUser[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCredentialRepo) Register(_ context.Context, reg domain.Registration, hash string) (*domain.RegistrationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUser[reg.Username]; exists || r.cedulas[reg.Cedula] {
		return nil, domain.ErrConflictDuplicate
	}
	r.nextID++
	r.byUser[reg.Username] = &domain.Credential{
		UserID:       r.nextID,
		Username:     reg.Username,
		PasswordHash: hash,
		Role:         domain.RoleCliente,
		PersonaID:    r.nextID,
		Nombre:       reg.Nombre,
	}
	r.cedulas[reg.Cedula] = true
	return &domain.RegistrationResult{PersonaID: r.nextID, ClienteID: r.nextID}, nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (p *stubPublisher) Publish(ev domain.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *stubPublisher) actions() []domain.AuditAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Action)
	}
	return out
}

const testSecret = "test-secret"

func newTestAuthService(t *testing.T, repo *stubCredentialRepo, opts AuthOptions) (*AuthService, *TokenService, *stubPublisher) {
	t.Helper()
	tokens := NewTokenService(testSecret, DefaultTokenTTL)
	pub := &stubPublisher{}
	svc, err := NewAuthService(repo, NewBcryptHasher(bcrypt.MinCost), tokens, pub, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc, tokens, pub
}

func anaRegistration() domain.Registration {
	return domain.Registration{
		Nombre:    "Ana Pérez",
		Cedula:    "0912345678",
		Telefono:  "0999999999",
		Edad:      30,
		Sexo:      "F",
		Direccion: "Av. Central 123",
		Username:  "ana",
		Password:  "pw123",
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	svc, _, pub := newTestAuthService(t, repo, AuthOptions{})

	res, err := svc.Register(context.Background(), anaRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.PersonaID == 0 || res.ClienteID == 0 {
		t.Fatalf("expected ids, got %+v", res)
	}

	stored := repo.byUser["ana"]
	if stored.PasswordHash == "pw123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Role != domain.RoleCliente {
		t.Fatalf("expected role cliente, got %s", stored.Role)
	}
	if got := pub.actions(); len(got) != 1 || got[0] != domain.AuditUserRegistered {
		t.Fatalf("expected one registration audit event, got %v", got)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})

	reg := anaRegistration()
	reg.Password = ""
	if _, err := svc.Register(context.Background(), reg); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})

	if _, err := svc.Register(context.Background(), anaRegistration()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), anaRegistration())
	if !errors.Is(err, domain.ErrConflictDuplicate) {
		t.Fatalf("expected ErrConflictDuplicate, got %v", err)
	}
	if msg, _ := domain.MessageOf(err); msg != "Usuario o cédula ya existen" {
		t.Fatalf("unexpected message %q", msg)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})
	if _, err := svc.Register(context.Background(), anaRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "ana", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RoleCliente || claims.Nombre != "Ana Pérez" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})
	_, _ = svc.Register(context.Background(), anaRegistration())

	_, err := svc.Login(context.Background(), "ana", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if msg, _ := domain.MessageOf(err); msg != "Contraseña incorrecta" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})

	_, err := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_UniformErrors(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{UniformLoginErrors: true})
	_, _ = svc.Register(context.Background(), anaRegistration())

	_, unknown := svc.Login(context.Background(), "ghost", "pw")
	_, wrong := svc.Login(context.Background(), "ana", "nope")

	for _, err := range []error{unknown, wrong} {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if msg, _ := domain.MessageOf(err); msg != "Credenciales inválidas" {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestAuthService_Login_CorruptHash(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.byUser["broken"] = &domain.Credential{UserID: 9, Username: "broken", PasswordHash: "not-bcrypt", Role: domain.RoleAdmin}
	svc, _, _ := newTestAuthService(t, repo, AuthOptions{})

	_, err := svc.Login(context.Background(), "broken", "pw")
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.findErr = errors.New("connection reset")
	svc, _, _ := newTestAuthService(t, repo, AuthOptions{})

	_, err := svc.Login(context.Background(), "ana", "pw123")
	if err == nil || errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected an unclassified error, got %v", err)
	}
}

func TestAuthService_Login_TokenExpiresAfterTTL(t *testing.T) {
	svc, tokens, _ := newTestAuthService(t, newStubCredentialRepo(), AuthOptions{})
	_, _ = svc.Register(context.Background(), anaRegistration())

	issuedAt := time.Now()
	token, err := svc.Login(context.Background(), "ana", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	tokens.WithClock(func() time.Time { return issuedAt.Add(DefaultTokenTTL + time.Minute) })
	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrAuthenticationInvalid) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}
