package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, claims *domain.Claims) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsKey, claims)
	}

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, called, err
}

func TestPermitirRoles_Allows(t *testing.T) {
	rec, called, err := runGate(t, PermitirRoles(domain.RoleAdmin, domain.RoleEmpleado), &domain.Claims{Role: domain.RoleEmpleado})

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPermitirRoles_Forbids(t *testing.T) {
	_, called, err := runGate(t, PermitirRoles(domain.RoleAdmin, domain.RoleEmpleado), &domain.Claims{Role: domain.RoleCliente})

	if called {
		t.Fatalf("should not reach next handler")
	}
	if !errors.Is(err, domain.ErrAuthorizationDenied) {
		t.Fatalf("expected ErrAuthorizationDenied, got %v", err)
	}
	if msg, _ := domain.MessageOf(err); msg != "Acceso denegado: rol no autorizado" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestPermitirRoles_WithoutClaimsDenies(t *testing.T) {
	_, called, err := runGate(t, PermitirRoles(domain.RoleAdmin), nil)

	if called {
		t.Fatalf("should not reach next handler")
	}
	if !errors.Is(err, domain.ErrAuthorizationDenied) {
		t.Fatalf("expected ErrAuthorizationDenied, got %v", err)
	}
}

func TestSoloGates(t *testing.T) {
	cases := []struct {
		name    string
		mw      echo.MiddlewareFunc
		allowed domain.Role
		message string
	}{
		{"admin", SoloAdmin(), domain.RoleAdmin, "Acceso solo para administradores"},
		{"cliente", SoloCliente(), domain.RoleCliente, "Acceso solo para clientes"},
		{"empleado", SoloEmpleado(), domain.RoleEmpleado, "Acceso solo para empleados"},
	}
	roles := []domain.Role{domain.RoleAdmin, domain.RoleCliente, domain.RoleEmpleado}

	for _, tc := range cases {
		for _, role := range roles {
			_, called, err := runGate(t, tc.mw, &domain.Claims{Role: role})
			if role == tc.allowed {
				if err != nil || !called {
					t.Fatalf("%s gate: role %s should pass, err=%v", tc.name, role, err)
				}
				continue
			}
			if called {
				t.Fatalf("%s gate: role %s should be denied", tc.name, role)
			}
			if msg, _ := domain.MessageOf(err); msg != tc.message {
				t.Fatalf("%s gate: unexpected message %q", tc.name, msg)
			}
		}
	}
}
