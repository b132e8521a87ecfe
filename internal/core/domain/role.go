package domain

// Role is the closed set of actor kinds stored in USUARIO.ROL.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCliente  Role = "cliente"
	RoleEmpleado Role = "empleado"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCliente, RoleEmpleado:
		return true
	}
	return false
}

// ParseRole converts a stored or claimed tag into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Authorize checks role against the required set. An empty set denies
// everything so that a misconfigured route never fails open.
func Authorize(role Role, required ...Role) error {
	if role.Valid() {
		for _, r := range required {
			if r == role {
				return nil
			}
		}
	}
	return NewError(ErrAuthorizationDenied, deniedMessage(required))
}

func deniedMessage(required []Role) string {
	if len(required) == 1 {
		switch required[0] {
		case RoleAdmin:
			return "Acceso solo para administradores"
		case RoleCliente:
			return "Acceso solo para clientes"
		case RoleEmpleado:
			return "Acceso solo para empleados"
		}
	}
	return "Acceso denegado: rol no autorizado"
}
