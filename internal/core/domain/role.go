package domain

import "strconv"

// Role identifies a user's permission class. Values match perfil.id.
type Role int

const (
	RoleAdministrator Role = 1
	RoleSupervisor    Role = 2
	RoleEmployee      Role = 3
	RoleClient        Role = 4
)

var roleNames = map[Role]string{
	RoleAdministrator: "Administrador",
	RoleSupervisor:    "Supervisor",
	RoleEmployee:      "Empleado",
	RoleClient:        "Cliente",
}

// Valid reports whether r is one of the seeded roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// String returns the perfil.nombre seeded for the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// In reports whether r is any of roles.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
