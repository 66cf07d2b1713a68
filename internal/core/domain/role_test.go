package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdministrator, RoleSupervisor, RoleEmployee, RoleClient} {
		if !r.Valid() {
			t.Fatalf("expected %d to be valid", r)
		}
	}
	for _, r := range []Role{0, 5, -1} {
		if r.Valid() {
			t.Fatalf("expected %d to be invalid", r)
		}
	}
}

func TestRole_String(t *testing.T) {
	if got := RoleAdministrator.String(); got != "Administrador" {
		t.Fatalf("unexpected name: %s", got)
	}
	if got := Role(9).String(); got != "Role(9)" {
		t.Fatalf("unexpected name for unknown role: %s", got)
	}
}

func TestRole_In(t *testing.T) {
	if !RoleEmployee.In(RoleSupervisor, RoleEmployee) {
		t.Fatalf("employee should be in {supervisor, employee}")
	}
	if RoleClient.In(RoleSupervisor, RoleEmployee) {
		t.Fatalf("client should not be in {supervisor, employee}")
	}
	if RoleClient.In() {
		t.Fatalf("no role is in the empty set")
	}
}

func TestIdentity_IsZero(t *testing.T) {
	if !(Identity{}).IsZero() {
		t.Fatalf("zero identity should report IsZero")
	}
	if !(Identity{UserID: 3, RoleID: 7}).IsZero() {
		t.Fatalf("unknown role should report IsZero")
	}
	if (Identity{UserID: 3, RoleID: RoleClient}).IsZero() {
		t.Fatalf("valid identity should not report IsZero")
	}
}
