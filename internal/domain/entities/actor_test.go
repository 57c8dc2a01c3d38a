package entities

import "testing"

func TestParseRoleSet(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []Role
		not  []Role
	}{
		{name: "single", raw: "CUSTOMER", want: []Role{RoleCustomer}, not: []Role{RoleAdmin, RoleEmployee}},
		{name: "spring prefix and case", raw: "role_admin, Employee", want: []Role{RoleAdmin, RoleEmployee}, not: []Role{RoleCustomer}},
		{name: "no substring match", raw: "SUPERADMIN,NOT_A_CUSTOMER", not: []Role{RoleAdmin, RoleCustomer}},
		{name: "empty", raw: "  ", not: []Role{RoleAdmin, RoleEmployee, RoleCustomer}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := ParseRoleSet(tc.raw)
			for _, r := range tc.want {
				if !set.Has(r) {
					t.Fatalf("expected %s in %q", r, set.String())
				}
			}
			for _, r := range tc.not {
				if set.Has(r) {
					t.Fatalf("did not expect %s in %q", r, set.String())
				}
			}
		})
	}
}

func TestRoleSet_IsStaffAndString(t *testing.T) {
	if NewRoleSet(RoleCustomer).IsStaff() {
		t.Fatalf("customer must not be staff")
	}
	if !NewRoleSet(RoleEmployee).IsStaff() || !NewRoleSet(RoleAdmin).IsStaff() {
		t.Fatalf("admin and employee are staff")
	}
	if got := NewRoleSet(RoleEmployee, RoleAdmin).String(); got != "ADMIN,EMPLOYEE" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestParseServiceStatus(t *testing.T) {
	if s, ok := ParseServiceStatus(" in_progress "); !ok || s != ServiceStatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %q %v", s, ok)
	}
	if _, ok := ParseServiceStatus("done"); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}
