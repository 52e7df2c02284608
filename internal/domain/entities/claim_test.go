package entities

import "testing"

func TestAllowedAction(t *testing.T) {
	statuses := []ClaimStatus{ClaimStatusCheck, ClaimStatusRepair, ClaimStatusHandover, ClaimStatusDone}
	roles := []Role{RoleAdmin, RoleEVMStaff, RoleStaff, RoleTechnician}

	for _, st := range statuses {
		for _, role := range roles {
			got := AllowedAction(st, role)
			want := ActionNone
			if st == ClaimStatusRepair && role == RoleTechnician {
				want = ActionTechnicianDone
			}
			if st == ClaimStatusHandover && role == RoleStaff {
				want = ActionStaffDone
			}
			if got != want {
				t.Fatalf("AllowedAction(%s, %s) = %q, want %q", st, role, got, want)
			}
		}
	}
}

func TestAllowedActionTerminal(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleEVMStaff, RoleStaff, RoleTechnician} {
		if got := AllowedAction(ClaimStatusDone, role); got != ActionNone {
			t.Fatalf("expected no action for DONE with role %s, got %q", role, got)
		}
	}
}

func TestNextStatusLinear(t *testing.T) {
	if NextStatus[ClaimStatusCheck] != ClaimStatusRepair {
		t.Fatalf("expected CHECK -> REPAIR")
	}
	if NextStatus[ClaimStatusRepair] != ClaimStatusHandover {
		t.Fatalf("expected REPAIR -> HANDOVER")
	}
	if NextStatus[ClaimStatusHandover] != ClaimStatusDone {
		t.Fatalf("expected HANDOVER -> DONE")
	}
	if _, ok := NextStatus[ClaimStatusDone]; ok {
		t.Fatalf("expected DONE to be terminal")
	}
}
