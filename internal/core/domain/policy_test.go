package domain

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	admin := &Identity{AccountID: "acc1", Username: "admin", IsAdmin: true}
	developer := &Identity{AccountID: "acc2", Username: "dev"}

	guarded := []Operation{
		OpListDevelopers, OpCreateDeveloper, OpUpdateDeveloper, OpDeleteDeveloper,
		OpListAssets, OpAssignAsset, OpRemoveAsset,
		OpListLicenses, OpAssignLicense, OpRemoveLicense,
	}

	for _, op := range guarded {
		if got := Authorize(nil, op); got != DecisionUnauthenticated {
			t.Errorf("Authorize(nil, %s) = %s, want unauthenticated", op, got)
		}
		if got := Authorize(developer, op); got != DecisionForbidden {
			t.Errorf("Authorize(developer, %s) = %s, want forbidden", op, got)
		}
		if got := Authorize(admin, op); got != DecisionAllowed {
			t.Errorf("Authorize(admin, %s) = %s, want allowed", op, got)
		}
	}

	if got := Authorize(nil, OpViewDashboard); got != DecisionUnauthenticated {
		t.Errorf("Authorize(nil, dashboard) = %s, want unauthenticated", got)
	}
	if got := Authorize(developer, OpViewDashboard); got != DecisionAllowed {
		t.Errorf("Authorize(developer, dashboard) = %s, want allowed", got)
	}
	if got := Authorize(admin, OpViewDashboard); got != DecisionAllowed {
		t.Errorf("Authorize(admin, dashboard) = %s, want allowed", got)
	}
}

func TestDecisionErr(t *testing.T) {
	if err := DecisionAllowed.Err(); err != nil {
		t.Fatalf("DecisionAllowed.Err() = %v, want nil", err)
	}
	if err := DecisionUnauthenticated.Err(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("DecisionUnauthenticated.Err() = %v, want ErrUnauthenticated", err)
	}
	if err := DecisionForbidden.Err(); !errors.Is(err, ErrForbidden) {
		t.Fatalf("DecisionForbidden.Err() = %v, want ErrForbidden", err)
	}
}
