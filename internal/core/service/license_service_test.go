package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

func TestLicenseService_Assign_Success(t *testing.T) {
	accounts := newStubAccountRepo()
	dev := accounts.add(domain.Account{Username: "dev", Email: "dev@example.com", IsActive: true})
	licenses := newStubLicenseRepo()
	svc := NewLicenseService(accounts, licenses, zerolog.Nop())

	list, err := svc.Assign(context.Background(), adminIdentity, dev.ID, ports.AssignLicenseInput{Software: "GoLand"})
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if len(list) != 1 || list[0].Software != "GoLand" || list[0].DeveloperID != dev.ID {
		t.Fatalf("expected the created license in the returned list, got %+v", list)
	}
}

func TestLicenseService_Assign_UnknownDeveloper(t *testing.T) {
	licenses := newStubLicenseRepo()
	svc := NewLicenseService(newStubAccountRepo(), licenses, zerolog.Nop())

	_, err := svc.Assign(context.Background(), adminIdentity, "missing", ports.AssignLicenseInput{Software: "GoLand"})
	if !errors.Is(err, domain.ErrDeveloperNotFound) {
		t.Fatalf("expected ErrDeveloperNotFound, got %v", err)
	}
	if len(licenses.licenses) != 0 {
		t.Fatalf("no license may be created for an unknown developer")
	}
}

func TestLicenseService_Assign_MissingSoftware(t *testing.T) {
	accounts := newStubAccountRepo()
	dev := accounts.add(domain.Account{Username: "dev", Email: "dev@example.com", IsActive: true})
	svc := NewLicenseService(accounts, newStubLicenseRepo(), zerolog.Nop())

	_, err := svc.Assign(context.Background(), adminIdentity, dev.ID, ports.AssignLicenseInput{})
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve["software"]) == 0 {
		t.Fatalf("expected a software error, got %v", ve)
	}
}

func TestLicenseService_Remove_SecondRemovalIsNotFound(t *testing.T) {
	accounts := newStubAccountRepo()
	dev := accounts.add(domain.Account{Username: "dev", Email: "dev@example.com", IsActive: true})
	licenses := newStubLicenseRepo()
	created, _ := licenses.Create(context.Background(), &domain.License{Software: "GoLand", DeveloperID: dev.ID})
	svc := NewLicenseService(accounts, licenses, zerolog.Nop())

	if _, err := svc.Remove(context.Background(), adminIdentity, dev.ID, created.ID); err != nil {
		t.Fatalf("first Remove returned error: %v", err)
	}
	if _, err := svc.Remove(context.Background(), adminIdentity, dev.ID, created.ID); !errors.Is(err, domain.ErrLicenseNotFound) {
		t.Fatalf("expected ErrLicenseNotFound on second removal, got %v", err)
	}
}

func TestLicenseService_Denied(t *testing.T) {
	svc := NewLicenseService(newStubAccountRepo(), newStubLicenseRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), nil, ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), developerIdentity, "dev1", ports.AssignLicenseInput{Software: "GoLand"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
