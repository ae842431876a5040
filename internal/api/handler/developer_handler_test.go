package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

func TestDeveloperHandler_Overview_Anonymous(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		overviewFn: func(context.Context, *domain.Identity) (*ports.DeveloperOverview, error) {
			return nil, domain.ErrUnauthenticated
		},
	})

	c, rec := newTestContext(http.MethodGet, "/developers", "")
	if err := h.Overview(c); err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestDeveloperHandler_Overview_NonAdmin(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		overviewFn: func(context.Context, *domain.Identity) (*ports.DeveloperOverview, error) {
			return nil, domain.ErrForbidden
		},
	})

	c, rec := newTestContext(http.MethodGet, "/developers", "")
	c.Set(CtxIdentity, &domain.Identity{AccountID: "acc2", Username: "dev"})
	if err := h.Overview(c); err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Not authorized" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestDeveloperHandler_Overview_Success(t *testing.T) {
	dev := domain.Account{ID: "acc2", Username: "dev", Email: "dev@example.com", IsActive: true}
	h := NewDeveloperHandler(&fakeDeveloperService{
		overviewFn: func(context.Context, *domain.Identity) (*ports.DeveloperOverview, error) {
			return &ports.DeveloperOverview{
				Assets: []ports.DeveloperAssets{{
					Developer: dev,
					Assets:    []domain.Asset{{ID: "asset1", Brand: "Dell", Model: "Latitude", Type: domain.AssetLaptop, DeveloperID: dev.ID}},
				}},
				Licenses: []ports.DeveloperLicenses{{
					Developer: dev,
					Licenses:  []domain.License{{ID: "lic1", Software: "GoLand", DeveloperID: dev.ID}},
				}},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/developers", "")
	if err := h.Overview(asAdmin(c)); err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body overviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Assets) != 1 || body.Assets[0].Username != "dev" || len(body.Assets[0].Assets) != 1 {
		t.Fatalf("assets roster = %+v", body.Assets)
	}
	if body.Assets[0].Assets[0].Developer != "acc2" {
		t.Fatalf("asset developer = %q, want acc2", body.Assets[0].Assets[0].Developer)
	}
	if len(body.Licenses) != 1 || len(body.Licenses[0].Licenses) != 1 || body.Licenses[0].Licenses[0].Software != "GoLand" {
		t.Fatalf("licenses roster = %+v", body.Licenses)
	}
}

func TestDeveloperHandler_Create_Success(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		createFn: func(_ context.Context, _ *domain.Identity, input ports.CreateDeveloperInput) ([]domain.Account, error) {
			return []domain.Account{
				{ID: "acc2", Username: "dev", Email: "dev@example.com", IsActive: true},
				{ID: "acc3", Username: input.Username, Email: input.Email, IsActive: true},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/developers",
		`{"username":"newdev","email":"new@example.com","password1":"secret123","password2":"secret123"}`)
	if err := h.Create(asAdmin(c)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var roster []developerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &roster); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(roster) != 2 || roster[1].Username != "newdev" {
		t.Fatalf("roster = %+v", roster)
	}
}

func TestDeveloperHandler_Create_Anonymous(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		createFn: func(context.Context, *domain.Identity, ports.CreateDeveloperInput) ([]domain.Account, error) {
			return nil, domain.ErrUnauthenticated
		},
	})

	c, rec := newTestContext(http.MethodPost, "/developers",
		`{"username":"newdev","email":"new@example.com","password1":"secret123","password2":"secret123"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDeveloperHandler_Update_NotFound(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		updateFn: func(context.Context, *domain.Identity, string, ports.UpdateDeveloperInput) ([]domain.Account, error) {
			return nil, domain.ErrDeveloperNotFound
		},
	})

	c, rec := newTestContext(http.MethodPut, "/developers/missing", `{"is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Update(asAdmin(c)); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Developer not found" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestDeveloperHandler_Dashboard(t *testing.T) {
	h := NewDeveloperHandler(&fakeDeveloperService{
		dashboardFn: func(context.Context, *domain.Identity) (*ports.DashboardView, error) {
			return &ports.DashboardView{
				Account: domain.Account{ID: "acc2", Username: "dev", Email: "dev@example.com", IsActive: true},
				Assets:  []domain.Asset{{ID: "asset1", Brand: "Dell", Model: "Latitude", Type: domain.AssetLaptop, DeveloperID: "acc2"}},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/dashboard", "")
	c.Set(CtxIdentity, &domain.Identity{AccountID: "acc2", Username: "dev"})
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if _, ok := body["user"]; !ok {
		t.Fatal("dashboard body missing user")
	}
	if _, ok := body["developers"]; ok {
		t.Fatal("non-admin dashboard must not include the developer roster")
	}
}
