package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asAdmin(c echo.Context) echo.Context {
	c.Set(CtxIdentity, &domain.Identity{AccountID: "acc1", Username: "admin", IsAdmin: true})
	return c
}

type fakeAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (string, *domain.Account, error)
	logoutFn   func(ctx context.Context, jti string) error
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuthService) Logout(ctx context.Context, jti string) error {
	return f.logoutFn(ctx, jti)
}

func (f *fakeAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	return f.registerFn(ctx, input)
}

type fakeDeveloperService struct {
	overviewFn  func(ctx context.Context, identity *domain.Identity) (*ports.DeveloperOverview, error)
	createFn    func(ctx context.Context, identity *domain.Identity, input ports.CreateDeveloperInput) ([]domain.Account, error)
	updateFn    func(ctx context.Context, identity *domain.Identity, id string, input ports.UpdateDeveloperInput) ([]domain.Account, error)
	deleteFn    func(ctx context.Context, identity *domain.Identity, id string) error
	dashboardFn func(ctx context.Context, identity *domain.Identity) (*ports.DashboardView, error)
}

func (f *fakeDeveloperService) Overview(ctx context.Context, identity *domain.Identity) (*ports.DeveloperOverview, error) {
	return f.overviewFn(ctx, identity)
}

func (f *fakeDeveloperService) Create(ctx context.Context, identity *domain.Identity, input ports.CreateDeveloperInput) ([]domain.Account, error) {
	return f.createFn(ctx, identity, input)
}

func (f *fakeDeveloperService) Update(ctx context.Context, identity *domain.Identity, id string, input ports.UpdateDeveloperInput) ([]domain.Account, error) {
	return f.updateFn(ctx, identity, id, input)
}

func (f *fakeDeveloperService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	return f.deleteFn(ctx, identity, id)
}

func (f *fakeDeveloperService) Dashboard(ctx context.Context, identity *domain.Identity) (*ports.DashboardView, error) {
	return f.dashboardFn(ctx, identity)
}

type fakeAssetService struct {
	listFn   func(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.Asset, error)
	assignFn func(ctx context.Context, identity *domain.Identity, developerID string, input ports.AssignAssetInput) ([]domain.Asset, error)
	removeFn func(ctx context.Context, identity *domain.Identity, developerID, assetID string) ([]domain.Asset, error)
}

func (f *fakeAssetService) List(ctx context.Context, identity *domain.Identity, developerID string) ([]domain.Asset, error) {
	return f.listFn(ctx, identity, developerID)
}

func (f *fakeAssetService) Assign(ctx context.Context, identity *domain.Identity, developerID string, input ports.AssignAssetInput) ([]domain.Asset, error) {
	return f.assignFn(ctx, identity, developerID, input)
}

func (f *fakeAssetService) Remove(ctx context.Context, identity *domain.Identity, developerID, assetID string) ([]domain.Asset, error) {
	return f.removeFn(ctx, identity, developerID, assetID)
}
