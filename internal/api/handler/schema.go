package handler

import (
	"time"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// errorResponse is the standard error envelope returned on 4xx/5xx
// responses that are not field-validation failures (those return the
// field → messages map directly).
type errorResponse struct {
	Error string `json:"error"`
}

// developerResponse is the roster serialization of a developer
// account. Credentials and role flags are never included.
type developerResponse struct {
	LastLogin *string `json:"last_login"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	IsActive  bool    `json:"is_active"`
}

type assetResponse struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Type      string `json:"type"`
	Developer string `json:"developer"`
}

type licenseResponse struct {
	ID        string `json:"id"`
	Software  string `json:"software"`
	Developer string `json:"developer"`
}

// developerWithAssetsResponse is one row of the overview envelope.
type developerWithAssetsResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Assets   []assetResponse `json:"assets"`
}

type developerWithLicensesResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Licenses []licenseResponse `json:"licenses"`
}

// overviewResponse is the GET /developers envelope: the same roster
// twice, once with assets and once with licenses.
type overviewResponse struct {
	Assets   []developerWithAssetsResponse   `json:"assets"`
	Licenses []developerWithLicensesResponse `json:"licenses"`
}

func toDeveloperResponse(a domain.Account) developerResponse {
	var lastLogin *string
	if a.LastLogin != nil {
		s := a.LastLogin.UTC().Format(time.RFC3339)
		lastLogin = &s
	}
	return developerResponse{
		LastLogin: lastLogin,
		Email:     a.Email,
		Username:  a.Username,
		IsActive:  a.IsActive,
	}
}

func toDeveloperResponses(accounts []domain.Account) []developerResponse {
	out := make([]developerResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toDeveloperResponse(a))
	}
	return out
}

func toAssetResponse(a domain.Asset) assetResponse {
	return assetResponse{
		ID:        a.ID,
		Brand:     a.Brand,
		Model:     a.Model,
		Type:      string(a.Type),
		Developer: a.DeveloperID,
	}
}

func toAssetResponses(assets []domain.Asset) []assetResponse {
	out := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}
	return out
}

func toLicenseResponse(l domain.License) licenseResponse {
	return licenseResponse{
		ID:        l.ID,
		Software:  l.Software,
		Developer: l.DeveloperID,
	}
}

func toLicenseResponses(licenses []domain.License) []licenseResponse {
	out := make([]licenseResponse, 0, len(licenses))
	for _, l := range licenses {
		out = append(out, toLicenseResponse(l))
	}
	return out
}

func toOverviewResponse(o *ports.DeveloperOverview) overviewResponse {
	resp := overviewResponse{
		Assets:   make([]developerWithAssetsResponse, 0, len(o.Assets)),
		Licenses: make([]developerWithLicensesResponse, 0, len(o.Licenses)),
	}
	for _, row := range o.Assets {
		resp.Assets = append(resp.Assets, developerWithAssetsResponse{
			ID:       row.Developer.ID,
			Username: row.Developer.Username,
			Email:    row.Developer.Email,
			Assets:   toAssetResponses(row.Assets),
		})
	}
	for _, row := range o.Licenses {
		resp.Licenses = append(resp.Licenses, developerWithLicensesResponse{
			ID:       row.Developer.ID,
			Username: row.Developer.Username,
			Email:    row.Developer.Email,
			Licenses: toLicenseResponses(row.Licenses),
		})
	}
	return resp
}
