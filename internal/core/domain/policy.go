package domain

// Operation identifies a guarded resource operation for the
// authorization policy.
type Operation string

const (
	OpListDevelopers  Operation = "developers.list"
	OpCreateDeveloper Operation = "developers.create"
	OpUpdateDeveloper Operation = "developers.update"
	OpDeleteDeveloper Operation = "developers.delete"
	OpListAssets      Operation = "assets.list"
	OpAssignAsset     Operation = "assets.assign"
	OpRemoveAsset     Operation = "assets.remove"
	OpListLicenses    Operation = "licenses.list"
	OpAssignLicense   Operation = "licenses.assign"
	OpRemoveLicense   Operation = "licenses.remove"
	OpViewDashboard   Operation = "dashboard.view"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionUnauthenticated
	DecisionForbidden
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionForbidden:
		return "forbidden"
	}
	return "unknown"
}

// Authorize is the single policy consulted by every resource
// operation. All mutating and cross-developer operations are
// admin-only; the dashboard is open to any authenticated caller (own
// data only for non-admins). Pure function of its arguments.
func Authorize(identity *Identity, op Operation) Decision {
	if identity == nil {
		return DecisionUnauthenticated
	}
	if op == OpViewDashboard {
		return DecisionAllowed
	}
	if !identity.IsAdmin {
		return DecisionForbidden
	}
	return DecisionAllowed
}

// Err converts a non-allowed decision into its domain error. Returns
// nil for DecisionAllowed.
func (d Decision) Err() error {
	switch d {
	case DecisionUnauthenticated:
		return ErrUnauthenticated
	case DecisionForbidden:
		return ErrForbidden
	}
	return nil
}
