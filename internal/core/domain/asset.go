package domain

// AssetType enumerates the hardware categories that can be assigned.
type AssetType string

const (
	AssetLaptop   AssetType = "laptop"
	AssetKeyboard AssetType = "keyboard"
	AssetMouse    AssetType = "mouse"
	AssetHeadset  AssetType = "headset"
	AssetMonitor  AssetType = "monitor"
)

// AssetTypes lists every valid asset type, in declaration order.
var AssetTypes = []AssetType{AssetLaptop, AssetKeyboard, AssetMouse, AssetHeadset, AssetMonitor}

// Valid reports whether t is one of the enumerated asset types.
func (t AssetType) Valid() bool {
	for _, v := range AssetTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Asset is a piece of hardware assigned to exactly one developer.
type Asset struct {
	ID          string    `json:"id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Type        AssetType `json:"type"`
	DeveloperID string    `json:"developer"`
}
