package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// AssetResponse payload for one imported asset record.
type AssetResponse struct {
	Hostname     string `json:"hostname"`
	SerialNumber string `json:"serial_number"`
	Model        string `json:"model"`
	LocationName string `json:"location_name"`
	CustomerName string `json:"customer_name"`
}

// AssetFromDomain converts an asset for responses.
func AssetFromDomain(asset domain.Asset) AssetResponse {
	return AssetResponse{
		Hostname:     asset.Hostname,
		SerialNumber: asset.SerialNumber,
		Model:        asset.Model,
		LocationName: asset.LocationName,
		CustomerName: asset.CustomerName,
	}
}
