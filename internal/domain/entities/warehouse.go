package entities

// Warehouse is a shipping origin location.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Warehouses are reference data created by admin import and rarely mutated.
// An active warehouse must serve at least one zone; the calibration run skips
// inactive warehouses entirely.

type Warehouse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Zip            string   `json:"zip"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Active         bool     `json:"active"`
	ServedZoneIDs  []string `json:"served_zone_ids"`
	OrganizationID string   `json:"organization_id"`
}

func (w Warehouse) ServesZone(zoneID string) bool {
	for _, z := range w.ServedZoneIDs {
		if z == zoneID {
			return true
		}
	}
	return false
}
