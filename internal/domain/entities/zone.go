package entities

import "strings"

// Zone is a destination region used for freight-rate and pricing grouping.
// Zones are static reference data: a set of member states plus the
// representative destination cities that calibration quotes against.

type Zone struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	States       []string      `json:"states"`
	Destinations []Destination `json:"destinations"`
}

// Destination is a representative city within a zone used as the quote
// endpoint during freight calibration.
type Destination struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

var zones = []Zone{
	{
		ID: "zone-se", Code: "SE", Name: "Southeast",
		States: []string{"GA", "FL", "AL", "SC", "NC", "TN", "MS"},
		Destinations: []Destination{
			{City: "Atlanta", State: "GA", Zip: "30303"},
			{City: "Orlando", State: "FL", Zip: "32801"},
			{City: "Charlotte", State: "NC", Zip: "28202"},
		},
	},
	{
		ID: "zone-ne", Code: "NE", Name: "Northeast",
		States: []string{"PA", "NY", "NJ", "MA", "CT", "MD", "VA", "DE"},
		Destinations: []Destination{
			{City: "Philadelphia", State: "PA", Zip: "19107"},
			{City: "Newark", State: "NJ", Zip: "07102"},
			{City: "Boston", State: "MA", Zip: "02108"},
		},
	},
	{
		ID: "zone-mw", Code: "MW", Name: "Midwest",
		States: []string{"IL", "OH", "MI", "IN", "WI", "MN", "MO", "IA"},
		Destinations: []Destination{
			{City: "Chicago", State: "IL", Zip: "60607"},
			{City: "Columbus", State: "OH", Zip: "43215"},
		},
	},
	{
		ID: "zone-sw", Code: "SW", Name: "Southwest",
		States: []string{"TX", "OK", "AR", "LA", "NM", "AZ"},
		Destinations: []Destination{
			{City: "Dallas", State: "TX", Zip: "75201"},
			{City: "Houston", State: "TX", Zip: "77002"},
		},
	},
	{
		ID: "zone-we", Code: "WE", Name: "West",
		States: []string{"CA", "WA", "OR", "NV", "CO", "UT", "ID"},
		Destinations: []Destination{
			{City: "Los Angeles", State: "CA", Zip: "90021"},
			{City: "Seattle", State: "WA", Zip: "98134"},
		},
	},
}

// stateToZoneID is the canonical state -> zone mapping, derived from the zone
// member-state sets above. Every assignment path must resolve zones through
// ZoneForState; the legacy ZIP-prefix table below exists only so the startup
// consistency check can report drift against historical data.
var stateToZoneID = func() map[string]string {
	m := make(map[string]string)
	for _, z := range zones {
		for _, s := range z.States {
			m[s] = z.ID
		}
	}
	return m
}()

// legacyZipPrefixZoneID is the retired 3-digit ZIP-prefix lookup that customer
// spreadsheet import used before the mapping was unified. Kept for
// ZoneMappingDiscrepancies only; never consulted for assignment.
var legacyZipPrefixZoneID = map[string]string{
	"303": "zone-se", "328": "zone-se", "282": "zone-se", "370": "zone-se",
	"191": "zone-ne", "071": "zone-ne", "021": "zone-ne", "245": "zone-se", // 245 is VA: disagrees with the state table
	"606": "zone-mw", "432": "zone-mw", "532": "zone-mw",
	"752": "zone-sw", "770": "zone-sw", "871": "zone-sw",
	"900": "zone-we", "981": "zone-we", "802": "zone-we",
}

func Zones() []Zone { return zones }

func ZoneByID(id string) (Zone, bool) {
	for _, z := range zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// ZoneForState resolves the canonical zone for a two-letter state code.
func ZoneForState(state string) (Zone, bool) {
	id, ok := stateToZoneID[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return Zone{}, false
	}
	return ZoneByID(id)
}

// ZoneMappingDiscrepancies reports ZIP prefixes whose legacy zone assignment
// disagrees with the canonical state table. The two tables drifted apart while
// both were live; the canonical table wins, and routes.Run logs whatever this
// returns so the drift stays visible instead of silently reproduced.
func ZoneMappingDiscrepancies() map[string]string {
	zipState := map[string]string{
		"303": "GA", "328": "FL", "282": "NC", "370": "TN",
		"191": "PA", "071": "NJ", "021": "MA", "245": "VA",
		"606": "IL", "432": "OH", "532": "WI",
		"752": "TX", "770": "TX", "871": "NM",
		"900": "CA", "981": "WA", "802": "CO",
	}

	out := map[string]string{}
	for prefix, legacyZone := range legacyZipPrefixZoneID {
		state, ok := zipState[prefix]
		if !ok {
			continue
		}
		canonical, ok := stateToZoneID[state]
		if !ok || canonical != legacyZone {
			out[prefix] = legacyZone
		}
	}
	return out
}
