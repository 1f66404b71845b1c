package plans

import "strings"

// DefaultMET is used for exercise types missing from the table,
// and for exercises with no types at all.
const DefaultMET = 8.0

// metValues maps a normalized exercise type name to its metabolic equivalent.
var metValues = map[string]float64{
	"aerobic":             7.3,
	"calisthenics":        3.8,
	"cardio":              7.3,
	"crossfit":            8.0,
	"cycling":             7.5,
	"dancing":             5.0,
	"elliptical":          5.0,
	"hiit":                8.0,
	"hiking":              6.0,
	"jogging":             7.0,
	"jump rope":           12.3,
	"pilates":             3.0,
	"resistance training": 6.0,
	"rowing":              7.0,
	"running":             9.8,
	"stair climbing":      9.0,
	"strength training":   6.0,
	"stretching":          2.3,
	"swimming":            8.0,
	"walking":             3.5,
	"weight training":     6.0,
	"yoga":                2.5,
}

// METFor returns the MET of the named exercise type, case-insensitive,
// treating '_' and '-' like spaces. Unknown names get DefaultMET.
func METFor(typeName string) float64 {
	if met, ok := metValues[normalizeTypeName(typeName)]; ok {
		return met
	}
	return DefaultMET
}

func normalizeTypeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
