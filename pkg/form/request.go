package form

import "strconv"

// Request is the calculation payload. Field values are sent verbatim; unset
// fields are empty strings.
type Request struct {
	VesselType   string `json:"vessel_type"`
	SubType      string `json:"sub_type"`
	Speed        string `json:"speed"`
	BollardPull  string `json:"bollardPull"`
	LOA          string `json:"loa"`
	Width        string `json:"width"`
	Draft        string `json:"draft"`
	NumEngines   string `json:"numEngines"`
	EnginePower  string `json:"enginePower"`
	EngineRPM    string `json:"engineRPM"`
	GearboxRatio string `json:"gearboxRatio"`
}

// Get returns the raw value of a specification field.
func (r Request) Get(key string) string {
	switch key {
	case KeySpeed:
		return r.Speed
	case KeyBollardPull:
		return r.BollardPull
	case KeyLOA:
		return r.LOA
	case KeyWidth:
		return r.Width
	case KeyDraft:
		return r.Draft
	case KeyNumEngines:
		return r.NumEngines
	case KeyEnginePower:
		return r.EnginePower
	case KeyEngineRPM:
		return r.EngineRPM
	case KeyGearboxRatio:
		return r.GearboxRatio
	default:
		return ""
	}
}

// Float parses a field, returning fallback for empty, unparsable, or zero
// values.
func (r Request) Float(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(r.Get(key), 64)
	if err != nil || value == 0 {
		return fallback
	}
	return value
}
