package form

// Field keys, in display order.
const (
	KeySpeed        = "speed"
	KeyBollardPull  = "bollardPull"
	KeyLOA          = "loa"
	KeyWidth        = "width"
	KeyDraft        = "draft"
	KeyNumEngines   = "numEngines"
	KeyEnginePower  = "enginePower"
	KeyEngineRPM    = "engineRPM"
	KeyGearboxRatio = "gearboxRatio"
)

// Field describes one specification input.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

// Placeholder returns the hint shown in an empty input.
func (f Field) Placeholder() string {
	return "Enter " + f.Label
}

var fields = []Field{
	{Key: KeySpeed, Label: "Speed", Unit: "kn"},
	{Key: KeyBollardPull, Label: "Bollard Pull", Unit: "t"},
	{Key: KeyLOA, Label: "LOA", Unit: "m"},
	{Key: KeyWidth, Label: "Width", Unit: "m"},
	{Key: KeyDraft, Label: "Draft", Unit: "m"},
	{Key: KeyNumEngines, Label: "Number of Engines"},
	{Key: KeyEnginePower, Label: "Engine Power", Unit: "kW"},
	{Key: KeyEngineRPM, Label: "Engine RPM", Unit: "rpm"},
	{Key: KeyGearboxRatio, Label: "Gearbox Ratio", Unit: ":1"},
}

// Fields returns the field definitions in display order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// Lookup returns the definition for key.
func Lookup(key string) (Field, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}
