package symbols

// DefaultSynonyms maps normalized domain jargon to the canonical catalog
// family it belongs to. Exact names rarely match field vocabulary
// directly ("knockout drum" is a separator, every "* valve" is a valve),
// so the matcher consults this table before falling back to scoring.
//
// A synonym only applies when its target actually exists in the loaded
// catalog; otherwise matching proceeds to the scored stage.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		// Valves
		"ball_valve":     "valve",
		"gate_valve":     "valve",
		"globe_valve":    "valve",
		"check_valve":    "valve",
		"control_valve":  "valve",
		"solenoid_valve": "valve",
		"relief_valve":   "valve",
		"safety_valve":   "valve",
		"psv":            "valve",
		"cv":             "valve",

		// Heat transfer
		"hx":             "heat_exchanger",
		"condenser":      "heat_exchanger",
		"reboiler":       "heat_exchanger",
		"cooler":         "heat_exchanger",
		"heater":         "heat_exchanger",
		"exchanger":      "heat_exchanger",
		"heat_exchange":  "heat_exchanger",
		"shell_and_tube": "heat_exchanger",

		// Separation
		"knockout":      "separator",
		"knockout_drum": "separator",
		"ko_drum":       "separator",
		"cyclone":       "separator",
		"scrubber":      "separator",

		// Vessels
		"drum":      "vessel",
		"reservoir": "tank",
		"storage":   "tank",

		// Rotating equipment
		"blower":           "compressor",
		"fan":              "compressor",
		"centrifugal_pump": "pump",
		"feed_pump":        "pump",

		// Columns
		"tower":                "column",
		"distillation":         "column",
		"distillation_column":  "column",
		"fractionation":        "column",
		"fractionation_column": "column",

		// Instruments
		"pressure_transducer": "pressure_transmitter",
		"pt":                  "pressure_transmitter",
		"flowmeter":           "flow_meter",
		"uv":                  "uv_sterilizer",
		"strainer":            "filter",
	}
}
