package classify

// Band is the documented nominal operating range for one sensor metric.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether the value lies inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// NominalBands holds the per-metric nominal ranges for a machine type. Bands
// drive the contributing-signal explanation only; the maintenance verdict
// comes from the predictor alone.
type NominalBands struct {
	Temperature Band
	Vibration   Band
	Pressure    Band
}

// DefaultBands documents the nominal operating ranges per machine type, taken
// from the plant equipment datasheets. Types without an entry fall back to
// the "" default.
var DefaultBands = map[string]NominalBands{
	"Pump":       {Temperature: Band{50, 80}, Vibration: Band{0.5, 3.0}, Pressure: Band{250, 350}},
	"Motor":      {Temperature: Band{50, 80}, Vibration: Band{0.5, 3.0}, Pressure: Band{100, 200}},
	"Turbine":    {Temperature: Band{120, 180}, Vibration: Band{0.5, 3.0}, Pressure: Band{400, 600}},
	"Compressor": {Temperature: Band{50, 85}, Vibration: Band{0.5, 3.2}, Pressure: Band{150, 250}},
	"Gearbox":    {Temperature: Band{50, 80}, Vibration: Band{0.5, 3.0}, Pressure: Band{100, 200}},
	"HVAC":       {Temperature: Band{40, 70}, Vibration: Band{0.5, 3.0}, Pressure: Band{100, 150}},
	"Robot":      {Temperature: Band{40, 80}, Vibration: Band{0.5, 3.0}, Pressure: Band{80, 150}},
	"":           {Temperature: Band{50, 80}, Vibration: Band{0.5, 3.0}, Pressure: Band{50, 600}},
}

// BandsFor returns the nominal bands for the machine type, falling back to
// the default entry.
func BandsFor(bands map[string]NominalBands, machineType string) NominalBands {
	if b, ok := bands[machineType]; ok {
		return b
	}
	return bands[""]
}
