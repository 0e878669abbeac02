package record

// ControlKind is the control attribute of a device record.
// It is a closed union: the only implementations are Voltage and Power.
type ControlKind interface {
	// Tag returns the wire element name for the active variant.
	Tag() string

	// Value returns the numeric payload.
	Value() float32

	controlKind()
}

// Voltage is a voltage setpoint in volts.
type Voltage float32

// Tag returns the wire element name.
func (Voltage) Tag() string { return "Voltage" }

// Value returns the voltage in volts.
func (v Voltage) Value() float32 { return float32(v) }

func (Voltage) controlKind() {}

// Power is a power setpoint in watts.
type Power float32

// Tag returns the wire element name.
func (Power) Tag() string { return "Power" }

// Value returns the power in watts.
func (p Power) Value() float32 { return float32(p) }

func (Power) controlKind() {}
