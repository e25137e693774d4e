package estimate

// Field identifies one of the two calculator inputs.
type Field int

const (
	// CallsPerDay is the daily call volume.
	CallsPerDay Field = iota
	// CallDuration is the average call length in minutes.
	CallDuration
	fieldCount
)

// NumFields is the number of calculator inputs.
const NumFields = int(fieldCount)

// Fields lists the inputs in display order.
var Fields = []Field{CallsPerDay, CallDuration}

func (f Field) String() string {
	switch f {
	case CallsPerDay:
		return "Daily Call Volume"
	case CallDuration:
		return "Average Call Duration"
	}
	return "unknown"
}

// Next returns the field after f, wrapping around.
func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

// Prev returns the field before f, wrapping around.
func (f Field) Prev() Field {
	return (f + fieldCount - 1) % fieldCount
}

// Inputs is the raw text of both fields. Values only change through Set,
// so both always satisfy Accept.
type Inputs struct {
	callsPerDay  string
	callDuration string
}

// Get returns the current text of f.
func (in Inputs) Get(f Field) string {
	switch f {
	case CallsPerDay:
		return in.callsPerDay
	case CallDuration:
		return in.callDuration
	}
	return ""
}

// Set proposes a new value for f. The returned Inputs carries the value only
// if it was accepted; otherwise it equals the receiver.
func (in Inputs) Set(f Field, proposed string) (Inputs, bool) {
	if !Accept(proposed) {
		return in, false
	}
	switch f {
	case CallsPerDay:
		in.callsPerDay = proposed
	case CallDuration:
		in.callDuration = proposed
	default:
		return in, false
	}
	return in, true
}

// Estimate derives the monthly totals for the current values.
func (in Inputs) Estimate(r Rates) Estimate {
	return r.Calculate(in.callsPerDay, in.callDuration)
}
