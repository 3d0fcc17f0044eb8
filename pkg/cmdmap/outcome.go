package cmdmap

// Outcome is the result of Run: either the value returned by the command
// or the Halt marker.
type Outcome struct {
	// Value is the command's return value. Always nil when halted.
	Value any

	halted bool
}

// Halt tells the host that no valid dispatch occurred and it should show
// usage and stop. A command body may return Halt as its value.
var Halt = Outcome{halted: true}

// Halted reports whether the outcome is the Halt marker.
func (o Outcome) Halted() bool {
	return o.halted
}

func outcomeOf(v any) Outcome {
	switch o := v.(type) {
	case Outcome:
		return o
	case *Outcome:
		if o != nil {
			return *o
		}
	}
	return Outcome{Value: v}
}
