// core/primer/orientation.go
package primer

import "fmt"

// Orientation tells the matcher which end of the probe is the primer's 3' end.
type Orientation int

const (
	// Forward probes are read 5'→3' along the template, so the 3' end is the
	// last bases of the window.
	Forward Orientation = iota
	// Reverse probes are already reverse-complemented; the biological 3' end is
	// the first bases of the window.
	Reverse
)

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "forward"/"fwd"/"+" and "reverse"/"rev"/"-".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "forward", "fwd", "+":
		return Forward, nil
	case "reverse", "rev", "-":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("invalid orientation %q (want forward or reverse)", s)
}
