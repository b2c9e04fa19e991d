package deadline

import "fmt"

// UrgencyLevel is ordered: UrgencyLow < UrgencyMedium < UrgencyHigh < UrgencyCritical.
type UrgencyLevel int

const (
	UrgencyLow UrgencyLevel = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

var urgencyNames = [...]string{"low", "medium", "high", "critical"}

func (u UrgencyLevel) String() string {
	if u < UrgencyLow || u > UrgencyCritical {
		return fmt.Sprintf("urgency(%d)", int(u))
	}
	return urgencyNames[u]
}

// MarshalText encodes the level by name so JSON payloads stay readable.
func (u UrgencyLevel) MarshalText() ([]byte, error) {
	if u < UrgencyLow || u > UrgencyCritical {
		return nil, fmt.Errorf("unknown urgency level %d", int(u))
	}
	return []byte(urgencyNames[u]), nil
}

func (u *UrgencyLevel) UnmarshalText(text []byte) error {
	for i, name := range urgencyNames {
		if name == string(text) {
			*u = UrgencyLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown urgency level %q", string(text))
}
