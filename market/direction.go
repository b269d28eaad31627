// market/direction.go
package market

// Direction is the side of a trade. Flat means "no position": it is never
// planned by the user, only recommended by the judgment engine or used to
// bucket historical records.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
	Flat  Direction = "flat"
)

// ParseDirection normalizes a stored direction string. Empty and unknown
// values fall back to Long, matching the journal's legacy default.
func ParseDirection(s string) Direction {
	switch Direction(s) {
	case Long, Short, Flat:
		return Direction(s)
	default:
		return Long
	}
}

func (d Direction) Valid() bool {
	return d == Long || d == Short || d == Flat
}

func (d Direction) String() string {
	return string(d)
}
