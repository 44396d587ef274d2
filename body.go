package ballgame

// BodyID identifies an enemy for the lifetime of a simulation. IDs are
// assigned in spawn order starting at 1; 0 is never a valid ID.
type BodyID uint32

// BodyKind distinguishes the two body classes.
type BodyKind uint8

const (
	KindPlayer BodyKind = iota // the keyboard-driven ball
	KindEnemy                  // a self-propelled ball that bounces off walls
)

// String returns the lower-case kind name.
func (k BodyKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Body is a circular object taking part in the simulation.
//
// For enemies Velocity is the unit direction of travel; the simulation
// multiplies it by the enemy speed when advancing. For the player Velocity is
// the direction most recently supplied by the host.
type Body struct {
	ID       BodyID
	Kind     BodyKind
	Position Vec2
	Velocity Vec2
	Radius   float64
}

// Overlaps reports whether b and o intersect. Touching circles whose centers
// are exactly Radius+Radius apart do not overlap.
func (b Body) Overlaps(o Body) bool {
	return b.Position.Distance(o.Position) < b.Radius+o.Radius
}
