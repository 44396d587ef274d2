package ballgame

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// TickResult carries the signals produced by one Step. It is returned by
// value and never queued, so a signal cannot leak into the next tick.
type TickResult struct {
	Tick uint64

	// WallContact is set when at least one enemy reflected off a wall.
	WallContact bool
	// Bounces counts the enemies that reflected this tick.
	Bounces int

	// PlayerHit is set on the tick the player was removed; HitBy names the
	// enemy that touched it.
	PlayerHit bool
	HitBy     BodyID
}

// Listener reacts to tick signals, typically with sound or visual effects.
type Listener interface {
	// OnWallContact is called at most once per tick.
	OnWallContact()
	// OnPlayerHit is called once, on the tick the player is removed.
	OnPlayerHit(by BodyID)
}

// Dispatch delivers r to l. A nil listener is ignored.
func (r TickResult) Dispatch(l Listener) {
	if l == nil {
		return
	}
	if r.WallContact {
		l.OnWallContact()
	}
	if r.PlayerHit {
		l.OnPlayerHit(r.HitBy)
	}
}

// Listeners fans a tick out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnWallContact() {
	for _, l := range ls {
		l.OnWallContact()
	}
}

func (ls Listeners) OnPlayerHit(by BodyID) {
	for _, l := range ls {
		l.OnPlayerHit(by)
	}
}
