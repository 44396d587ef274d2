// Package term runs the ball game in a terminal using tcell.
//
// The arena is scaled onto the terminal grid inside a box border, with the
// player drawn as '@' and enemies as 'o'. Terminals report key presses but
// not releases, so a movement key stays held for a short window after each
// press (auto-repeat keeps it alive while the key is down). Tones are played
// through gopxl/beep when sound is enabled.
//
//	err := term.Run(ctx, ballgame.DefaultConfig(), term.Options{Sound: true})
package term
