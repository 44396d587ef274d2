package ballgame

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys,omitempty"`
	Label  string   `json:"label,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Frame is what a ScriptRunner produces for one tick.
type Frame struct {
	Keys KeyState
	// Mark is the label of a "mark" step executed this frame, or "".
	Mark string
	// Quit is set when a "quit" step ran; the host should stop.
	Quit bool
}

// ScriptRunner replays scripted key input one frame at a time. Hosts use it
// in place of the keyboard for demos and automated runs.
//
// Supported actions:
//
//	{"action": "hold", "keys": ["left", "up"], "frames": 30}
//	{"action": "release"}
//	{"action": "wait", "frames": 10}
//	{"action": "mark", "label": "before-hit"}
//	{"action": "quit"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	keys      KeyState
	done      bool
}

var keyNames = map[string]func(*KeyState){
	"left":  func(k *KeyState) { k.Left = true },
	"a":     func(k *KeyState) { k.Left = true },
	"right": func(k *KeyState) { k.Right = true },
	"d":     func(k *KeyState) { k.Right = true },
	"up":    func(k *KeyState) { k.Up = true },
	"w":     func(k *KeyState) { k.Up = true },
	"down":  func(k *KeyState) { k.Down = true },
	"s":     func(k *KeyState) { k.Down = true },
}

// LoadScript parses a JSON input script and returns a runner positioned at
// its first step.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("ballgame: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("ballgame: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "hold":
			for _, k := range st.Keys {
				if _, ok := keyNames[k]; !ok {
					return nil, fmt.Errorf("ballgame: parse script: step %d: unknown key %q", i, k)
				}
			}
		case "release", "wait", "mark", "quit":
		default:
			return nil, fmt.Errorf("ballgame: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Next advances the runner by one frame.
func (r *ScriptRunner) Next() Frame {
	if r.done {
		return Frame{}
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finishIfDrained()
		return Frame{Keys: r.keys}
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return Frame{}
	}

	st := r.steps[r.cursor]
	r.cursor++

	var f Frame
	switch st.Action {
	case "hold":
		r.keys = KeyState{}
		for _, k := range st.Keys {
			keyNames[k](&r.keys)
		}
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "release":
		r.keys = KeyState{}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "mark":
		f.Mark = st.Label
	case "quit":
		r.done = true
		f.Quit = true
		return f
	}
	f.Keys = r.keys
	r.finishIfDrained()
	return f
}

func (r *ScriptRunner) finishIfDrained() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// RunScript steps sim with input from r until the script finishes, using a
// fixed dt per frame. Each tick's signals go to l, which may be nil. The
// results of every tick are returned in order.
func RunScript(sim *Simulation, r *ScriptRunner, dt float64, l Listener) []TickResult {
	var out []TickResult
	for !r.Done() {
		f := r.Next()
		if f.Quit {
			break
		}
		res := sim.Step(dt, f.Keys)
		res.Dispatch(l)
		out = append(out, res)
	}
	return out
}
