package thicket

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Symbol Symbol `yaml:"symbol,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of an input script file.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// InputScript sequences synthetic key presses and screenshots across frames,
// for automated visual testing and replaying bug reports. Attach to a Window
// via SetInputScript.
//
// Recognized step actions:
//
//	press      hold symbol down
//	release    let symbol go
//	tap        hold symbol for `frames` frames (default 1), then release it
//	wait       do nothing for `frames` frames
//	screenshot capture the frame under `label`
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	tapped    Symbol
	done      bool
	warned    bool
}

// LoadInputScript parses a YAML (or JSON) input script.
func LoadInputScript(data []byte) (*InputScript, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "tap":
			if st.Symbol == "" {
				return nil, fmt.Errorf("parse input script: step %d: %s needs a symbol", i, st.Action)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Done reports whether every step has run.
func (s *InputScript) Done() bool {
	return s.done
}

// Step advances the script by one frame. Key steps act on the window's
// Keyboard and are skipped if its input is something else; taps still take
// their frames.
func (s *InputScript) Step(w *Window) {
	if s.done {
		return
	}
	k := w.keyboard
	if s.waitCount > 0 {
		s.waitCount--
		if s.waitCount > 0 {
			return
		}
		if s.tapped != "" {
			if k != nil {
				k.Release(s.tapped)
			}
			s.tapped = ""
		}
		if s.cursor >= len(s.steps) {
			s.done = true
		}
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	if k == nil && st.Symbol != "" && !s.warned {
		s.warned = true
		if w.debug {
			logf("input script: window input is %T, not *Keyboard; skipping key steps", w.input)
		}
	}

	switch st.Action {
	case "press":
		if k != nil {
			k.Press(st.Symbol)
		}
	case "release":
		if k != nil {
			k.Release(st.Symbol)
		}
	case "tap":
		if k != nil {
			k.Press(st.Symbol)
		}
		s.tapped = st.Symbol
		s.waitCount = max(st.Frames, 1)
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
