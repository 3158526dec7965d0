package thicket

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// pushPrefix marks a keymap action that pushes a registered state type.
const pushPrefix = "push:"

// Keymap holds per-state input bindings loaded from YAML:
//
//	states:
//	  play:
//	    escape: Quit
//	    p: push:pause
//	  pause:
//	    p: Resume
//
// A binding is either the name of a method on the state, or "push:" followed
// by a name in the StateRegistry passed to Config.
type Keymap struct {
	States map[string]map[Symbol]string `yaml:"states"`
}

// StateRegistry names state types for "push:" bindings.
type StateRegistry map[string]StateType

// LoadKeymap parses YAML keymap data. Symbols the ebiten keyboard can't map
// are rejected.
func LoadKeymap(data []byte) (*Keymap, error) {
	km := &Keymap{}
	if err := yaml.Unmarshal(data, km); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	for state, bindings := range km.States {
		for sym, action := range bindings {
			if !KnownSymbol(sym) {
				return nil, fmt.Errorf("parse keymap: state %q: unknown symbol %q", state, sym)
			}
			if strings.TrimSpace(action) == "" {
				return nil, fmt.Errorf("parse keymap: state %q: symbol %q has no action", state, sym)
			}
		}
	}
	return km, nil
}

// LoadKeymapFile reads and parses the keymap at path.
func LoadKeymapFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadKeymap(data)
}

// Config resolves the bindings of state into an InputConfig. An unknown
// state yields a nil config. "push:" bindings must name a registered type.
func (km *Keymap) Config(state string, reg StateRegistry) (InputConfig, error) {
	bindings, ok := km.States[state]
	if !ok {
		return nil, nil
	}
	cfg := make(InputConfig, len(bindings))
	for sym, action := range bindings {
		action = strings.TrimSpace(action)
		if name, ok := strings.CutPrefix(action, pushPrefix); ok {
			t, ok := reg[strings.TrimSpace(name)]
			if !ok {
				return nil, fmt.Errorf("keymap: state %q: symbol %q pushes unregistered state %q", state, sym, name)
			}
			cfg[sym] = StateOf(t)
			continue
		}
		cfg[sym] = Method(action)
	}
	return cfg, nil
}
