// Package keymap loads key bindings from YAML files.
//
// A binding file looks like this:
//
//	bindings:
//	  - key: Ctrl-d
//	    action: quit
//	  - key: CursorUp
//	    action: print
//	    message: "up!"
//
// Keys use the syntax of ui.ParseKey.
package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elves/keyhandler/pkg/errutil"
	"github.com/elves/keyhandler/pkg/ui"
)

// Action is what happens when a bound key is pressed.
type Action int

// Possible values of Action.
const (
	// Print writes the binding's message, or the key if there is no message.
	Print Action = iota
	// Quit stops listening for keys.
	Quit
	// RecordToggle turns recording of key presses on or off.
	RecordToggle
)

var actionNames = []string{
	Print:        "print",
	Quit:         "quit",
	RecordToggle: "record-toggle",
}

func (a Action) String() string {
	if 0 <= int(a) && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("!(bad action %d)", int(a))
}

// ParseAction parses the name of an action.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if s == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("bad action: %q", s)
}

// Binding binds a key to an action.
type Binding struct {
	Key     ui.Key
	Action  Action
	Message string
}

// Keymap is an ordered list of bindings.
type Keymap struct {
	Bindings []Binding
}

// Default is used when no binding file is given.
var Default = &Keymap{Bindings: []Binding{
	{Key: ui.MakeKey(ui.D, ui.Ctrl), Action: Quit},
	{Key: ui.MakeKey(ui.R, ui.Ctrl), Action: RecordToggle},
}}

// ErrNoBindings is returned when a binding file contains no bindings.
var ErrNoBindings = errors.New("no bindings")

type bindingFile struct {
	Bindings []bindingEntry `yaml:"bindings"`
}

type bindingEntry struct {
	Key     string `yaml:"key"`
	Action  string `yaml:"action"`
	Message string `yaml:"message"`
}

// Load reads and parses the binding file with the given name.
func Load(fname string) (*Keymap, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	km, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return km, nil
}

// ParseBytes is like Parse, but reads from a byte slice.
func ParseBytes(data []byte) (*Keymap, error) {
	return Parse(bytes.NewReader(data))
}

// Parse parses a binding file. Unknown fields are rejected. All invalid
// bindings are reported, not just the first one.
func Parse(r io.Reader) (*Keymap, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file bindingFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, ErrNoBindings
		}
		return nil, err
	}
	if len(file.Bindings) == 0 {
		return nil, ErrNoBindings
	}

	km := &Keymap{}
	var errs []error
	for i, entry := range file.Bindings {
		b, err := entry.binding()
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d: %w", i+1, err))
			continue
		}
		km.Bindings = append(km.Bindings, b)
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return km, nil
}

func (e bindingEntry) binding() (Binding, error) {
	if e.Key == "" {
		return Binding{}, errors.New("missing key")
	}
	k, err := ui.ParseKey(e.Key)
	if err != nil {
		return Binding{}, err
	}
	a, err := ParseAction(e.Action)
	if err != nil {
		return Binding{}, err
	}
	if e.Message != "" && a != Print {
		return Binding{}, fmt.Errorf("message given for action %s", a)
	}
	return Binding{Key: k, Action: a, Message: e.Message}, nil
}

// Lookup returns the bindings for the given key, in the order they appear in
// the keymap.
func (km *Keymap) Lookup(k ui.Key) []Binding {
	var bs []Binding
	for _, b := range km.Bindings {
		if b.Key == k {
			bs = append(bs, b)
		}
	}
	return bs
}

// Keys returns the distinct keys bound in the keymap, in the order of their
// first appearance.
func (km *Keymap) Keys() []ui.Key {
	seen := make(map[ui.Key]bool)
	var keys []ui.Key
	for _, b := range km.Bindings {
		if !seen[b.Key] {
			seen[b.Key] = true
			keys = append(keys, b.Key)
		}
	}
	return keys
}
