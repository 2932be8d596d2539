// Package state holds the demo application state and the transitions
// triggered by key input.
package state

import (
	"fmt"
	"math"
)

// Action identifies the state transition a key press triggers.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTick
	ActionUp
	ActionDown
	ActionAdd
	ActionDelete
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionQuit:   "quit",
	ActionTick:   "tick",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionAdd:    "add",
	ActionDelete: "delete",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// MaxProgress is the gauge percentage a counter value is clamped to.
const MaxProgress = 100

// State is the application state. It has a single owner and is mutated
// only through Tick and Apply.
type State struct {
	Counter    uint8
	ShouldQuit bool
	Items      []string
	// Selected is only meaningful while Items is non-empty. Deleting the
	// last item leaves it untouched.
	Selected int
}

// New returns the startup state: five items, first selected, counter at zero.
func New() *State {
	return &State{
		Items: []string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5"},
	}
}

// Tick increments the counter, saturating at its maximum.
func (s *State) Tick() {
	if s.Counter < math.MaxUint8 {
		s.Counter++
	}
}

// Apply performs a single transition. Every action is defined for every
// state; boundaries clamp instead of failing.
func (s *State) Apply(a Action) {
	switch a {
	case ActionQuit:
		s.ShouldQuit = true
	case ActionTick:
		s.Tick()
	case ActionUp:
		if s.Selected > 0 {
			s.Selected--
		}
	case ActionDown:
		if s.Selected < len(s.Items)-1 {
			s.Selected++
		}
	case ActionAdd:
		s.Items = append(s.Items, fmt.Sprintf("New Item %d", len(s.Items)+1))
	case ActionDelete:
		s.deleteSelected()
	}
}

func (s *State) deleteSelected() {
	if !s.validSelection() {
		return
	}

	s.Items = append(s.Items[:s.Selected], s.Items[s.Selected+1:]...)
	if s.Selected >= len(s.Items) && s.Selected > 0 {
		s.Selected--
	}
}

func (s *State) validSelection() bool {
	return s.Selected >= 0 && s.Selected < len(s.Items)
}

// SelectedItem returns the label under the selection, if any.
func (s *State) SelectedItem() (string, bool) {
	if !s.validSelection() {
		return "", false
	}
	return s.Items[s.Selected], true
}

// Progress returns the gauge percentage: the counter clamped to 100.
func (s *State) Progress() int {
	return min(int(s.Counter), MaxProgress)
}
