package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for an intent the current view cannot handle.
var ErrInvalidTransition = errors.New("nav: invalid transition")

// Next is the transition function. It never mutates its inputs and returns an
// error wrapping ErrInvalidTransition for any pair not in the table.
func Next(current View, in Intent) (View, error) {
	if current == nil || in == nil {
		return current, fmt.Errorf("%w: missing view or intent", ErrInvalidTransition)
	}

	if nav, ok := in.(Navigate); ok {
		if !IsTab(current.Name()) {
			return current, invalid(current, in)
		}
		to, ok := ViewFor(nav.To)
		if !ok {
			return current, fmt.Errorf("%w: %s is not a tab", ErrInvalidTransition, nav.To)
		}
		return to, nil
	}

	switch v := current.(type) {
	case Dashboard:
		switch in := in.(type) {
		case NewEntry:
			return BlankWrite(), nil
		case SelectItem:
			return ReadItem{Item: in.Item}, nil
		case SelectEntry:
			return EditWrite(in.Entry), nil
		}
	case Journal:
		switch in := in.(type) {
		case NewEntry:
			return BlankWrite(), nil
		case SelectEntry:
			return EditWrite(in.Entry), nil
		}
	case Library:
		switch in := in.(type) {
		case SelectItem:
			return ReadItem{Item: in.Item}, nil
		case Discover:
			return Library{}, nil
		}
	case ReadItem:
		switch in.(type) {
		case Reflect:
			return ReflectWrite(v.Item), nil
		case Back:
			return Library{}, nil
		}
	case Write:
		switch in.(type) {
		case Save, Cancel:
			return Journal{}, nil
		}
	}
	return current, invalid(current, in)
}

func invalid(current View, in Intent) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, in.Kind(), current.Name())
}

// Machine holds the current view for the lifetime of the app. It starts on
// the Dashboard and has no terminal state.
type Machine struct {
	current View
}

// NewMachine returns a machine at the initial view.
func NewMachine() *Machine {
	return &Machine{current: Dashboard{}}
}

// Current returns the current view.
func (m *Machine) Current() View {
	return m.current
}

// Apply moves to the next view. On error the current view is unchanged.
func (m *Machine) Apply(in Intent) error {
	next, err := Next(m.current, in)
	if err != nil {
		return err
	}
	m.current = next
	return nil
}
