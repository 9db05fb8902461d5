package nav

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func intentAt(i int) Intent {
	all := []Intent{
		Navigate{To: NameDashboard},
		Navigate{To: NameJournal},
		Navigate{To: NameLibrary},
		Navigate{To: NameWrite},
		NewEntry{},
		SelectEntry{Entry: testEntry},
		SelectItem{Item: testItem},
		Reflect{},
		Back{},
		Save{Content: "hola"},
		Cancel{},
		Discover{},
	}
	return all[i%len(all)]
}

func intentSequence() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 11))
}

func TestPropertyMachine(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("rejected intents leave the view unchanged", prop.ForAll(
		func(seq []int) bool {
			m := NewMachine()
			for _, i := range seq {
				before := m.Current()
				err := m.Apply(intentAt(i))
				if err != nil {
					if !errors.Is(err, ErrInvalidTransition) || !reflect.DeepEqual(before, m.Current()) {
						return false
					}
				}
				if m.Current() == nil {
					return false
				}
			}
			return true
		},
		intentSequence(),
	))

	properties.Property("navigate is only accepted between tabs", prop.ForAll(
		func(seq []int) bool {
			m := NewMachine()
			for _, i := range seq {
				in := intentAt(i)
				from := m.Current().Name()
				err := m.Apply(in)
				nav, ok := in.(Navigate)
				if !ok {
					continue
				}
				wantOK := IsTab(from) && IsTab(nav.To)
				if (err == nil) != wantOK {
					return false
				}
				if err == nil && m.Current().Name() != nav.To {
					return false
				}
			}
			return true
		},
		intentSequence(),
	))

	properties.Property("a linked write only follows reflect", prop.ForAll(
		func(seq []int) bool {
			m := NewMachine()
			for _, i := range seq {
				in := intentAt(i)
				from := m.Current()
				if err := m.Apply(in); err != nil {
					continue
				}
				w, ok := m.Current().(Write)
				if !ok || w.Linked == nil {
					continue
				}
				if _, reading := from.(ReadItem); !reading || in.Kind() != KindReflect {
					return false
				}
				if w.Linked.ID != testItem.ID || w.Editing() {
					return false
				}
			}
			return true
		},
		intentSequence(),
	))

	properties.Property("leaving the editor always lands on the journal", prop.ForAll(
		func(seq []int) bool {
			m := NewMachine()
			for _, i := range seq {
				in := intentAt(i)
				_, writing := m.Current().(Write)
				err := m.Apply(in)
				if writing && (in.Kind() == KindSave || in.Kind() == KindCancel) {
					if err != nil || m.Current().Name() != NameJournal {
						return false
					}
				}
			}
			return true
		},
		intentSequence(),
	))

	properties.TestingRun(t)
}
