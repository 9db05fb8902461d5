package nav

import (
	"tableflip.dev/serenitas/pkg/journal"
	"tableflip.dev/serenitas/pkg/library"
)

// Kind identifies an intent variant. Views advertise the kinds they can emit.
type Kind int

const (
	KindNavigate Kind = iota
	KindNewEntry
	KindSelectEntry
	KindSelectItem
	KindReflect
	KindBack
	KindSave
	KindCancel
	KindDiscover
)

var kindNames = map[Kind]string{
	KindNavigate:    "navigate",
	KindNewEntry:    "new-entry",
	KindSelectEntry: "select-entry",
	KindSelectItem:  "select-item",
	KindReflect:     "reflect",
	KindBack:        "back",
	KindSave:        "save",
	KindCancel:      "cancel",
	KindDiscover:    "discover",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Intent is a user action emitted by a view.
type Intent interface {
	Kind() Kind
}

// Navigate switches between the tab views.
type Navigate struct {
	To Name
}

// NewEntry opens a blank editor.
type NewEntry struct{}

// SelectEntry opens an existing entry in the editor.
type SelectEntry struct {
	Entry journal.Entry
}

// SelectItem opens a library item in the reader.
type SelectItem struct {
	Item library.Item
}

// Reflect starts a new entry from the item being read.
type Reflect struct{}

// Back leaves the reader.
type Back struct{}

// Save stores the editor contents.
type Save struct {
	Title   string
	Content string
}

// Cancel leaves the editor without saving.
type Cancel struct{}

// Discover adds a random corpus excerpt to the library.
type Discover struct{}

func (Navigate) Kind() Kind    { return KindNavigate }
func (NewEntry) Kind() Kind    { return KindNewEntry }
func (SelectEntry) Kind() Kind { return KindSelectEntry }
func (SelectItem) Kind() Kind  { return KindSelectItem }
func (Reflect) Kind() Kind     { return KindReflect }
func (Back) Kind() Kind        { return KindBack }
func (Save) Kind() Kind        { return KindSave }
func (Cancel) Kind() Kind      { return KindCancel }
func (Discover) Kind() Kind    { return KindDiscover }
