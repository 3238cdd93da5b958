package models

// Patch is a typed partial update applied by the item store during its
// read-modify-write cycle. Each operation gets its own patch type so a
// position drag can never clobber tree fields and vice versa; the store
// stamps UpdatedAt itself.
type Patch interface {
	Apply(item *Item)
}

// RenamePatch updates the display name and the recomputed path.
type RenamePatch struct {
	Name string
	Path string
}

func (p RenamePatch) Apply(item *Item) {
	item.Name = p.Name
	item.Path = p.Path
}

// MovePatch reparents an item and rewrites its path. A nil ParentID
// moves the item to root level.
type MovePatch struct {
	ParentID *string
	Path     string
}

func (p MovePatch) Apply(item *Item) {
	item.ParentID = p.ParentID
	item.Path = p.Path
}

// PathPatch rewrites only the materialized path. Used for descendants
// during a rename/move cascade, where name and parent are unchanged.
type PathPatch struct {
	Path string
}

func (p PathPatch) Apply(item *Item) {
	item.Path = p.Path
}

// PositionPatch updates desktop canvas coordinates only.
type PositionPatch struct {
	X float64
	Y float64
}

func (p PositionPatch) Apply(item *Item) {
	item.X = p.X
	item.Y = p.Y
}
