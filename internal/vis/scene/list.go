package scene

import "sort"

// Handle identifies a primitive added to a display list.
type Handle uint64

// Canvas is what renderers draw on.
type Canvas interface {
	Add(p Primitive) Handle
	Remove(h Handle)
	SetTitle(title string)
}

type entry struct {
	seq  Handle
	prim Primitive
}

// DisplayList is a retained set of primitives over fixed data bounds.
// It is not safe for concurrent use.
type DisplayList struct {
	Bounds Bounds

	title   string
	next    Handle
	entries map[Handle]Primitive
}

// NewDisplayList returns an empty list covering b.
func NewDisplayList(b Bounds) *DisplayList {
	return &DisplayList{Bounds: b, entries: make(map[Handle]Primitive)}
}

func (d *DisplayList) Add(p Primitive) Handle {
	d.next++
	d.entries[d.next] = p
	return d.next
}

// Remove drops h. Unknown handles are ignored.
func (d *DisplayList) Remove(h Handle) {
	delete(d.entries, h)
}

func (d *DisplayList) SetTitle(title string) {
	d.title = title
}

// Title returns the last title set.
func (d *DisplayList) Title() string {
	return d.title
}

// Len returns the number of live primitives.
func (d *DisplayList) Len() int {
	return len(d.entries)
}

// Items returns live primitives in paint order: by layer, then by insertion.
func (d *DisplayList) Items() []Primitive {
	es := make([]entry, 0, len(d.entries))
	for h, p := range d.entries {
		es = append(es, entry{seq: h, prim: p})
	}
	sort.Slice(es, func(i, j int) bool {
		li, lj := es[i].prim.Layer(), es[j].prim.Layer()
		if li != lj {
			return li < lj
		}
		return es[i].seq < es[j].seq
	})
	out := make([]Primitive, len(es))
	for i, e := range es {
		out[i] = e.prim
	}
	return out
}

// Clear removes every primitive and the title.
func (d *DisplayList) Clear() {
	d.entries = make(map[Handle]Primitive)
	d.title = ""
}

// Arena issues primitives for one frame and remembers their handles so the
// whole frame can be taken down at once.
type Arena struct {
	canvas  Canvas
	handles []Handle
}

// NewArena draws through c.
func NewArena(c Canvas) *Arena {
	return &Arena{canvas: c}
}

func (a *Arena) Add(p Primitive) Handle {
	h := a.canvas.Add(p)
	a.handles = append(a.handles, h)
	return h
}

func (a *Arena) Remove(h Handle) {
	a.canvas.Remove(h)
	for i, x := range a.handles {
		if x == h {
			a.handles = append(a.handles[:i], a.handles[i+1:]...)
			return
		}
	}
}

func (a *Arena) SetTitle(title string) {
	a.canvas.SetTitle(title)
}

// Len returns the number of handles held for the current frame.
func (a *Arena) Len() int {
	return len(a.handles)
}

// Drain removes everything issued since the last drain.
func (a *Arena) Drain() {
	for _, h := range a.handles {
		a.canvas.Remove(h)
	}
	a.handles = a.handles[:0]
}
