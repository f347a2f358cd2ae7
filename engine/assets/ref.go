package assets

import "fmt"

type RefState int

const (
	RefUnloaded RefState = iota
	RefLoading
	RefLoaded
	RefFailed
)

func (s RefState) String() string {
	switch s {
	case RefUnloaded:
		return "unloaded"
	case RefLoading:
		return "loading"
	case RefLoaded:
		return "loaded"
	case RefFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ref binds a relative data file name to the records recursively loaded
// from it. A Ref is read at most once; construct a new one to retry.
type Ref[T any, P interface {
	*T
	Record
}] struct {
	Filename string
	data     Table[T]
	state    RefState
}

func NewRef[T any, P interface {
	*T
	Record
}](filename string) Ref[T, P] {
	return Ref[T, P]{Filename: filename}
}

// Read loads Filename relative to dir. On failure the Ref holds no records.
func (r *Ref[T, P]) Read(dir Dir) error {
	if r.state != RefUnloaded {
		return fmt.Errorf("read %q (%s): %w", r.Filename, r.state, ErrRefUsed)
	}
	r.state = RefLoading
	data, err := LoadRecursive[T, P](dir, r.Filename)
	if err != nil {
		r.state = RefFailed
		return err
	}
	r.data = data
	r.state = RefLoaded
	return nil
}

func (r *Ref[T, P]) State() RefState { return r.state }

// Len panics unless Read succeeded.
func (r *Ref[T, P]) Len() int {
	r.mustLoaded()
	return len(r.data)
}

// At panics unless Read succeeded and i is in range.
func (r *Ref[T, P]) At(i int) T {
	r.mustLoaded()
	if i < 0 || i >= len(r.data) {
		panic(fmt.Sprintf("assets: index %d out of range for %q with %d records", i, r.Filename, len(r.data)))
	}
	return r.data[i]
}

// All returns the loaded records. The slice must not be modified.
func (r *Ref[T, P]) All() Table[T] {
	r.mustLoaded()
	return r.data
}

func (r *Ref[T, P]) mustLoaded() {
	if r.state != RefLoaded {
		panic(fmt.Sprintf("assets: access to %q in state %s", r.Filename, r.state))
	}
}
