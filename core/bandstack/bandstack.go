package bandstack

import (
	"fmt"

	"github.com/ftl/bandkeeper/core"
)

// DefaultDeviation is the FM deviation of the catalog entries in Hz.
const DefaultDeviation = 2500

// Entry is one tuning memory of a band.
type Entry struct {
	Frequency     core.Frequency
	CTUN          bool
	CTUNFrequency core.Frequency
	Mode          core.Mode
	Filter        core.Filter
	Deviation     int
	CTCSSEnabled  bool
	CTCSS         int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %v %v", e.Frequency.MHz(), e.Mode, e.Filter)
}

// NewEntry returns a catalog entry with CTUN and CTCSS off and the default deviation.
func NewEntry(f core.Frequency, mode core.Mode, filter core.Filter) Entry {
	return Entry{
		Frequency: f,
		Mode:      mode,
		Filter:    filter,
		Deviation: DefaultDeviation,
	}
}

// Catalog is an immutable list of default entries. Use Instantiate to get a mutable copy.
type Catalog []Entry

// Instantiate returns a copy of the catalog that can be bound to a bandstack.
func (c Catalog) Instantiate() []Entry {
	result := make([]Entry, len(c))
	copy(result, c)
	return result
}

// Bandstack holds the tuning memories of one band and the index of the current entry.
type Bandstack struct {
	entries []Entry
	current int
}

// New returns a bandstack over the given entries with the given current entry.
func New(entries []Entry, current int) *Bandstack {
	result := &Bandstack{entries: entries, current: current}
	result.Sanitize()
	return result
}

// Len returns the number of entries.
func (s *Bandstack) Len() int {
	return len(s.entries)
}

// Cyclable indicates a stacked bandstack whose entries can be cycled through.
func (s *Bandstack) Cyclable() bool {
	return len(s.entries) > 1
}

// CurrentIndex returns the index of the current entry.
func (s *Bandstack) CurrentIndex() int {
	return s.current
}

// SetCurrentIndex sets the current entry index without any range check; call Sanitize afterwards.
// This mirrors reading a persisted value in place.
func (s *Bandstack) SetCurrentIndex(i int) {
	s.current = i
}

// Select the entry with the given index. The index must be in range.
func (s *Bandstack) Select(i int) {
	if i < 0 || i >= len(s.entries) {
		panic(fmt.Sprintf("bandstack entry %d out of range [0,%d)", i, len(s.entries)))
	}
	s.current = i
}

// Current returns the current entry, or nil if the bandstack is empty.
func (s *Bandstack) Current() *Entry {
	if s.current < 0 || s.current >= len(s.entries) {
		return nil
	}
	return &s.entries[s.current]
}

// Next makes the following entry current, wrapping around at the end, and returns it.
func (s *Bandstack) Next() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	s.current = (s.current + 1) % len(s.entries)
	return &s.entries[s.current]
}

// Entry returns the entry with the given index. The index must be in range.
func (s *Bandstack) Entry(i int) *Entry {
	return &s.entries[i]
}

// Entries returns the entries of this bandstack. The slice is shared with the bandstack.
func (s *Bandstack) Entries() []Entry {
	return s.entries
}

// Rebind replaces the entry set and makes the first entry current.
func (s *Bandstack) Rebind(entries []Entry) {
	s.entries = entries
	s.current = 0
}

// Sanitize resets an out-of-range current entry index to 0 and reports if it did so.
func (s *Bandstack) Sanitize() bool {
	if s.current >= 0 && s.current < len(s.entries) {
		return false
	}
	s.current = 0
	return true
}
