package wpctl

import (
	"bytes"
	"encoding/json"
)

// Category names as they appear in a parsed snapshot.
const (
	CategoryDevices = "devices"
	CategorySinks   = "sinks"
	CategorySources = "sources"
	CategoryFilters = "filters"
)

// Snapshot maps category names to objects, preserving report order for both
// categories and objects. Snapshots are not modified after ParseStatus returns.
type Snapshot struct {
	order  []string
	groups map[string][]Object
}

func newSnapshot() *Snapshot {
	return &Snapshot{groups: make(map[string][]Object)}
}

// start begins (or restarts) a category with an empty sequence.
func (s *Snapshot) start(category string) {
	if _, ok := s.groups[category]; !ok {
		s.order = append(s.order, category)
	}
	s.groups[category] = []Object{}
}

func (s *Snapshot) add(category string, obj Object) {
	s.groups[category] = append(s.groups[category], obj)
}

// Categories returns the category names in report order.
func (s *Snapshot) Categories() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Has reports whether the category appeared in the report.
func (s *Snapshot) Has(category string) bool {
	if s == nil {
		return false
	}
	_, ok := s.groups[category]
	return ok
}

// Objects returns a copy of the objects in category. Unknown categories yield
// an empty slice.
func (s *Snapshot) Objects(category string) []Object {
	if s == nil {
		return []Object{}
	}
	objs := s.groups[category]
	out := make([]Object, len(objs))
	for i, obj := range objs {
		out[i] = obj.clone()
	}
	return out
}

// Active returns the objects in category flagged as the current default.
func (s *Snapshot) Active(category string) []Object {
	var active []Object
	for _, obj := range s.Objects(category) {
		if obj.Active {
			active = append(active, obj)
		}
	}
	return active
}

// Len returns the number of categories.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// MarshalJSON encodes the snapshot as an object keyed by category in report order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s.Categories() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		objs, err := json.Marshal(s.groups[category])
		if err != nil {
			return nil, err
		}
		buf.Write(objs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
