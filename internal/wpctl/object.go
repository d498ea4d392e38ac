package wpctl

import (
	"encoding/json"
)

// Volume is the level reported in an object's bracketed metadata.
type Volume struct {
	// Level is the number exactly as wpctl printed it, e.g. "0.80".
	Level string
	Muted bool
}

// Object is one sink, source, device, or filter from the status report.
type Object struct {
	ID     string
	Name   string
	Active bool
	// Volume is nil unless the bracketed metadata was a volume reading.
	Volume *Volume
	// Extra holds bracketed metadata that is not a volume reading.
	Extra string
}

// Label returns the human-readable "<id>. <name>" form.
func (o Object) Label() string {
	return o.ID + ". " + o.Name
}

type objectJSON struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Active bool    `json:"active"`
	Volume *string `json:"volume,omitempty"`
	Muted  *bool   `json:"muted,omitempty"`
	Extra  string  `json:"extra,omitempty"`
}

// MarshalJSON flattens the optional volume fields so they only appear when set.
func (o Object) MarshalJSON() ([]byte, error) {
	payload := objectJSON{
		ID:     o.ID,
		Name:   o.Name,
		Active: o.Active,
		Extra:  o.Extra,
	}
	if o.Volume != nil {
		level := o.Volume.Level
		muted := o.Volume.Muted
		payload.Volume = &level
		payload.Muted = &muted
	}
	return json.Marshal(payload)
}

func (o Object) clone() Object {
	if o.Volume != nil {
		v := *o.Volume
		o.Volume = &v
	}
	return o
}
