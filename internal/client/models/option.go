// Package models holds the read-only wire projections of the backend's
// entities, plus the enum vocabularies and their display labels. The
// backend owns every record; the console only renders and submits them.
package models

// Option is a selectable value for a form field: the backend's wire token
// plus the label shown to the user. Labels are produced by pure lookup,
// never sent over the wire.
type Option struct {
	Value string
	Label string
}

// FindOption returns the option matching value, or nil when the value is
// empty or unknown.
func FindOption(options []Option, value string) *Option {
	if value == "" {
		return nil
	}
	for i := range options {
		if options[i].Value == value {
			return &options[i]
		}
	}
	return nil
}
