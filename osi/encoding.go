package osi

import "gopkg.in/yaml.v3"

// Serialization adapters: an OSI travels as its canonical string.
// MarshalText / UnmarshalText cover encoding/json and any other
// TextMarshaler-aware codec; the yaml.v3 interfaces are implemented
// separately since that package does not consult TextMarshaler.

// MarshalText implements encoding.TextMarshaler.
func (o OSI) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by delegating to
// Parse; any parse failure surfaces unchanged.
func (o *OSI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o OSI) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler by delegating to Parse.
func (o *OSI) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}
