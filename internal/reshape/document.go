// Package reshape turns an annotated Group/Property/Value table into a
// document of records grouped by name.
package reshape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Record is one property of a group.
type Record struct {
	Property string `json:"Property"`
	Value    string `json:"Value"`
}

// Group is a named, ordered list of records.
type Group struct {
	Name    string
	Records []Record
}

// Document is the grouped view of an infobox. It marshals to a JSON object
// keyed by group name with keys in group order.
type Document struct {
	Groups []Group
}

// Records returns the records of the named group.
func (d Document) Records(name string) ([]Record, bool) {
	for _, group := range d.Groups {
		if group.Name == name {
			return group.Records, true
		}
	}

	return nil, false
}

// Names returns the group names in order.
func (d Document) Names() []string {
	names := make([]string, 0, len(d.Groups))
	for _, group := range d.Groups {
		names = append(names, group.Name)
	}

	return names
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, group := range d.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}

		records := group.Records
		if records == nil {
			records = []Record{}
		}

		value, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler and keeps the key order.
func (d *Document) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("document must be a json object")
	}

	groups := []Group{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		name, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", token)
		}

		records := []Record{}
		if err := decoder.Decode(&records); err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}

		groups = append(groups, Group{Name: name, Records: records})
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	d.Groups = groups

	return nil
}
