package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// JSONEncoder writes an array of objects whose keys keep field order
type JSONEncoder struct {
	Indent string
}

// Extension returns "json"
func (JSONEncoder) Extension() string { return "json" }

// Encode writes rows as a JSON array. An empty input gives "[]".
func (e JSONEncoder) Encode(w io.Writer, rows []domain.Row) error {
	objects := make([]orderedObject, len(rows))
	for i, row := range rows {
		objects[i] = orderedObject(row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	if err := enc.Encode(objects); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// orderedObject marshals a row as an object without sorting its keys
type orderedObject domain.Row

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
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
