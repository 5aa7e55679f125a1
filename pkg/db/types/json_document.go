package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONDocument stores an opaque JSON value in a jsonb (Postgres) or text
// (sqlite) column. A nil document scans and stores as SQL NULL.
type JSONDocument json.RawMessage

// Value marshals the document for storage.
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	if !json.Valid(d) {
		return nil, fmt.Errorf("json document: invalid payload")
	}
	return string(d), nil
}

// Scan reads the document back from the driver.
func (d *JSONDocument) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		*d = append(JSONDocument(nil), v...)
		return nil
	case string:
		*d = JSONDocument(v)
		return nil
	default:
		return fmt.Errorf("json document: unsupported source type %T", src)
	}
}

// MarshalJSON passes the raw payload through, rendering NULL as JSON null.
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores the raw payload.
func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return fmt.Errorf("json document: unmarshal into nil pointer")
	}
	*d = append((*d)[0:0], data...)
	return nil
}

// MustDocument marshals v, panicking on failure. Intended for fixtures.
func MustDocument(v any) JSONDocument {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return JSONDocument(raw)
}
