package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a set-valued field (marketing tags, store options, image
// URLs, brand-awareness channels) as a JSON array column. MySQL has no array
// type, so the list round-trips through json.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty array so
// reads never produce NULL JSON.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for TEXT/JSON columns.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

// Contains reports whether v is a member of the list.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}
