package dao

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IntList stores a slice of ints as a jsonb column, keeping the selected
// numbers of a ticket or draw in a single field.
type IntList []int

func (l IntList) GormDataType() string {
	return "jsonb"
}

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	encoded, err := json.Marshal([]int(l))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	return string(encoded), nil
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for IntList", value)
	}

	if err := json.Unmarshal(raw, (*[]int)(l)); err != nil {
		return fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return nil
}
