package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Milestones is the ordered milestone collection embedded in a goal. It is
// persisted as a single JSONB document alongside the owning goal row, never
// as independently addressable records.
type Milestones []Milestone

// Value implements driver.Valuer for the JSONB column.
func (m Milestones) Value() (driver.Value, error) {
	if m == nil {
		m = Milestones{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for the JSONB column.
func (m *Milestones) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = Milestones{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Milestones", src)
	}
	return json.Unmarshal(data, m)
}
