package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Metadata carries the row timestamps every table maintains. Both columns
// default in the database, so they are never part of an insert.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" insert:"-" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" insert:"-" json:"updated_at"`
}

// NullableString scans a nullable text column, coercing SQL NULL to the
// empty string so callers never see a null.
type NullableString string

func (n *NullableString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = ""
	case string:
		*n = NullableString(v)
	case []byte:
		*n = NullableString(v)
	default:
		return fmt.Errorf("cannot scan %T into NullableString", src)
	}

	return nil
}

func (n NullableString) Value() (driver.Value, error) {
	return string(n), nil
}

// NullableFloat scans a nullable numeric column, coercing SQL NULL to 0.
type NullableFloat float64

func (n *NullableFloat) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = 0
	case float64:
		*n = NullableFloat(v)
	case int64:
		*n = NullableFloat(v)
	case []byte:
		var f float64
		if _, err := fmt.Sscanf(string(v), "%g", &f); err != nil {
			return fmt.Errorf("cannot scan %q into NullableFloat: %w", string(v), err)
		}
		*n = NullableFloat(f)
	default:
		return fmt.Errorf("cannot scan %T into NullableFloat", src)
	}

	return nil
}

func (n NullableFloat) Value() (driver.Value, error) {
	return float64(n), nil
}
