package models

import "encoding/json"

// Update payloads must distinguish "field not supplied" from "field set to
// null": absent fields stay out of the UPDATE entirely, explicit nulls clear
// nullable columns. encoding/json never calls UnmarshalJSON for absent
// fields, so Set doubles as the presence flag.

// OptString is an optional, nullable string field.
type OptString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer for binding into SQL.
func (o OptString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// OptTime is an optional, nullable date field with FlexTime coercion.
type OptTime struct {
	Set   bool
	Valid bool
	Value FlexTime
}

func (o *OptTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := o.Value.UnmarshalJSON(data); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer for binding into SQL.
func (o OptTime) Ptr() interface{} {
	if !o.Valid {
		return nil
	}
	return o.Value.Time
}
