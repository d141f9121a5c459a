package dtos

import "encoding/json"

// UserDTO keeps the raw name so the handler can reject non-string values
// before the interactor ever sees them.
type UserDTO struct {
	Name    string          `json:"-"`
	RawName json.RawMessage `json:"name"`
}
