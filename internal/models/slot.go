// internal/models/slot.go
package models

import (
	"fmt"
	"strings"
)

// SlotKind tags the variant carried by a SlotValue.
type SlotKind string

const (
	KindText  SlotKind = "text"
	KindInt   SlotKind = "int"
	KindMoney SlotKind = "money"
	KindEnum  SlotKind = "enum"
	KindList  SlotKind = "list"
)

// SlotValue is a tagged union for one extracted field value. Exactly one of the
// payload fields is meaningful, selected by Kind. The zero value means "not set".
type SlotValue struct {
	Kind  SlotKind `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Int   int      `json:"int,omitempty"`
	Money float64  `json:"money,omitempty"`
	List  []string `json:"list,omitempty"`
}

func TextValue(s string) SlotValue    { return SlotValue{Kind: KindText, Text: s} }
func IntValue(n int) SlotValue        { return SlotValue{Kind: KindInt, Int: n} }
func MoneyValue(v float64) SlotValue  { return SlotValue{Kind: KindMoney, Money: v} }
func EnumValue(s string) SlotValue    { return SlotValue{Kind: KindEnum, Text: s} }
func ListValue(vs []string) SlotValue { return SlotValue{Kind: KindList, List: vs} }

// IsZero reports whether the value is absent or carries an empty/zero payload.
// A zero slot counts as missing for completion checking.
func (v SlotValue) IsZero() bool {
	switch v.Kind {
	case KindText, KindEnum:
		return strings.TrimSpace(v.Text) == ""
	case KindInt:
		return v.Int == 0
	case KindMoney:
		return v.Money == 0
	case KindList:
		return len(v.List) == 0
	default:
		return true
	}
}

// Display renders the value for user-facing summaries. List values are joined
// with ", " as the upstream chat layer expects a flat string.
func (v SlotValue) Display() string {
	switch v.Kind {
	case KindText, KindEnum:
		return v.Text
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindMoney:
		return fmt.Sprintf("%.0f", v.Money)
	case KindList:
		return strings.Join(v.List, ", ")
	default:
		return ""
	}
}

// SlotMap maps field names to extracted values.
type SlotMap map[string]SlotValue

// Clone returns a shallow copy of the map (list payloads are shared, callers
// treat SlotValue as immutable).
func (m SlotMap) Clone() SlotMap {
	out := make(SlotMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Overlay writes every non-zero value from src into m, overwriting existing
// entries. Zero values never erase previously collected data.
func (m SlotMap) Overlay(src SlotMap) {
	for k, v := range src {
		if !v.IsZero() {
			m[k] = v
		}
	}
}

// Get returns the value for a field, or the zero SlotValue when absent.
func (m SlotMap) Get(field string) SlotValue {
	return m[field]
}
