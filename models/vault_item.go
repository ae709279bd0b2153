// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

var (
	// ErrUnsupportedItemType is returned when an item type is not in the schema table.
	ErrUnsupportedItemType = errors.New("unsupported item type")

	// ErrUnknownItemField is returned when fields carry a name the item type does not declare.
	ErrUnknownItemField = errors.New("unknown item field")
)

// Fields maps field names to their plaintext values.
type Fields map[string]string

// VaultItem is one stored secret record.
type VaultItem struct {
	// ID is the opaque, server-assigned identifier.
	ID string `json:"id"`

	// Type selects the schema of Fields.
	Type ItemType `json:"type"`

	// Fields holds every field declared by the type's schema.
	Fields Fields `json:"data"`

	// CreatedAt and UpdatedAt are informational and set by the server.
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Title returns a short human label for the item, derived from the first
// non-sensitive field that has a value.
func (v VaultItem) Title() string {
	for _, f := range v.Type.Schema() {
		if f.Sensitive {
			continue
		}
		if val := v.Fields[f.Name]; val != "" {
			return val
		}
	}
	return string(v.Type)
}

// NormalizeFields returns a copy of fields that contains every field
// declared by t, with missing ones set to the empty string. It fails when t
// is unsupported or fields carries a name that t does not declare.
func NormalizeFields(t ItemType, fields Fields) (Fields, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedItemType, t)
	}

	for name := range fields {
		if !t.HasField(name) {
			return nil, fmt.Errorf("%w: %q for type %s", ErrUnknownItemField, name, t)
		}
	}

	out := make(Fields, len(t.Schema()))
	for _, f := range t.Schema() {
		out[f.Name] = fields[f.Name]
	}
	return out, nil
}

// Clone returns a deep copy of the item.
func (v VaultItem) Clone() VaultItem {
	v.Fields = maps.Clone(v.Fields)
	return v
}
