// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemType defines the semantic type of a vault item. The value determines
// which fields the item carries and which of them are sensitive.
type ItemType string

const (
	// Login represents website credentials.
	Login ItemType = "Login"

	// CreditCard represents payment card information.
	CreditCard ItemType = "CreditCard"

	// IdentityDocument represents an identity document (passport, licence, ...).
	IdentityDocument ItemType = "Identity"

	// SecureNote represents free-form secret text.
	SecureNote ItemType = "SecureNote"
)

// Field names used by the schema table. They are also the keys of
// VaultItem.Fields on the wire.
const (
	FieldURL            = "URL"
	FieldUsername       = "Username"
	FieldPassword       = "Password"
	FieldCardholderName = "Cardholder Name"
	FieldCardNumber     = "Card Number"
	FieldExpiryDate     = "Expiry Date"
	FieldCVV            = "CVV"
	FieldDocumentType   = "Document Type"
	FieldFullName       = "Full Name"
	FieldDocumentNumber = "Document Number"
	FieldTitle          = "Title"
	FieldNote           = "Note"
)

// FieldSpec describes one field of an item type.
type FieldSpec struct {
	Name      string
	Sensitive bool
}

// itemSchemas is the static schema table. Order is display order.
var itemSchemas = map[ItemType][]FieldSpec{
	Login: {
		{Name: FieldURL},
		{Name: FieldUsername, Sensitive: true},
		{Name: FieldPassword, Sensitive: true},
	},
	CreditCard: {
		{Name: FieldCardholderName},
		{Name: FieldCardNumber, Sensitive: true},
		{Name: FieldExpiryDate, Sensitive: true},
		{Name: FieldCVV, Sensitive: true},
	},
	IdentityDocument: {
		{Name: FieldDocumentType},
		{Name: FieldFullName},
		{Name: FieldDocumentNumber, Sensitive: true},
		{Name: FieldExpiryDate, Sensitive: true},
	},
	SecureNote: {
		{Name: FieldTitle},
		{Name: FieldNote, Sensitive: true},
	},
}

// ItemTypes lists every supported item type in menu order.
var ItemTypes = []ItemType{Login, CreditCard, IdentityDocument, SecureNote}

// Valid reports whether t is one of the supported item types.
func (t ItemType) Valid() bool {
	_, ok := itemSchemas[t]
	return ok
}

// Schema returns the field specs of t in display order, or nil for an
// unsupported type. The returned slice must not be modified.
func (t ItemType) Schema() []FieldSpec {
	return itemSchemas[t]
}

// HasField reports whether field is declared by the schema of t.
func (t ItemType) HasField(field string) bool {
	for _, f := range itemSchemas[t] {
		if f.Name == field {
			return true
		}
	}
	return false
}

// IsSensitive reports whether field is declared sensitive for t.
func (t ItemType) IsSensitive(field string) bool {
	for _, f := range itemSchemas[t] {
		if f.Name == field {
			return f.Sensitive
		}
	}
	return false
}

// SensitiveFields returns the names of the sensitive fields of t.
func (t ItemType) SensitiveFields() []string {
	var out []string
	for _, f := range itemSchemas[t] {
		if f.Sensitive {
			out = append(out, f.Name)
		}
	}
	return out
}
