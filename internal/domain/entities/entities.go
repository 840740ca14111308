package entities

import (
	"encoding/json"
	"errors"
)

// Common errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicateID     = errors.New("duplicate identifier")
	ErrSellerMismatch  = errors.New("seller identifier does not match product owner")
)

// DefaultRating is assigned to every newly created product, regardless of
// what the caller sends.
const DefaultRating = 5.0

// OrderIDPrefix prefixes every server-assigned order identifier.
const OrderIDPrefix = "ORD-"

// Principal is the identity a caller claims when mutating a product. It is
// extracted from the request (body sellerId, falling back to the
// x-seller-id header) and carries no cryptographic binding.
type Principal struct {
	SellerID string
}

// Product is a marketplace listing. Callers may send arbitrary fields
// alongside the server-managed ones; those are preserved verbatim in Extra
// and flattened back into the same JSON object on output.
type Product struct {
	ID        string
	SellerID  string
	Rating    float64
	CreatedAt string
	UpdatedAt string
	Extra     map[string]any
}

// MarshalJSON flattens Extra and the server-managed fields into one object.
// Server-managed keys always win over caller-supplied duplicates.
func (p Product) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extra)+5)
	for k, v := range p.Extra {
		m[k] = v
	}
	m["id"] = p.ID
	m["sellerId"] = p.SellerID
	m["rating"] = p.Rating
	m["createdAt"] = p.CreatedAt
	if p.UpdatedAt != "" {
		m["updatedAt"] = p.UpdatedAt
	} else {
		delete(m, "updatedAt")
	}
	return json.Marshal(m)
}

// UnmarshalJSON splits the object back into server-managed fields and Extra.
func (p *Product) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = ProductFromMap(m)
	return nil
}

// ProductFromMap builds a Product from a decoded JSON object, pulling the
// server-managed keys out and leaving the rest in Extra.
func ProductFromMap(m map[string]any) Product {
	p := Product{
		ID:        stringField(m, "id"),
		SellerID:  stringField(m, "sellerId"),
		Rating:    floatField(m, "rating"),
		CreatedAt: stringField(m, "createdAt"),
		UpdatedAt: stringField(m, "updatedAt"),
		Extra:     make(map[string]any),
	}
	for k, v := range m {
		switch k {
		case "id", "sellerId", "rating", "createdAt", "updatedAt":
		default:
			p.Extra[k] = v
		}
	}
	return p
}

// Order is a placed order. Like Product, caller-supplied fields beyond the
// server-managed ones live in Extra.
type Order struct {
	ID        string
	UserID    string
	CreatedAt string
	Extra     map[string]any
}

func (o Order) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(o.Extra)+3)
	for k, v := range o.Extra {
		m[k] = v
	}
	m["id"] = o.ID
	m["userId"] = o.UserID
	m["createdAt"] = o.CreatedAt
	return json.Marshal(m)
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*o = OrderFromMap(m)
	return nil
}

// OrderFromMap builds an Order from a decoded JSON object.
func OrderFromMap(m map[string]any) Order {
	o := Order{
		ID:        stringField(m, "id"),
		UserID:    stringField(m, "userId"),
		CreatedAt: stringField(m, "createdAt"),
		Extra:     make(map[string]any),
	}
	for k, v := range m {
		switch k {
		case "id", "userId", "createdAt":
		default:
			o.Extra[k] = v
		}
	}
	return o
}

// User is part of the persisted document shape but no exposed operation
// reads or writes it, so it stays an opaque object.
type User map[string]any

// Document is the entire persisted database: one JSON object with three
// collections, rewritten in full on every mutation.
type Document struct {
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
	Users    []User    `json:"users"`
}

// NewDocument returns an empty document with all collections initialized, so
// the persisted form always carries the three top-level keys as arrays.
func NewDocument() *Document {
	return &Document{
		Products: []Product{},
		Orders:   []Order{},
		Users:    []User{},
	}
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func floatField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
