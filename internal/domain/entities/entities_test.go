package entities

import (
	"encoding/json"
	"testing"
)

func TestProductJSONFlattensExtraFields(t *testing.T) {
	p := Product{
		ID:        "p1",
		SellerID:  "S1",
		Rating:    5,
		CreatedAt: "2024-01-01T00:00:00Z",
		Extra:     map[string]any{"name": "Widget", "price": 10.0},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "p1" || m["sellerId"] != "S1" || m["name"] != "Widget" {
		t.Fatalf("unexpected object: %v", m)
	}
	if _, ok := m["updatedAt"]; ok {
		t.Fatalf("updatedAt should be omitted until an update happens")
	}
	if m["rating"] != 5.0 {
		t.Fatalf("expected rating 5, got %v", m["rating"])
	}
}

func TestProductJSONRoundTrip(t *testing.T) {
	in := `{"id":"p2","sellerId":"S9","rating":5,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-02-01T00:00:00Z","name":"Mug","tags":["home","kitchen"]}`

	var p Product
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "p2" || p.SellerID != "S9" || p.UpdatedAt != "2024-02-01T00:00:00Z" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Extra["name"] != "Mug" {
		t.Fatalf("extra fields not preserved: %+v", p.Extra)
	}
	if _, ok := p.Extra["id"]; ok {
		t.Fatalf("server-managed keys must not leak into Extra")
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	for _, key := range []string{"id", "sellerId", "rating", "createdAt", "updatedAt", "name", "tags"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("key %q lost in round-trip: %v", key, m)
		}
	}
}

func TestProductServerManagedKeysWin(t *testing.T) {
	p := Product{
		ID:        "real-id",
		SellerID:  "S1",
		Rating:    5,
		CreatedAt: "2024-01-01T00:00:00Z",
		Extra:     map[string]any{"id": "spoofed", "rating": 1.0},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "real-id" {
		t.Fatalf("expected server id to win, got %v", m["id"])
	}
	if m["rating"] != 5.0 {
		t.Fatalf("expected server rating to win, got %v", m["rating"])
	}
}

func TestOrderJSONRoundTrip(t *testing.T) {
	in := `{"id":"ORD-1","userId":"U1","createdAt":"2024-01-01T00:00:00Z","items":[{"productId":"p1","qty":2}]}`

	var o Order
	if err := json.Unmarshal([]byte(in), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.ID != "ORD-1" || o.UserID != "U1" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if _, ok := o.Extra["items"]; !ok {
		t.Fatalf("extra fields not preserved: %+v", o.Extra)
	}

	out, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if m["userId"] != "U1" {
		t.Fatalf("unexpected object: %v", m)
	}
}

func TestNewDocumentHasAllCollections(t *testing.T) {
	doc := NewDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"products", "orders", "users"} {
		arr, ok := m[key].([]any)
		if !ok {
			t.Fatalf("expected %q to be an array, got %T", key, m[key])
		}
		if len(arr) != 0 {
			t.Fatalf("expected empty %q", key)
		}
	}
}
