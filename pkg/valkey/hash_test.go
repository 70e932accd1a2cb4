package valkey

import (
	"testing"
)

type color string

type hashRecord struct {
	ID     string `redis:"id"`
	Count  int    `redis:"count"`
	Color  color  `redis:"color"`
	Active bool   `redis:"active"`
	Memo   string `redis:"-"`
	Plain  string
}

type hashPatch struct {
	Count *int    `redis:"count"`
	Color *color  `redis:"color"`
	Name  *string `redis:"name"`
}

func TestStructToMap(t *testing.T) {
	m := StructToMap(&hashRecord{ID: "a", Count: 3, Color: "red", Active: true, Memo: "x", Plain: "y"})

	if len(m) != 4 {
		t.Fatalf("len = %d, want 4: %v", len(m), m)
	}
	if m["id"] != "a" || m["count"] != int64(3) || m["active"] != true {
		t.Errorf("map = %v", m)
	}
	if _, ok := m["color"].(string); !ok {
		t.Errorf("named string type should be written as string, got %T", m["color"])
	}
}

func TestStructToMapSkipsNilPointers(t *testing.T) {
	n := 7
	c := color("blue")
	m := StructToMap(&hashPatch{Count: &n, Color: &c})

	if len(m) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(m), m)
	}
	if m["count"] != int64(7) || m["color"] != "blue" {
		t.Errorf("map = %v", m)
	}
	if _, ok := m["name"]; ok {
		t.Error("nil pointer field should be skipped")
	}

	if got := StructToMap((*hashPatch)(nil)); len(got) != 0 {
		t.Errorf("nil struct pointer should give empty map, got %v", got)
	}
}

func TestMapToStruct(t *testing.T) {
	var r hashRecord
	err := MapToStruct(map[string]string{
		"id":     "b",
		"count":  "12",
		"color":  "green",
		"active": "1",
		"extra":  "ignored",
	}, &r)
	if err != nil {
		t.Fatalf("MapToStruct() error = %v", err)
	}
	if r.ID != "b" || r.Count != 12 || r.Color != "green" || !r.Active {
		t.Errorf("record = %+v", r)
	}
}

func TestMapToStructEmptyInt(t *testing.T) {
	var r hashRecord
	if err := MapToStruct(map[string]string{"count": ""}, &r); err != nil {
		t.Fatalf("MapToStruct() error = %v", err)
	}
	if r.Count != 0 {
		t.Errorf("Count = %d, want 0", r.Count)
	}
}

func TestMapToStructErrors(t *testing.T) {
	var r hashRecord
	if err := MapToStruct(map[string]string{"count": "abc"}, &r); err == nil {
		t.Error("invalid int should fail")
	}
	if err := MapToStruct(map[string]string{}, r); err == nil {
		t.Error("non-pointer should fail")
	}
}
