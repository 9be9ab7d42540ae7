package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-underscore/collections"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"roles": []string{"admin", "ops"},
		},
		"score": 42,
	}
}

func TestDot(t *testing.T) {
	flat := collections.Dot(makeNested())
	if flat["user.name"] != "Alice" {
		t.Fatalf("Dot user.name = %v; want Alice", flat["user.name"])
	}
	if flat["user.address.city"] != "London" {
		t.Fatalf("Dot user.address.city = %v; want London", flat["user.address.city"])
	}
	if flat["score"] != 42 {
		t.Fatalf("Dot score = %v; want 42", flat["score"])
	}
}

func TestDotKeepsEmptyMaps(t *testing.T) {
	flat := collections.Dot(map[string]any{"a": map[string]any{}})
	if _, ok := flat["a"]; !ok {
		t.Fatalf("Dot dropped empty map: %v", flat)
	}
}

func TestUndot(t *testing.T) {
	flat := map[string]any{
		"a.b":   1,
		"a.c":   2,
		"d":     3,
		"e.f.g": 4,
	}
	nested, err := collections.Undot(flat)
	if err != nil {
		t.Fatalf("Undot: %v", err)
	}
	aMap, ok := nested["a"].(map[string]any)
	if !ok || aMap["b"] != 1 || aMap["c"] != 2 {
		t.Fatalf("Undot a = %v", nested["a"])
	}
	if nested["d"] != 3 {
		t.Fatal("Undot d failed")
	}
	if collections.GetPath(nested, "e.f.g") != 4 {
		t.Fatal("Undot e.f.g failed")
	}
}

func TestUndotConflict(t *testing.T) {
	_, err := collections.Undot(map[string]any{"a": 1, "a.b": 2})
	if !errors.Is(err, collections.ErrNotSettable) {
		t.Fatalf("Undot conflict err = %v; want ErrNotSettable", err)
	}
}

func TestGetPath(t *testing.T) {
	m := makeNested()
	if v := collections.GetPath(m, "user.name"); v != "Alice" {
		t.Fatalf("GetPath user.name = %v; want Alice", v)
	}
	if v := collections.GetPath(m, "user.address.city"); v != "London" {
		t.Fatalf("GetPath city = %v; want London", v)
	}
	if v := collections.GetPath(m, "user.roles.1"); v != "ops" {
		t.Fatalf("GetPath user.roles.1 = %v; want ops", v)
	}
	if v := collections.GetPath(m, "missing"); v != nil {
		t.Fatalf("GetPath missing = %v; want nil", v)
	}
	if v := collections.GetPath(m, "missing", "default"); v != "default" {
		t.Fatalf("GetPath missing default = %v; want default", v)
	}
}

func TestGetPathThroughStructs(t *testing.T) {
	m := map[string]any{"owner": &user{Name: "moe"}}
	if v := collections.GetPath(m, "owner.Name"); v != "moe" {
		t.Fatalf("GetPath owner.Name = %v; want moe", v)
	}
}

func TestSetPath(t *testing.T) {
	m := map[string]any{}
	if err := collections.SetPath(m, "a.b.c", 42); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if got := collections.GetPath(m, "a.b.c"); got != 42 {
		t.Fatalf("SetPath/GetPath a.b.c = %v; want 42", got)
	}
}

func TestSetPathOverwritesExisting(t *testing.T) {
	m := makeNested()
	if err := collections.SetPath(m, "user.name", "Bob"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if collections.GetPath(m, "user.name") != "Bob" {
		t.Fatal("SetPath did not overwrite")
	}
}

func TestSetPathThroughScalarFails(t *testing.T) {
	m := makeNested()
	err := collections.SetPath(m, "user.name.first", "A")
	if !errors.Is(err, collections.ErrNotSettable) {
		t.Fatalf("SetPath err = %v; want ErrNotSettable", err)
	}
	if collections.GetPath(m, "user.name") != "Alice" {
		t.Fatal("failed SetPath modified the map")
	}
}

func TestHasPath(t *testing.T) {
	m := makeNested()
	if !collections.HasPath(m, "user.name") {
		t.Fatal("HasPath user.name should be true")
	}
	if !collections.HasPath(m, "user.address.city") {
		t.Fatal("HasPath user.address.city should be true")
	}
	if collections.HasPath(m, "user.missing") {
		t.Fatal("HasPath user.missing should be false")
	}
	if collections.HasPath(m, "user.name.deep") {
		t.Fatal("HasPath beyond scalar should be false")
	}
}

func TestForgetPath(t *testing.T) {
	m := makeNested()
	collections.ForgetPath(m, "user.address.city")
	if collections.HasPath(m, "user.address.city") {
		t.Fatal("ForgetPath did not remove key")
	}
	if !collections.HasPath(m, "user.address.country") {
		t.Fatal("ForgetPath removed sibling key")
	}
	collections.ForgetPath(m, "nope.deeper")
}

func TestForgetPathTopLevel(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	collections.ForgetPath(m, "a")
	if collections.HasPath(m, "a") {
		t.Fatal("ForgetPath top-level failed")
	}
	if !collections.HasPath(m, "b") {
		t.Fatal("ForgetPath removed wrong key")
	}
}
