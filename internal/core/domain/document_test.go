package domain

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestDocument_NormalizeFillsMissingCollections(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	doc.Normalize()

	if doc.Users == nil || doc.Events == nil || doc.ActivityLog == nil {
		t.Fatalf("expected empty collections, got %+v", doc)
	}
	if !slices.Equal(doc.Roles, DefaultRoles) {
		t.Fatalf("expected default roles, got %v", doc.Roles)
	}
}

func TestDocument_NormalizeDropsNullEntries(t *testing.T) {
	raw := `{"users":[null,{"username":"alice","role":"User","status":"active"},null],"roles":["User"],"events":[null,{"id":"e1","title":"x"}]}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	doc.Normalize()

	if len(doc.Users) != 1 || doc.Users[0].Username != "alice" {
		t.Fatalf("expected only alice, got %+v", doc.Users)
	}
	if len(doc.Events) != 1 || doc.Events[0].ID != "e1" {
		t.Fatalf("expected only e1, got %+v", doc.Events)
	}
	if doc.FindUser("bob") != nil || doc.FindActiveUser("alice") == nil {
		t.Fatalf("unexpected lookups after normalize")
	}
	if !slices.Equal(doc.Roles, []string{"User"}) {
		t.Fatalf("expected stored roles kept, got %v", doc.Roles)
	}
}

func TestDocument_NormalizeAllNullUsers(t *testing.T) {
	doc := Document{Users: []*User{nil, nil}}
	doc.Normalize()
	if doc.Users == nil || len(doc.Users) != 0 {
		t.Fatalf("expected an empty users slice, got %#v", doc.Users)
	}
}
