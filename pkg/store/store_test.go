package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(t *testing.T) *Collection[record] {
	t.Helper()
	coll, err := NewCollection[record](t.TempDir(), "records.json", nil)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	return coll
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	coll := newTestCollection(t)

	got := coll.Load(context.Background())
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	coll := newTestCollection(t)
	if err := os.WriteFile(coll.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	got := coll.Load(context.Background())
	if len(got) != 0 {
		t.Fatalf("expected corrupt file to load empty, got %d records", len(got))
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	want := []record{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	if err := coll.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := coll.Load(ctx)
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSaveOverwritesWhole(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	if err := coll.Save(ctx, []record{{ID: 1}, {ID: 2}, {ID: 3}}); err != nil {
		t.Fatalf("initial Save: %v", err)
	}
	if err := coll.Save(ctx, []record{{ID: 9, Name: "only"}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got := coll.Load(ctx)
	if len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("expected single overwritten record, got %+v", got)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	if err := coll.Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(coll.Path())
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	var decoded []record
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Fatalf("expected empty array on disk, got %q", string(raw))
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	coll, err := NewCollection[record](dir, "records.json", nil)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}

	if err := coll.Save(ctx, []record{{ID: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "records.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only records.json, got %v", names)
	}
}

func TestNewCollectionCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	coll, err := NewCollection[record](dir, "records.json", nil)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	if err := coll.Save(context.Background(), []record{{ID: 1}}); err != nil {
		t.Fatalf("Save into created dir: %v", err)
	}
}
