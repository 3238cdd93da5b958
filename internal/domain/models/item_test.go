package models

import (
	"strings"
	"testing"
)

func TestNewItemID(t *testing.T) {
	tests := []struct {
		kind   Kind
		prefix string
	}{
		{KindFolder, "folder-"},
		{KindFile, "file-"},
	}

	for _, tt := range tests {
		id := NewItemID(tt.kind)
		if !strings.HasPrefix(id, tt.prefix) {
			t.Errorf("NewItemID(%s) = %q, want prefix %q", tt.kind, id, tt.prefix)
		}
		kind, ok := KindFromID(id)
		if !ok || kind != tt.kind {
			t.Errorf("KindFromID(%q) = (%s, %v), want (%s, true)", id, kind, ok, tt.kind)
		}
	}

	if NewItemID(KindFile) == NewItemID(KindFile) {
		t.Error("consecutive ids collided")
	}
}

func TestKindFromID(t *testing.T) {
	tests := []struct {
		id   string
		want Kind
		ok   bool
	}{
		{"folder-1700000000000-abcd1234", KindFolder, true},
		{"file-1700000000000-abcd1234", KindFile, true},
		{"legacy-id", "", false},
		{"", "", false},
		{"folderish-1", "", false},
	}

	for _, tt := range tests {
		got, ok := KindFromID(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindFromID(%q) = (%s, %v), want (%s, %v)", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAlternateKind(t *testing.T) {
	if AlternateKind(KindFolder) != KindFile {
		t.Error("AlternateKind(folder) != file")
	}
	if AlternateKind(KindFile) != KindFolder {
		t.Error("AlternateKind(file) != folder")
	}
}

func TestPatchApply(t *testing.T) {
	parent := "folder-1-a"
	base := Item{
		ID:       "file-1-b",
		Kind:     KindFile,
		Name:     "a.txt",
		ParentID: &parent,
		Path:     "/Docs/a.txt",
		X:        3,
		Y:        4,
	}

	t.Run("rename leaves parent and position alone", func(t *testing.T) {
		item := base
		RenamePatch{Name: "b.txt", Path: "/Docs/b.txt"}.Apply(&item)

		if item.Name != "b.txt" || item.Path != "/Docs/b.txt" {
			t.Errorf("rename applied %q %q", item.Name, item.Path)
		}
		if item.ParentID != &parent || item.X != 3 || item.Y != 4 {
			t.Error("rename touched unrelated fields")
		}
	})

	t.Run("move to root clears parent", func(t *testing.T) {
		item := base
		MovePatch{ParentID: nil, Path: "/a.txt"}.Apply(&item)

		if item.ParentID != nil {
			t.Errorf("parentId = %v, want nil", *item.ParentID)
		}
		if item.Path != "/a.txt" {
			t.Errorf("path = %q, want /a.txt", item.Path)
		}
		if item.Name != "a.txt" {
			t.Error("move changed the name")
		}
	})

	t.Run("path patch rewrites path only", func(t *testing.T) {
		item := base
		PathPatch{Path: "/Archive/a.txt"}.Apply(&item)

		if item.Path != "/Archive/a.txt" {
			t.Errorf("path = %q", item.Path)
		}
		if item.ParentID != &parent || item.Name != "a.txt" {
			t.Error("path patch touched tree fields")
		}
	})

	t.Run("position patch leaves tree fields alone", func(t *testing.T) {
		item := base
		PositionPatch{X: 120, Y: 88}.Apply(&item)

		if item.X != 120 || item.Y != 88 {
			t.Errorf("position = (%v, %v)", item.X, item.Y)
		}
		if item.Path != "/Docs/a.txt" || item.ParentID != &parent {
			t.Error("position patch touched tree fields")
		}
	})
}
