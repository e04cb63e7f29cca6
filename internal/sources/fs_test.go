package sources

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

func TestFSSourceListAndFetch(t *testing.T) {
	source := NewFSSource(fstest.MapFS{
		"news/b.md":            {Data: []byte("---\ntitle: B\n---\n")},
		"news/a.md":            {Data: []byte("---\ntitle: A\n---\n")},
		"news/notes.txt":       {Data: []byte("ignored later by extension")},
		"news/archive/old.md":  {Data: []byte("---\ntitle: old\n---\n")},
		"elsewhere/outside.md": {Data: []byte("---\ntitle: no\n---\n")},
	})

	entries, err := source.ListDocuments(context.Background(), interfaces.Location{Path: "/news/"})
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}

	want := []string{"a.md", "b.md", "notes.txt"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %#v", len(want), entries)
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("entry %d: expected %s, got %s", i, name, entries[i].Name)
		}
	}

	content, err := source.FetchContent(context.Background(), entries[0].DownloadURL)
	if err != nil {
		t.Fatalf("FetchContent: %v", err)
	}
	if content != "---\ntitle: A\n---\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestFSSourceMissingDirectory(t *testing.T) {
	source := NewFSSource(fstest.MapFS{})
	if _, err := source.ListDocuments(context.Background(), interfaces.Location{Path: "missing"}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFSSourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewFSSource(fstest.MapFS{"a.md": {Data: []byte("x")}})
	if _, err := source.ListDocuments(ctx, interfaces.Location{}); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := source.FetchContent(ctx, "a.md"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestNewDirSourceRejectsMissingPath(t *testing.T) {
	if _, err := NewDirSource("does/not/exist"); err == nil {
		t.Fatal("expected error for missing base path")
	}
	if _, err := NewDirSource(t.TempDir()); err != nil {
		t.Fatalf("NewDirSource: %v", err)
	}
}

func TestCleanRelative(t *testing.T) {
	cases := map[string]string{
		"":              ".",
		"/":             ".",
		"content/news/": "content/news",
		"../../etc":     "etc",
		"./a/../b/c.md": "b/c.md",
	}
	for input, want := range cases {
		if got := cleanRelative(input); got != want {
			t.Fatalf("cleanRelative(%q) = %q, want %q", input, got, want)
		}
	}
}
