package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCountGoLines(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":             "package a\n\n  \nfunc A() {}\n",
		"a_test.go":        "package a\n\nfunc TestA() {}\n",
		"notes.md":         "not go\n",
		"_examples/x/x.go": "package x\nfunc X() {}\n",
		".hidden/h.go":     "package h\n",
		"sub/b.go":         "package sub\r\n\tvar B = 1",
	}
	for name, body := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	prod, err := countGoLines(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if prod != 4 {
		t.Errorf("production lines = %d, want 4", prod)
	}

	tests, err := countGoLines(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if tests != 2 {
		t.Errorf("test lines = %d, want 2", tests)
	}
}
