package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

var idPattern = regexp.MustCompile(`\(id (\d+)\)`)

func TestShelfCLI_AddListToggleRemove(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Your Book Collection (0)") || !strings.Contains(out, "empty") {
		t.Fatalf("unexpected empty listing: %q", out)
	}

	out, err = run(t, dir, "add", "--title", "Dune", "--author", "Frank Herbert", "--genre", "Science Fiction", "--rating", "5", "--notes", "spice")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	m := idPattern.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("expected id in output, got %q", out)
	}
	id := m[1]

	if _, err := run(t, dir, "add", "--title", "Emma", "--author", "Jane Austen"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, _ = run(t, dir, "list")
	if !strings.Contains(out, "Your Book Collection (2)") || !strings.Contains(out, "★★★★★") {
		t.Fatalf("unexpected listing: %q", out)
	}

	out, _ = run(t, dir, "list", "--search", "HERBERT")
	if !strings.Contains(out, "(1)") || strings.Contains(out, "Emma") {
		t.Fatalf("unexpected search result: %q", out)
	}

	out, _ = run(t, dir, "list", "--search", "tolkien")
	if !strings.Contains(out, "No books match") {
		t.Fatalf("expected no-match message, got %q", out)
	}

	out, err = run(t, dir, "toggle", id)
	if err != nil || !strings.Contains(out, "is now Read") {
		t.Fatalf("toggle: %v %q", err, out)
	}

	if _, err := run(t, dir, "remove", id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	out, _ = run(t, dir, "list")
	if !strings.Contains(out, "(1)") || strings.Contains(out, "Dune") {
		t.Fatalf("expected Dune removed, got %q", out)
	}
}

func TestShelfCLI_AddRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	cases := [][]string{
		{"add", "--title", "Dune"},
		{"add", "--title", "Dune", "--author", "Herbert", "--rating", "6"},
		{"add", "--title", "Dune", "--author", "Herbert", "--status", "Done"},
		{"add", "--title", "Dune", "--author", "Herbert", "--genre", "Cookbooks"},
	}
	for _, args := range cases {
		if _, err := run(t, dir, args...); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}

	out, _ := run(t, dir, "list")
	if !strings.Contains(out, "(0)") {
		t.Errorf("expected nothing added, got %q", out)
	}
}

func TestShelfCLI_InvalidID(t *testing.T) {
	if _, err := run(t, t.TempDir(), "toggle", "abc"); err == nil {
		t.Errorf("expected error for non-numeric id")
	}
}
