package core

import (
	"strings"
	"testing"
)

func TestCleanNameAccepts(t *testing.T) {
	cases := map[string]string{
		"inventory_snapshot.db": "inventory_snapshot.db",
		"exports/report.csv":    "exports/report.csv",
		"a/./b.txt":             "a/b.txt",
		"weird..name.db":        "weird..name.db",
	}
	for in, want := range cases {
		got, err := CleanName(in)
		if err != nil {
			t.Fatalf("CleanName(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("CleanName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanNameRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "/abs.db", "../escape.db", "..", "a/../../b.db"} {
		if _, err := CleanName(in); err == nil {
			t.Fatalf("CleanName(%q): expected error", in)
		}
	}
}

func TestCleanNameTraversalMessage(t *testing.T) {
	_, err := CleanName("../up.db")
	if err == nil || !strings.Contains(err.Error(), "escapes") {
		t.Fatalf("unexpected error %v", err)
	}
}
