package database

import (
	"strings"
	"testing"
)

func TestDSNOmitsColonWithoutPassword(t *testing.T) {
	got := dsn("app", "", "localhost", "3306", "pm")
	if !strings.HasPrefix(got, "app@tcp(localhost:3306)/pm?") {
		t.Fatalf("unexpected dsn: %q", got)
	}
}

func TestDSNIncludesPassword(t *testing.T) {
	got := dsn("app", "pw", "db", "3306", "pm")
	if !strings.HasPrefix(got, "app:pw@tcp(db:3306)/pm?") {
		t.Fatalf("unexpected dsn: %q", got)
	}
}

func TestDSNReportsMatchedRows(t *testing.T) {
	// Without clientFoundRows the driver counts changed rows, and an edit
	// that re-submits current values would be mistaken for a missing row.
	got := dsn("app", "", "db", "3306", "pm")
	if !strings.Contains(got, "clientFoundRows=true") {
		t.Fatalf("dsn must enable clientFoundRows: %q", got)
	}
	if !strings.Contains(got, "parseTime=true") || !strings.Contains(got, "loc=UTC") {
		t.Fatalf("dsn must keep parseTime and UTC settings: %q", got)
	}
}
