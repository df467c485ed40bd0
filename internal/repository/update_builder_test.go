package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBuildUpdateEmptyFields(t *testing.T) {
	_, _, err := BuildUpdate("projects", "id", 7, Fields{}, []string{"project_name", "status"})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestBuildUpdateAllFieldsEmptyStrings(t *testing.T) {
	fields := Fields{"project_name": "", "status": ""}
	_, _, err := BuildUpdate("projects", "id", 7, fields, []string{"project_name", "status"})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate for all-empty fields, got %v", err)
	}
}

func TestBuildUpdateTouchesOnlySuppliedColumns(t *testing.T) {
	fields := Fields{"project_name": "Apollo"}
	q, args, err := BuildUpdate("projects", "id", 3, fields, []string{"project_name", "status"})
	if err != nil {
		t.Fatalf("BuildUpdate error: %v", err)
	}
	if q != "UPDATE projects SET project_name = ? WHERE id = ?" {
		t.Fatalf("unexpected statement: %q", q)
	}
	if !reflect.DeepEqual(args, []any{"Apollo", uint64(3)}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildUpdateSkipsEmptyString(t *testing.T) {
	fields := Fields{"project_name": "", "status": "Active"}
	q, args, err := BuildUpdate("projects", "id", 9, fields, []string{"project_name", "status"})
	if err != nil {
		t.Fatalf("BuildUpdate error: %v", err)
	}
	if q != "UPDATE projects SET status = ? WHERE id = ?" {
		t.Fatalf("empty-string column leaked into statement: %q", q)
	}
	if !reflect.DeepEqual(args, []any{"Active", uint64(9)}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildUpdateIgnoresUnlistedKeys(t *testing.T) {
	// Keys outside the whitelist must never reach the statement text, no
	// matter what the client sends.
	fields := Fields{"status": "Done", "id": 999, "role_id = 1 --": "x"}
	q, args, err := BuildUpdate("projects", "id", 4, fields, []string{"project_name", "status"})
	if err != nil {
		t.Fatalf("BuildUpdate error: %v", err)
	}
	if q != "UPDATE projects SET status = ? WHERE id = ?" {
		t.Fatalf("unexpected statement: %q", q)
	}
	if !reflect.DeepEqual(args, []any{"Done", uint64(4)}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildUpdateWhitelistOrderIsStable(t *testing.T) {
	fields := Fields{"status": "Active", "project_name": "Apollo"}
	q, _, err := BuildUpdate("projects", "id", 1, fields, []string{"project_name", "status"})
	if err != nil {
		t.Fatalf("BuildUpdate error: %v", err)
	}
	if q != "UPDATE projects SET project_name = ?, status = ? WHERE id = ?" {
		t.Fatalf("columns not emitted in whitelist order: %q", q)
	}
}

func TestExecUpdateZeroRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE projects SET status = \\? WHERE id = \\?").
		WithArgs("Done", uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ExecUpdate(context.Background(), db, "UPDATE projects SET status = ? WHERE id = ?", []any{"Done", uint64(42)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero affected rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestExecUpdateExecutionFailureIsNotNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("UPDATE projects").WillReturnError(boom)

	err = ExecUpdate(context.Background(), db, "UPDATE projects SET status = ? WHERE id = ?", []any{"Done", uint64(42)})
	if !errors.Is(err, boom) {
		t.Fatalf("expected driver error to propagate, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("execution failure must not be reported as ErrNotFound")
	}
}
