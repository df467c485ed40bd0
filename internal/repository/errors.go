// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values reused across repositories so
// that higher layers can distinguish failure scenarios without inspecting
// driver error strings.
package repository

import "errors"

// ErrNotFound is returned when an update or delete affected zero rows, or a
// lookup matched nothing.  Handlers translate this into HTTP 404; it is
// deliberately distinct from a query execution failure.
var ErrNotFound = errors.New("record not found")

// ErrNoFieldsToUpdate is returned by the update builder when every candidate
// field was absent or empty.  Handlers translate this into HTTP 400 rather
// than issuing a no-op statement.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// ErrUsernameExists is returned when a users insert violates the unique
// username constraint.  Handlers translate this into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrMemberExists is returned when a project membership insert hits the
// composite (project_id, user_id) primary key.  Handlers translate this
// into HTTP 409.
var ErrMemberExists = errors.New("member already assigned to project")
