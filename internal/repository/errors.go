// Package repository contains the data access layer, separated from HTTP
// handlers. Each entity has its own repository over a shared *sql.DB pool.
// Sentinel errors let handlers map failure scenarios to HTTP responses and
// user-facing messages without inspecting driver error strings.
package repository

import "errors"

// ErrNotFound is returned when a row does not exist. Handlers translate it
// into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a unique name (category) is already
// taken. Checked before the write so it surfaces as a field-level error.
var ErrDuplicateName = errors.New("name already exists")

// ErrDuplicateRound is returned when a startup session round already exists.
var ErrDuplicateRound = errors.New("round already exists")

// ErrCategoryInUse is returned when deleting a category that still has menus.
var ErrCategoryInUse = errors.New("category has menus")

// ErrRegistrationClosed is returned when a session signup arrives outside the
// registration window or for a non-accepting session.
var ErrRegistrationClosed = errors.New("registration closed")
