// Package store defines the record store primitive: whole-document load and
// save of named collections. Backends are interchangeable so tests can run on
// the in-memory implementation while production uses the file or postgres one.
package store

import "context"

// Collection keys. Each key maps to one persisted JSON document.
const (
	KeyMembers         = "members"
	KeyCells           = "cells"
	KeySessions        = "sessions"
	KeyAttendance      = "attendance"
	KeyPrayerSchedules = "prayer-schedules"
	KeyPrayerChecks    = "prayer-checks"
	KeyAccounts        = "users"
	KeyWeeklyReports   = "weekly-reports"
)

// Store is the load/persist contract for a named collection document.
//
// Load unmarshals the persisted document for key into doc; when the key has
// never been written, the default value already present in doc is persisted
// as-is and kept (first access materializes the default). Save overwrites the
// whole document. Neither call provides locking: callers own the
// read-modify-write cycle.
type Store interface {
	Load(ctx context.Context, key string, doc any) error
	Save(ctx context.Context, key string, doc any) error
}
