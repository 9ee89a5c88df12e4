// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/task).
// This root package holds sentinel errors, validation types, and the
// pagination primitives shared across all entities.
package domain
