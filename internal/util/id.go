// Package util contains small internal helpers shared across agentcore
// packages.
package util

import "github.com/google/uuid"

// NewID generates a fresh unique identifier. Used for agent ids and task ids;
// uniqueness within a process lifetime follows from UUID collision odds.
func NewID() string { return uuid.NewString() }
