// Package controller provides output adapters for displaying search results.
package controller

import (
	m "github.com/mouse-blink/gorep/internal/model"
)

// UI defines the interface for reporting a finished search run.
// Implementations can use different output methods (simple text, styled table, etc).
type UI interface {
	// DisplaySummary shows per-file counts and totals for a completed run.
	DisplaySummary(summary m.Summary) error
}
