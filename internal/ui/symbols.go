package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Operation completed successfully
	SymbolFail    = "✗" // Operation failed
	SymbolWarn    = "⚠" // Non-fatal problem
	SymbolCurrent = "●" // Currently active item
	SymbolMonitor = "🖥" // Monitor listing marker
)
