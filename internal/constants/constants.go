// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// AppName is used for the config and data directories
const AppName = "neosh"

// Application defaults
const (
	DefaultPrompt      = "neo > "
	DefaultPromptColor = "2"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// File names created under the data directory
const (
	HistoryFileName  = "history.log"
	ErrorLogFileName = "error.log"
)

// Buffer sizing. Both the line buffer and the token array grow by
// GrowthNumerator/GrowthDenominator (x1.5) when full.
const (
	InitialLineCapacity  = 246
	InitialTokenCapacity = 64
	GrowthNumerator      = 3
	GrowthDenominator    = 2
)

// HistorySeparator sits between the recorded line and its timestamp
const HistorySeparator = " : "

// DefaultHistoryListSize is the number of entries the history builtin prints
const DefaultHistoryListSize = 10

// ShutdownTimeout bounds the teardown hooks run on exit
const ShutdownTimeout = 5 * time.Second

// DefaultSuggestions are the completion words offered on Tab, in match order
var DefaultSuggestions = []string{
	"help",
	"hello",
	"history",
	"halt",
	"hack",
}
