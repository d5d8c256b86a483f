// Package clicontext provides global CLI state shared across packages.
package clicontext

import "sync"

var (
	mu        sync.RWMutex
	assumeYes bool
)

// AssumeYes reports whether prompts should be answered automatically
// (non-interactive mode, e.g. when running from a script).
func AssumeYes() bool {
	mu.RLock()
	defer mu.RUnlock()
	return assumeYes
}

// SetAssumeYes sets the assume-yes flag.
func SetAssumeYes(value bool) {
	mu.Lock()
	defer mu.Unlock()
	assumeYes = value
}
