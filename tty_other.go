//go:build !unix

package tui

// isTerminal always reports true; tcell reports a missing console itself.
func isTerminal(fd int) bool {
	return true
}
