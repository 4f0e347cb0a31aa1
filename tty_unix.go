//go:build unix

package tui

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal.
// Only terminals answer the window size ioctl.
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	return err == nil
}
