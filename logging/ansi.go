// Package logging handles the filesystem side of result output: the
// results directory lifecycle and sanitizing text before it is written
// to artifact files.
package logging

import (
	"strings"

	"github.com/acarl005/stripansi"
)

// StripANSIEscapeSequences removes ANSI color and formatting escape
// sequences from s. Runner and application output is frequently
// colorized; artifacts on disk must not be.
func StripANSIEscapeSequences(s string) string {
	return stripansi.Strip(s)
}

// CleanAttachmentText prepares text content for an artifact file:
// escape sequences are stripped and line endings normalized to "\n".
func CleanAttachmentText(s string) string {
	s = StripANSIEscapeSequences(s)
	return strings.ReplaceAll(s, "\r\n", "\n")
}
