// core/seq/text.go
package seq

import "strings"

// Chomp removes one trailing line terminator: "\r\n" as a unit, otherwise a
// single '\n' or '\r'.
func Chomp(line string) string {
	n := len(line)
	switch {
	case n >= 2 && line[n-2] == '\r' && line[n-1] == '\n':
		return line[:n-2]
	case n >= 1 && (line[n-1] == '\n' || line[n-1] == '\r'):
		return line[:n-1]
	}
	return line
}

// isStripped reports the bytes removed from sequences and quality strings.
func isStripped(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isSpace matches ASCII whitespace as used for header tokenizing.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// StripWhitespace drops every space, tab, '\n' and '\r' from s.
func StripWhitespace(s string) string {
	i := 0
	for i < len(s) && !isStripped(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		if !isStripped(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ExtractID returns header up to (not including) its first whitespace byte.
func ExtractID(header string) string {
	for i := 0; i < len(header); i++ {
		if isSpace(header[i]) {
			return header[:i]
		}
	}
	return header
}

// TrimHeader removes leading and trailing ASCII whitespace. NUL bytes are
// kept.
func TrimHeader(header string) string {
	start, end := 0, len(header)
	for start < end && isSpace(header[start]) {
		start++
	}
	for end > start && isSpace(header[end-1]) {
		end--
	}
	return header[start:end]
}

// RemoveGaps drops every occurrence of gap from s.
func RemoveGaps(s string, gap byte) string {
	if strings.IndexByte(s, gap) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != gap {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
