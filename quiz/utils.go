package quiz

// isSpace reports whether c is ASCII whitespace: space, tab, line feed, form feed or carriage return.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberTerminator reports whether c may close a question number, as in "1." "2)" or "3:".
func isNumberTerminator(c byte) bool {
	return c == '.' || c == ')' || c == ':'
}

// isAnswerTrail reports whether c is punctuation stripped from the end of an answer.
func isAnswerTrail(c byte) bool {
	switch c {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

// skipSpaces returns the index of the first non-whitespace byte of s at or after i,
// or len(s) if there is none.
func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// trimSpaces cuts leading and trailing ASCII whitespace. The result shares memory with s.
func trimSpaces(s string) string {
	start := skipSpaces(s, 0)
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// trimAnswer trims whitespace and the trailing punctuation of an answer.
func trimAnswer(s string) string {
	s = trimSpaces(s)
	end := len(s)
	for end > 0 && (isAnswerTrail(s[end-1]) || isSpace(s[end-1])) {
		end--
	}
	return s[:end]
}

// hasMarkerAt reports whether the correctness marker starts at i.
// The caller guarantees i+len(correctMarker) <= len(s).
func hasMarkerAt(s string, i int) bool {
	// cheap rejection on the first and the last byte before comparing the whole literal
	if s[i] != correctMarker[0] || s[i+markerColonIdx] != ':' {
		return false
	}
	return s[i:i+len(correctMarker)] == correctMarker
}
