package quiz

// skipQuestionPrefix skips leading whitespace and an optional question number like
// "12", "3." or "4)" starting at i. The terminator is only consumed after digits.
// ok is false if nothing is left in s.
func skipQuestionPrefix(s string, i int) (pos int, ok bool) {
	i = skipSpaces(s, i)

	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i > digitsStart && i < len(s) && isNumberTerminator(s[i]) {
		i++
	}

	i = skipSpaces(s, i)
	return i, i < len(s)
}
