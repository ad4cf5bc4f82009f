package quiz

// normalizeCorrect lowercases the raw marker letter. A letter outside a..d becomes
// "a" under [CorrectFallback] and 0 under [CorrectReject].
func normalizeCorrect(raw byte, policy CorrectPolicy) byte {
	c := raw
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	if c >= 'a' && c <= 'd' {
		return c
	}

	if policy == CorrectReject {
		return 0
	}

	return fallbackCorrect
}
