package quiz

// allOptions is the option mask with every option found.
const allOptions uint8 = 1<<NumOptions - 1

// findOptions scans s from the index from for the option labels "a)".."d)".
// Only the first occurrence of each label counts. The scan stops as soon as all four are found.
//
// labels holds the byte index of each label's letter, indexed by option (a=0 .. d=3).
func findOptions(s string, from int) (labels [NumOptions]int, ok bool) {
	var mask uint8

	for i := from; i+1 < len(s) && mask != allOptions; i++ {
		c := s[i]
		if c < 'a' || c > 'd' || s[i+1] != optionClose {
			continue
		}

		bit := uint8(1) << (c - 'a')
		if mask&bit == 0 {
			mask |= bit
			labels[c-'a'] = i
		}

		// skip the ')'
		i++
	}

	return labels, mask == allOptions
}

// answerEnd returns the end of the answer whose label starts at label: the nearest
// following label, or end if the label is the last one in the block.
func answerEnd(labels *[NumOptions]int, label, end int) int {
	next := end
	for _, l := range labels {
		if l > label && l < next {
			next = l
		}
	}
	return next
}
