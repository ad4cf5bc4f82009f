package quiz

import "strings"

// extractBlocks walks the input once and cuts it into candidate blocks, each one ending
// at a well-formed correctness marker "|CORRECT: x|". The next block starts right after
// the closing '|' of the previous marker, whether the previous block was kept or not.
//
// Broken markers never abort the scan: a marker without the closing '|' is treated as
// plain text and the scan resumes one byte after its start.
func extractBlocks(input string, policy CorrectPolicy, warns *Warnings) []block {
	n := len(input)
	m := len(correctMarker)

	var blocks []block
	start := 0
	i := 0

	// at least one byte must follow the literal for a marker to be considered
	for i+m < n {
		if !hasMarkerAt(input, i) {
			i++
			continue
		}

		markerPos := i
		j := skipSpaces(input, i+m)

		if j == n {
			warns.Add(Warning{Issue: IssueMissingCorrectLetter, Pos: markerPos})
			break
		}

		// the closing '|' is searched from the letter itself
		closeIdx := strings.IndexByte(input[j:], markerClose)
		if closeIdx < 0 {
			warns.Add(Warning{Issue: IssueUnterminatedMarker, Pos: markerPos})
			i = markerPos + 1
			continue
		}

		raw := input[j]
		next := j + closeIdx + 1

		switch {
		case closeIdx == 0:
			// "|CORRECT:|" or "|CORRECT:  |"
			warns.Add(Warning{Issue: IssueMissingCorrectLetter, Pos: markerPos})

		case markerPos-start < MinBlockLen:
			warns.Add(Warning{Issue: IssueBlockTooShort, Pos: start})

		default:
			correct := normalizeCorrect(raw, policy)
			if correct == fallbackCorrect && raw != 'a' && raw != 'A' {
				warns.Add(Warning{Issue: IssueCorrectFallback, Pos: j, Got: raw})
			}

			blocks = append(blocks, block{
				Span:    Span{Start: start, End: markerPos},
				marker:  markerPos,
				raw:     raw,
				correct: correct,
			})
		}

		start = next
		i = next
	}

	// the literal itself closes the input
	if i+m == n && hasMarkerAt(input, i) {
		warns.Add(Warning{Issue: IssueMissingCorrectLetter, Pos: i})
	}

	return blocks
}
