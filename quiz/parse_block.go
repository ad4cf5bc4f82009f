package quiz

import "unicode/utf8"

// parseBlock slices a block into the question text and the four answers.
// Every string in the result is a view into input.
func parseBlock(input string, blk block, warns *Warnings) (parsedQuestion, bool) {
	s := input[:blk.End]

	pos, ok := skipQuestionPrefix(s, blk.Start)
	if !ok {
		warns.Add(Warning{Issue: IssueEmptyBlock, Pos: blk.Start})
		return parsedQuestion{}, false
	}

	labels, ok := findOptions(s, pos)
	if !ok {
		warns.Add(Warning{Issue: IssueMissingOption, Pos: pos})
		return parsedQuestion{}, false
	}

	// the question runs up to the "a)" label even when other labels come first
	q := parsedQuestion{
		text:    trimSpaces(s[pos:labels[0]]),
		correct: blk.correct,
	}

	if !utf8.ValidString(q.text) {
		warns.Add(Warning{Issue: IssueInvalidEncoding, Pos: pos})
		return parsedQuestion{}, false
	}

	for k, label := range labels {
		answer := trimAnswer(s[label+2 : answerEnd(&labels, label, blk.End)])

		if !utf8.ValidString(answer) {
			warns.Add(Warning{Issue: IssueInvalidEncoding, Pos: label})
			return parsedQuestion{}, false
		}

		if len(answer) < MinAnswerLen {
			warns.Add(Warning{Issue: IssueEmptyAnswer, Pos: label, Got: optionLetters[k]})
			return parsedQuestion{}, false
		}

		q.answers[k] = answer
	}

	return q, true
}
