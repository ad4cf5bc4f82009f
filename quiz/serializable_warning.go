package quiz

import (
	"strconv"
	"unicode/utf8"
)

// SerializableWarning is a serializable human-readable description of the issue found in the input.
type SerializableWarning struct {
	// ByteIdx is the position of the starting byte of the erroneous sequence in the input.
	ByteIdx int `json:"byte_idx"`
	// SymbolIdx is the position of the symbol/letter causing the issue.
	SymbolIdx int `json:"symbol_idx"`
	// Issue is the name of the issue.
	Issue string `json:"issue"`
	// Description is a human-readable description of the issue.
	Description string `json:"description"`
}

var issueNames = [NumIssues]string{
	IssueUnterminatedMarker:   "Unterminated Marker",
	IssueMissingCorrectLetter: "Missing Correct Letter",
	IssueCorrectFallback:      "Correct Letter Fallback",
	IssueBlockTooShort:        "Block Too Short",
	IssueEmptyBlock:           "Empty Block",
	IssueMissingOption:        "Missing Option",
	IssueInvalidEncoding:      "Invalid Encoding",
	IssueEmptyAnswer:          "Empty Answer",
	IssueQuestionTooShort:     "Question Too Short",
	IssueInvalidCorrectLetter: "Invalid Correct Letter",
	IssueQuestionLimitReached: "Question Limit Reached",
	IssueWarningsTruncated:    "Warnings Truncated",
	IssueInvalidWarningsLimit: "Invalid Warnings Limit",
	IssueInvalidPolicy:        "Invalid Policy",
}

// String returns the human-readable name of the Issue.
func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Issue(" + strconv.Itoa(int(i)) + ")"
	}
	return issueNames[i]
}

func describe(w Warning) string {
	switch w.Issue {
	case IssueUnterminatedMarker:
		return "correctness marker has no closing '|' and is treated as plain text."
	case IssueMissingCorrectLetter:
		return "correctness marker has no letter; the question is dropped."
	case IssueCorrectFallback:
		return "correctness letter " + strconv.QuoteRune(rune(w.Got)) + ` is not an option letter; "a" is used instead.`
	case IssueBlockTooShort:
		return "question block is shorter than " + strconv.Itoa(MinBlockLen) + " bytes."
	case IssueEmptyBlock:
		return "question block contains only a number prefix."
	case IssueMissingOption:
		return "question block must contain all of the a), b), c) and d) labels."
	case IssueInvalidEncoding:
		return "question text or answer is not valid UTF-8."
	case IssueEmptyAnswer:
		return "answer " + string(rune(w.Got)) + ") is empty."
	case IssueQuestionTooShort:
		return "question text must be at least " + strconv.Itoa(MinQuestionLen) + " characters long."
	case IssueInvalidCorrectLetter:
		return "correctness letter " + strconv.QuoteRune(rune(w.Got)) + " is not one of a, b, c, d."
	case IssueQuestionLimitReached:
		return "only the first " + strconv.Itoa(MaxQuestions) + " questions are kept."
	case IssueWarningsTruncated:
		return "too many warnings; further warnings suppressed."
	}
	return ""
}

// serialize converts a Warning to a SerializableWarning. The symbol index is counted in input.
func serialize(w Warning, input string) SerializableWarning {
	pos := min(max(w.Pos, 0), len(input))
	return SerializableWarning{
		ByteIdx:     w.Pos,
		SymbolIdx:   utf8.RuneCountInString(input[:pos]),
		Issue:       w.Issue.String(),
		Description: describe(w),
	}
}

// SerializeAll converts the recorded Warnings to SerializableWarnings, appending them to target.
func (w *Warnings) SerializeAll(target *[]SerializableWarning, input string) {
	for _, item := range w.List() {
		*target = append(*target, serialize(item, input))
	}
}
