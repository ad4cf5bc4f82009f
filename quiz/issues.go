package quiz

// Issue defines the kinds of problems found while extracting questions or configuring the [Parser].
type Issue int

const (
	// IssueUnterminatedMarker means a correctness marker has no closing '|'. The marker is treated as plain text.
	IssueUnterminatedMarker Issue = iota

	// IssueMissingCorrectLetter means the input ends right after the marker literal, or the marker
	// is closed before any letter is given. The candidate block is dropped.
	IssueMissingCorrectLetter

	// IssueCorrectFallback means the marker letter is not an option letter and "a" was used instead.
	IssueCorrectFallback

	// IssueBlockTooShort means the block is shorter than [MinBlockLen] bytes.
	IssueBlockTooShort

	// IssueEmptyBlock means nothing is left of the block after the numbering prefix.
	IssueEmptyBlock

	// IssueMissingOption means at least one of the "a)".."d)" labels is not found in the block.
	IssueMissingOption

	// IssueInvalidEncoding means the question or an answer is not valid UTF-8.
	IssueInvalidEncoding

	// IssueEmptyAnswer means an answer is empty after trimming.
	IssueEmptyAnswer

	// IssueQuestionTooShort means the question text has fewer than [MinQuestionLen] characters.
	IssueQuestionTooShort

	// IssueInvalidCorrectLetter means the correctness letter is not one of a, b, c or d.
	IssueInvalidCorrectLetter

	// IssueQuestionLimitReached means [MaxQuestions] questions were accepted and the rest of the input is ignored.
	IssueQuestionLimitReached

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated

	// IssueInvalidWarningsLimit reports a warnings limit below 1.
	IssueInvalidWarningsLimit

	// IssueInvalidPolicy reports an unknown [CorrectPolicy].
	IssueInvalidPolicy

	// NumIssues is the number of defined issues.
	NumIssues
)
