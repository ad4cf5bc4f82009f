package quiz

const (
	// MaxQuestions is the maximum number of questions a single [Quiz] can hold.
	MaxQuestions = 20

	// MinBlockLen is the minimum byte length of a question block, measured from the block start
	// up to the correctness marker. Shorter blocks are skipped without parsing.
	MinBlockLen = 10

	// MinQuestionLen is the minimum number of characters (not bytes) in a question text.
	MinQuestionLen = 5

	// MinAnswerLen is the minimum byte length of a trimmed answer.
	MinAnswerLen = 1

	// NumOptions is the number of answer options each question must have.
	NumOptions = 4
)

const (
	// correctMarker opens the correctness marker, e.g. "|CORRECT: b|".
	correctMarker = "|CORRECT:"

	// markerColonIdx is the offset of the ':' inside correctMarker, checked before the full comparison.
	markerColonIdx = len(correctMarker) - 1

	// markerClose terminates the correctness marker.
	markerClose = '|'

	// optionClose follows the option letter in an option label, e.g. "a)".
	optionClose = ')'

	// fallbackCorrect is used when the marker letter is not an option letter
	// and the [Parser] runs with [CorrectFallback].
	fallbackCorrect = 'a'
)

// optionLetters lists the option letters in output order.
var optionLetters = [NumOptions]byte{'a', 'b', 'c', 'd'}

// CorrectPolicy decides what happens when the correctness marker holds a letter
// other than a, b, c or d.
type CorrectPolicy int

const (
	// CorrectFallback replaces an unknown letter with "a" and keeps the question.
	CorrectFallback CorrectPolicy = iota

	// CorrectReject drops the question.
	CorrectReject

	maxCorrectPolicy = CorrectReject
)
