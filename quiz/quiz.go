package quiz

import (
	"strconv"
	"strings"
)

// Answers holds the text of the four options.
type Answers struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
	C string `json:"c" yaml:"c"`
	D string `json:"d" yaml:"d"`
}

func (a Answers) list() [NumOptions]string {
	return [NumOptions]string{a.A, a.B, a.C, a.D}
}

// Question is a single multiple-choice question.
type Question struct {
	// ID is the 1-based position of the question in its quiz, as a decimal string.
	ID string `json:"-" yaml:"-"`

	Text    string  `json:"question" yaml:"question"`
	Answers Answers `json:"answers" yaml:"answers"`

	// Correct is the letter of the correct option, "a" to "d".
	Correct string `json:"correct" yaml:"correct"`
}

// Quiz is an ordered list of questions.
//
// Its JSON form is an object keyed by question ID, in question order:
//
//	{"1": {"question": "...", "answers": {"a": "...", ...}, "correct": "b"}, "2": {...}}
type Quiz struct {
	Questions []Question
}

func (q Quiz) Len() int {
	return len(q.Questions)
}

// toQuestion copies the views into a self-contained Question with the given 1-based number,
// so that the result does not keep the whole input alive.
func (pq *parsedQuestion) toQuestion(num int) Question {
	return Question{
		ID:   strconv.Itoa(num),
		Text: strings.Clone(pq.text),
		Answers: Answers{
			A: strings.Clone(pq.answers[0]),
			B: strings.Clone(pq.answers[1]),
			C: strings.Clone(pq.answers[2]),
			D: strings.Clone(pq.answers[3]),
		},
		Correct: string(rune(pq.correct)),
	}
}
