package quiz

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrQuestionTooShort = fmt.Errorf("question text must be at least %d characters long", MinQuestionLen)
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrInvalidCorrect   = errors.New("correct option must be one of a, b, c, d")
	ErrInvalidEncoding  = errors.New("text is not valid UTF-8")
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrTooManyQuestions = fmt.Errorf("quiz can have at most %d questions", MaxQuestions)
)

// checkQuestion applies the acceptance rules to a question.
// It returns the first failed rule as an Issue, with ok set to false.
func checkQuestion(text string, answers *[NumOptions]string, correct byte) (issue Issue, ok bool) {
	if utf8.RuneCountInString(text) < MinQuestionLen {
		return IssueQuestionTooShort, false
	}

	for _, a := range answers {
		if len(a) < MinAnswerLen {
			return IssueEmptyAnswer, false
		}
	}

	if correct < 'a' || correct > 'd' {
		return IssueInvalidCorrectLetter, false
	}

	return 0, true
}

// Validate checks that the Question would have been accepted by the [Parser].
// It is meant for questions coming from other sources, like an imported quiz.
func (q *Question) Validate() error {
	answers := q.Answers.list()

	if !utf8.ValidString(q.Text) {
		return fmt.Errorf("question: %w", ErrInvalidEncoding)
	}

	for k, a := range answers {
		if !utf8.ValidString(a) {
			return fmt.Errorf("answer %c: %w", optionLetters[k], ErrInvalidEncoding)
		}
	}

	var correct byte
	if len(q.Correct) == 1 {
		correct = q.Correct[0]
	}

	issue, ok := checkQuestion(q.Text, &answers, correct)
	if ok {
		return nil
	}

	switch issue {
	case IssueQuestionTooShort:
		return ErrQuestionTooShort
	case IssueEmptyAnswer:
		for k, a := range answers {
			if a == "" {
				return fmt.Errorf("answer %c: %w", optionLetters[k], ErrEmptyAnswer)
			}
		}
		return ErrEmptyAnswer
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidCorrect, q.Correct)
	}
}

// Validate checks the number of questions and every question in the Quiz.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return ErrEmptyQuiz
	}

	if len(q.Questions) > MaxQuestions {
		return ErrTooManyQuestions
	}

	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return fmt.Errorf("question %q: %w", q.Questions[i].ID, err)
		}
	}

	return nil
}
