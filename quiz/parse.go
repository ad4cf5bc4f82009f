package quiz

import "fmt"

// Parser extracts questions from free-form text.
// The zero value is ready to use and falls back to "a" for unknown correctness letters.
type Parser struct {
	policy CorrectPolicy
}

// NewParser creates a Parser with the given policy for unknown correctness letters.
// It returns a ConfigError if the policy is unknown.
func NewParser(policy CorrectPolicy) (Parser, error) {
	if policy < 0 || policy > maxCorrectPolicy {
		return Parser{}, NewConfigError(
			IssueInvalidPolicy,
			fmt.Errorf("unknown correct letter policy %d", policy),
		)
	}

	return Parser{policy: policy}, nil
}

// Parse extracts up to [MaxQuestions] questions from input.
//
// Malformed candidates are dropped and, if warns is not nil, reported there.
// Parse never fails: input without a single valid question gives an empty Quiz.
func (p Parser) Parse(input string, warns *Warnings) Quiz {
	blocks := extractBlocks(input, p.policy, warns)

	quiz := Quiz{
		Questions: make([]Question, 0, min(len(blocks), MaxQuestions)),
	}

	for _, blk := range blocks {
		if len(quiz.Questions) == MaxQuestions {
			warns.Add(Warning{Issue: IssueQuestionLimitReached, Pos: blk.Start})
			break
		}

		pq, ok := parseBlock(input, blk, warns)
		if !ok {
			continue
		}

		if issue, ok := checkQuestion(pq.text, &pq.answers, pq.correct); !ok {
			w := Warning{Issue: issue, Pos: blk.Start}
			if issue == IssueInvalidCorrectLetter {
				w.Pos = blk.marker
				w.Got = blk.raw
			}
			warns.Add(w)
			continue
		}

		quiz.Questions = append(quiz.Questions, pq.toQuestion(len(quiz.Questions)+1))
	}

	return quiz
}

// Parse extracts questions from input with the default [Parser].
func Parse(input string) Quiz {
	return Parser{}.Parse(input, nil)
}
