// Package grading scores submitted answers against a quiz.
package grading

import (
	"errors"
	"math"
	"strings"

	"github.com/VxidDev/eduDuck/quiz"
)

var ErrNoQuizData = errors.New("no quiz data")

// QuestionResult is the outcome for one question.
type QuestionResult struct {
	ID      string `json:"-"`
	Correct string `json:"correct"`
	User    string `json:"user"`
	Right   bool   `json:"right"`
}

// Result is the outcome of a whole quiz submission.
type Result struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Results    Results `json:"results"`
}

// Grade compares answers, keyed by question ID, with the correct letters of q.
//
// Letters are compared case-insensitively. A missing answer is wrong, and so is any
// answer to a question without a correct letter. The percentage is rounded to one decimal.
func Grade(q quiz.Quiz, answers map[string]string) (Result, error) {
	total := q.Len()
	if total == 0 {
		return Result{}, ErrNoQuizData
	}

	res := Result{
		Total:   total,
		Results: make(Results, 0, total),
	}

	for _, question := range q.Questions {
		user := answers[question.ID]
		right := question.Correct != "" && strings.EqualFold(question.Correct, user)
		if right {
			res.Score++
		}

		res.Results = append(res.Results, QuestionResult{
			ID:      question.ID,
			Correct: question.Correct,
			User:    user,
			Right:   right,
		})
	}

	res.Percentage = Percentage(res.Score, res.Total)
	return res, nil
}

// Percentage returns score/total as a percentage rounded to one decimal.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*1000) / 10
}
