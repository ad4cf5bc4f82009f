package quiz

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuiz_MarshalJSON_KeepsOrder(t *testing.T) {
	var quiz Quiz
	for _, id := range []string{"1", "2", "10", "3"} {
		quiz.Questions = append(quiz.Questions, Question{
			ID:      id,
			Text:    "Question " + id,
			Answers: Answers{"a" + id, "b" + id, "c" + id, "d" + id},
			Correct: "a",
		})
	}

	data, err := json.Marshal(quiz)
	require.NoError(t, err)

	want := `{"1":{"question":"Question 1","answers":{"a":"a1","b":"b1","c":"c1","d":"d1"},"correct":"a"},` +
		`"2":{"question":"Question 2","answers":{"a":"a2","b":"b2","c":"c2","d":"d2"},"correct":"a"},` +
		`"10":{"question":"Question 10","answers":{"a":"a10","b":"b10","c":"c10","d":"d10"},"correct":"a"},` +
		`"3":{"question":"Question 3","answers":{"a":"a3","b":"b3","c":"c3","d":"d3"},"correct":"a"}}`
	require.Equal(t, want, string(data))

	var back Quiz
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, quiz, back)
}

func TestQuiz_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Parse(""))
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}

func TestQuiz_MarshalJSON_MissingIDs(t *testing.T) {
	quiz := Quiz{Questions: []Question{{Text: "first"}, {Text: "second"}}}

	data, err := json.Marshal(quiz)
	require.NoError(t, err)

	var back map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &back))
	require.Contains(t, back, "1")
	require.Contains(t, back, "2")
}

func TestQuiz_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantLen   int
		wantErrIs error
		wantErr   bool
	}{
		{name: "Null", input: `null`, wantLen: 0},
		{name: "EmptyObject", input: `{}`, wantLen: 0},
		{name: "Array", input: `[]`, wantErrIs: ErrNotObject},
		{name: "String", input: `"quiz"`, wantErrIs: ErrNotObject},
		{name: "DuplicateID", input: `{"1":{},"1":{}}`, wantErrIs: ErrDuplicateID},
		{name: "BadQuestion", input: `{"1":{"question":5}}`, wantErr: true},
		{
			name:    "OK",
			input:   `{"7":{"question":"What is up?","answers":{"a":"x","b":"y","c":"z","d":"w"},"correct":"d"}}`,
			wantLen: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var quiz Quiz
			err := json.Unmarshal([]byte(tc.input), &quiz)

			switch {
			case tc.wantErrIs != nil:
				require.True(t, errors.Is(err, tc.wantErrIs), "got %v", err)
			case tc.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.wantLen, quiz.Len())
			}
		})
	}
}

func TestQuiz_UnmarshalJSON_SetsIDs(t *testing.T) {
	input := `{"b":{"question":"Second?","answers":{"a":"1","b":"2","c":"3","d":"4"},"correct":"b"},` +
		`"a":{"question":"First?","answers":{"a":"1","b":"2","c":"3","d":"4"},"correct":"a"}}`

	var quiz Quiz
	require.NoError(t, json.Unmarshal([]byte(input), &quiz))

	require.Equal(t, "b", quiz.Questions[0].ID)
	require.Equal(t, "a", quiz.Questions[1].ID)
	require.Equal(t, "First?", quiz.Questions[1].Text)
}
