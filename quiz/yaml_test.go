package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestQuiz_MarshalYAML_KeepsOrder(t *testing.T) {
	quiz := Parse("1. What is 2+2? a) 3 b) 4 c) 5 d) 6|CORRECT: b|" +
		"2. Capital of France? a) Paris b) Rome c) Berlin d) Madrid|CORRECT:a|")
	require.Equal(t, 2, quiz.Len())

	data, err := yaml.Marshal(quiz)
	require.NoError(t, err)

	want := `"1":
    question: What is 2+2?
    answers:
        a: "3"
        b: "4"
        c: "5"
        d: "6"
    correct: b
"2":
    question: Capital of France?
    answers:
        a: Paris
        b: Rome
        c: Berlin
        d: Madrid
    correct: a
`
	require.Equal(t, want, string(data))

	var back Quiz
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Equal(t, quiz, back)
}

func TestQuiz_UnmarshalYAML(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantIDs   []string
		wantErrIs error
		wantErr   bool
	}{
		{
			name:    "KeyOrderKept",
			input:   "10: {question: \"ten?\", correct: a}\n2: {question: \"two?\", correct: b}\n",
			wantIDs: []string{"10", "2"},
		},
		{
			name:    "Null",
			input:   "null",
			wantIDs: nil,
		},
		{
			name:      "Sequence",
			input:     "- question: first\n",
			wantErrIs: ErrNotObject,
		},
		{
			name:      "DuplicateID",
			input:     "1: {question: a}\n1: {question: b}\n",
			wantErrIs: ErrDuplicateID,
		},
		{
			name:    "QuestionNotMapping",
			input:   "1: [a, b]\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var quiz Quiz
			err := yaml.Unmarshal([]byte(tc.input), &quiz)

			switch {
			case tc.wantErrIs != nil:
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			case tc.wantErr:
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			var ids []string
			for _, q := range quiz.Questions {
				ids = append(ids, q.ID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}
