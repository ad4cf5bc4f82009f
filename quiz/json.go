package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotObject   = errors.New("quiz must be an object keyed by question id")
	ErrDuplicateID = errors.New("duplicate question id")
)

// MarshalJSON writes the quiz as an object keyed by question ID, keeping question order.
// Questions without an ID are keyed by their 1-based position.
func (q Quiz) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, question := range q.Questions {
		if i > 0 {
			buf.WriteByte(',')
		}

		id := question.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}

		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(question)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form produced by [Quiz.MarshalJSON], keeping the key order.
// JSON null gives an empty quiz.
func (q *Quiz) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		q.Questions = nil
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	var questions []Question
	seen := make(map[string]struct{})

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		// object keys are always strings
		id := tok.(string)

		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		var question Question
		if err := dec.Decode(&question); err != nil {
			return fmt.Errorf("question %q: %w", id, err)
		}

		question.ID = id
		questions = append(questions, question)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}

	q.Questions = questions
	return nil
}
