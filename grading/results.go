package grading

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Results is the per-question breakdown, serialized as an object keyed by question ID
// in quiz order.
type Results []QuestionResult

func (r Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, qr := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(qr.ID)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(qr)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Results) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		*r = nil
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("results must be a JSON object, got %v", tok)
	}

	var out Results
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		var qr QuestionResult
		if err := dec.Decode(&qr); err != nil {
			return err
		}

		qr.ID = tok.(string)
		out = append(out, qr)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}
