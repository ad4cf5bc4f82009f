package quiz

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML gives the same shape as [Quiz.MarshalJSON]: a mapping keyed by question ID,
// in question order.
func (q Quiz) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*len(q.Questions)),
	}

	for i, question := range q.Questions {
		id := question.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}

		var value yaml.Node
		if err := value.Encode(question); err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id}
		node.Content = append(node.Content, key, &value)
	}

	return node, nil
}

// UnmarshalYAML reads the mapping produced by [Quiz.MarshalYAML], keeping the key order.
// A null document gives an empty quiz.
func (q *Quiz) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		q.Questions = nil
		return nil
	}

	if value.Kind != yaml.MappingNode {
		return ErrNotObject
	}

	questions := make([]Question, 0, len(value.Content)/2)
	seen := make(map[string]struct{}, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		id := value.Content[i].Value

		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		var question Question
		if err := value.Content[i+1].Decode(&question); err != nil {
			return fmt.Errorf("question %q: %w", id, err)
		}

		question.ID = id
		questions = append(questions, question)
	}

	q.Questions = questions
	return nil
}
