package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractBlocks(t *testing.T) {
	first := "What is 1+1? a) 1 b) 2 c) 3 d) 4"
	second := "\nWhat is 2+2? a) 2 b) 3 c) 4 d) 5"
	input := first + "|CORRECT: b|" + second + "|CORRECT:C |"

	blocks := extractBlocks(input, CorrectFallback, nil)
	require.Len(t, blocks, 2)

	require.Equal(t, Span{0, len(first)}, blocks[0].Span)
	require.Equal(t, byte('b'), blocks[0].correct)
	require.Equal(t, len(first), blocks[0].marker)

	secondStart := len(first) + len("|CORRECT: b|")
	require.Equal(t, Span{Start: secondStart, End: secondStart + len(second)}, blocks[1].Span)
	require.Equal(t, byte('C'), blocks[1].raw)
	require.Equal(t, byte('c'), blocks[1].correct)
}

func TestExtractBlocks_MarkerClosedByNextPipe(t *testing.T) {
	// the first marker is closed by the '|' opening the second one
	input := "What is 1+1? a) 1 b) 2 c) 3 d) 4|CORRECT: b What else|CORRECT: c|"
	warns := newWarnings(t)

	blocks := extractBlocks(input, CorrectFallback, warns)

	require.Len(t, blocks, 1)
	require.Equal(t, byte('b'), blocks[0].correct)
	require.Equal(t, strings.Index(input, "|CORRECT"), blocks[0].End)
	require.Empty(t, warns.List())
}

func TestExtractBlocks_MarkerWithTrailingSpaces(t *testing.T) {
	input := "|CORRECT:    "
	warns := newWarnings(t)

	blocks := extractBlocks(input, CorrectFallback, warns)

	require.Empty(t, blocks)
	require.Equal(t, []Warning{{Issue: IssueMissingCorrectLetter, Pos: 0}}, warns.List())
}

func TestExtractBlocks_NextBlockStartsAfterRejected(t *testing.T) {
	input := "tiny|CORRECT: a|Long enough block here|CORRECT: d|"
	warns := newWarnings(t)

	blocks := extractBlocks(input, CorrectFallback, warns)

	require.Len(t, blocks, 1)
	require.Equal(t, "Long enough block here", input[blocks[0].Start:blocks[0].End])
	require.Equal(t, []Warning{{Issue: IssueBlockTooShort, Pos: 0}}, warns.List())
}

func TestExtractBlocks_MarkerFragments(t *testing.T) {
	inputs := []string{
		"|",
		"|CORRECT",
		"|CORRECT:",
		"||||||||||||",
		"|CORRECT|CORRECT|CORRECT:",
		"::::::::::::::::",
		"|CORRECTS b|",
	}

	for _, input := range inputs {
		require.NotPanics(t, func() {
			extractBlocks(input, CorrectReject, &Warnings{})
		}, "input %q", input)
	}
}
