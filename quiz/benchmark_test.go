package quiz

import (
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for i := 1; i <= MaxQuestions; i++ {
		sb.WriteString(validBlock(i))
	}
	input := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

func BenchmarkParse_Garbage(b *testing.B) {
	input := strings.Repeat("|CORRECT |CORRECT: x |CORREC a) b) c) d) ", 2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(input)
	}
}

func BenchmarkParse_WithWarnings(b *testing.B) {
	input := strings.Repeat("tiny|CORRECT: a|", 1000) + validBlock(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		warns, _ := NewWarnings(64)
		Parser{}.Parse(input, &warns)
	}
}
