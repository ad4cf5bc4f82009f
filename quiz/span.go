package quiz

// Span is a half-open byte range [Start, End) inside the input string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int

	// End defines the exclusive end of the view.
	End int
}

// block is a candidate question: its raw text and the letter taken from its trailing marker.
type block struct {
	Span

	// marker is the byte index of the '|' opening the correctness marker.
	marker int

	// raw is the letter found in the marker, as written.
	raw byte

	// correct is the normalized letter, or 0 if the letter was rejected.
	correct byte
}

// parsedQuestion holds views into the input produced by the block parser.
// Nothing here owns memory; see [parsedQuestion.toQuestion].
type parsedQuestion struct {
	text    string
	answers [NumOptions]string
	correct byte
}
