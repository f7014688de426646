package summarize

import (
	"strings"
	"testing"
)

func TestChunkText_ShortInput(t *testing.T) {
	chunks := chunkText("A short paragraph.")
	if len(chunks) != 1 {
		t.Fatalf("chunkText() returned %d chunks, want 1", len(chunks))
	}
	if chunks[0] != "A short paragraph." {
		t.Errorf("chunk = %q, want the input unchanged", chunks[0])
	}
}

func TestChunkText_SplitsLongInput(t *testing.T) {
	para := strings.Repeat("Sentence about thermodynamics. ", 20) // ~620 chars
	input := strings.Join([]string{para, para, para, para}, "\n\n")

	chunks := chunkText(input)
	if len(chunks) < 2 {
		t.Fatalf("chunkText() returned %d chunks for %d chars, want several", len(chunks), len(input))
	}

	for i, chunk := range chunks {
		if len(chunk) > chunkSize+chunkOverlap {
			t.Errorf("chunk %d is %d chars, exceeds size plus overlap", i, len(chunk))
		}
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestChunkText_OversizedParagraph(t *testing.T) {
	// One paragraph with no blank lines, longer than several chunks.
	input := strings.Repeat("All work and no play makes a dull student. ", 120)

	chunks := chunkText(input)
	if len(chunks) < 2 {
		t.Fatalf("chunkText() returned %d chunks, want forced splits", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > chunkSize {
			t.Errorf("chunk %d is %d chars, want at most %d", i, len(chunk), chunkSize)
		}
	}
}

func TestChunkText_PreservesContent(t *testing.T) {
	input := strings.Repeat("Entropy never decreases in an isolated system. ", 60)

	joined := strings.Join(chunkText(input), " ")
	if !strings.Contains(joined, "Entropy never decreases") {
		t.Error("chunked output lost the input text")
	}
}

func TestBreakPoint_PrefersSentenceEnd(t *testing.T) {
	text := strings.Repeat("x", 700) + ". " + strings.Repeat("y", 400)
	cut := breakPoint(text)
	if cut != 702 {
		t.Errorf("breakPoint() = %d, want 702 (after the sentence end)", cut)
	}
}

func TestTailOverlap_WordBoundary(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	tail := tailOverlap(text, 14)
	if strings.HasPrefix(tail, "a ") || strings.HasPrefix(tail, " ") {
		t.Errorf("tailOverlap() = %q, should start at a word boundary", tail)
	}
	if !strings.HasSuffix(text, tail) {
		t.Errorf("tailOverlap() = %q, want a suffix of the input", tail)
	}
}
