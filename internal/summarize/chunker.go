package summarize

import "strings"

const (
	// chunkSize is the maximum character count sent to the model at once.
	chunkSize = 1200
	// chunkOverlap is carried from the tail of one chunk into the next so
	// sentences cut at a boundary are not lost.
	chunkOverlap = 150
)

// chunkText splits long input into chunks for map-reduce summarization,
// preserving paragraph boundaries when possible.
func chunkText(content string) []string {
	content = strings.TrimSpace(content)
	if len(content) <= chunkSize {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(para) > chunkSize {
			chunks = append(chunks, current.String())
			overlap := tailOverlap(current.String(), chunkOverlap)
			current.Reset()
			if overlap != "" {
				current.WriteString(overlap)
				current.WriteString("\n\n")
			}
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)

		// A single paragraph can exceed the chunk size; force-split it.
		for current.Len() > chunkSize {
			text := current.String()
			cut := breakPoint(text[:chunkSize])
			chunks = append(chunks, strings.TrimSpace(text[:cut]))
			current.Reset()
			current.WriteString(strings.TrimSpace(text[cut:]))
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// tailOverlap returns up to n characters from the end of text, starting at a
// word boundary.
func tailOverlap(text string, n int) string {
	if len(text) <= n {
		return text
	}
	tail := text[len(text)-n:]
	if idx := strings.IndexAny(tail, " \n"); idx >= 0 {
		tail = tail[idx+1:]
	}
	return strings.TrimSpace(tail)
}

// breakPoint finds a sentence or word boundary to split at, preferring the
// last sentence end, then the last space, then a hard cut.
func breakPoint(text string) int {
	for _, sep := range []string{". ", "! ", "? ", "\n"} {
		if idx := strings.LastIndex(text, sep); idx > chunkSize/2 {
			return idx + len(sep)
		}
	}
	if idx := strings.LastIndex(text, " "); idx > 0 {
		return idx + 1
	}
	return len(text)
}
