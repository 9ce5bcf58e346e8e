// Package chunker splits document text into bounded, overlapping,
// paragraph-aligned segments suitable for embedding.
package chunker

import "strings"

// DefaultMaxWords is the default maximum number of words per chunk.
const DefaultMaxWords = 500

// DefaultOverlapWords is the default number of words carried over from
// the previous chunk.
const DefaultOverlapWords = 50

// Splitter splits text into word-bounded chunks with overlap.
// It is a pure component: no I/O, safe for concurrent use.
type Splitter struct {
	maxWords     int
	overlapWords int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithMaxWords sets the maximum words per chunk.
func WithMaxWords(n int) Option {
	return func(s *Splitter) {
		if n > 0 {
			s.maxWords = n
		}
	}
}

// WithOverlapWords sets the number of overlap words between chunks.
func WithOverlapWords(n int) Option {
	return func(s *Splitter) {
		if n >= 0 {
			s.overlapWords = n
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		maxWords:     DefaultMaxWords,
		overlapWords: DefaultOverlapWords,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave room for new content in every chunk
	if s.overlapWords >= s.maxWords {
		s.overlapWords = s.maxWords / 4
	}

	return s
}

// MaxWords returns the configured chunk bound.
func (s *Splitter) MaxWords() int {
	return s.maxWords
}

// OverlapWords returns the configured overlap.
func (s *Splitter) OverlapWords() int {
	return s.overlapWords
}

// Split produces the ordered chunk sequence for text.
//
// Paragraphs (blank-line separated) are accumulated greedily up to the
// word bound; a paragraph that alone exceeds the bound is split at
// sentence boundaries and accumulated the same way. A sentence that
// alone exceeds the bound stays whole. After the base chunks are
// produced, every chunk after the first is prefixed with the last
// overlap words of its predecessor's pre-overlap text.
//
// The result never contains zero-length chunks; whitespace-only input
// produces none.
func (s *Splitter) Split(text string) []string {
	base := s.baseChunks(text)
	if len(base) < 2 || s.overlapWords < 1 {
		return base
	}

	chunks := make([]string, len(base))
	chunks[0] = base[0]
	for i := 1; i < len(base); i++ {
		tail := lastWords(base[i-1], s.overlapWords)
		chunks[i] = tail + "\n\n" + base[i]
	}

	return chunks
}

// baseChunks produces the pre-overlap chunk sequence.
func (s *Splitter) baseChunks(text string) []string {
	var chunks []string

	var buf []string
	bufWords := 0

	flush := func() {
		if bufWords > 0 {
			chunks = append(chunks, strings.Join(buf, "\n\n"))
			buf = nil
			bufWords = 0
		}
	}

	for _, para := range splitParagraphs(text) {
		words := WordCount(para)

		// Oversized paragraph: fall back to sentence granularity
		if words > s.maxWords {
			flush()
			chunks = append(chunks, s.sentenceChunks(para)...)
			continue
		}

		if bufWords > 0 && bufWords+words > s.maxWords {
			flush()
		}
		buf = append(buf, para)
		bufWords += words
	}
	flush()

	return chunks
}

// sentenceChunks greedily accumulates sentences of one oversized
// paragraph into word-bounded chunks.
func (s *Splitter) sentenceChunks(para string) []string {
	var chunks []string

	var buf []string
	bufWords := 0

	for _, sentence := range splitSentences(para) {
		words := WordCount(sentence)
		if bufWords > 0 && bufWords+words > s.maxWords {
			chunks = append(chunks, strings.Join(buf, " "))
			buf = nil
			bufWords = 0
		}
		buf = append(buf, sentence)
		bufWords += words
	}
	if bufWords > 0 {
		chunks = append(chunks, strings.Join(buf, " "))
	}

	return chunks
}

// WordCount returns the whitespace-delimited word count of text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// splitParagraphs splits text on blank-line boundaries, dropping
// empty and whitespace-only paragraphs.
func splitParagraphs(text string) []string {
	parts := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")

	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return paragraphs
}

// splitSentences splits a paragraph at sentence terminators
// (./!/? followed by whitespace). The terminator stays with its
// sentence.
func splitSentences(para string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(para)
	for i, r := range runes {
		current.WriteRune(r)
		if isTerminator(r) && (i == len(runes)-1 || isSpace(runes[i+1])) {
			if sent := strings.TrimSpace(current.String()); sent != "" {
				sentences = append(sentences, sent)
			}
			current.Reset()
		}
	}

	if sent := strings.TrimSpace(current.String()); sent != "" {
		sentences = append(sentences, sent)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// lastWords returns the trailing n words of text joined by single
// spaces. If text has fewer than n words, the whole text is returned.
func lastWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[len(words)-n:], " ")
}
