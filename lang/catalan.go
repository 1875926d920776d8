package lang

// Catalan is spelling-only (§1, §9 Open Question): it reuses the trie and
// spelling engine verbatim through the shared dict/spell machinery, has no
// verb recognizer, and runs no grammar phase at all — ApplyGrammar is the
// inherited no-op from base, not an error path.
type Catalan struct{ base }

func (Catalan) Code() string { return "ca" }

// WordInternalChars allows the middle dot in "l·l" (paral·lel) and the
// apostrophe used for elision (l'aigua) to stay inside a single word token.
func (Catalan) WordInternalChars() map[rune]bool {
	return map[rune]bool{'·': true, '\'': true, '’': true}
}
