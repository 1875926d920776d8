// Package corrector is the entry point for the offline Spanish/Catalan
// spelling-and-grammar checker: it wires together the dictionary loader,
// verb recognizer, spelling engine, tokenizer and grammar phases behind a
// single Correct call (§4, §6).
package corrector

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/escriba/corrector/dict"
	"github.com/escriba/corrector/grammar"
	"github.com/escriba/corrector/lang"
	"github.com/escriba/corrector/render"
	"github.com/escriba/corrector/spell"
	"github.com/escriba/corrector/token"
)

// Config carries everything a Correct call needs from the host (§6). The
// zero value is usable except for DataDir, which must name a directory
// containing "<code>.dict" (required) and "<code>.names" (optional) for
// every language the host intends to use.
type Config struct {
	// DataDir holds the per-language dictionary and name files.
	DataDir string
	// CustomDictPath, if non-empty, is merged on top of the main dictionary
	// (§6): entries here short-circuit the unknown-word path.
	CustomDictPath string
	// MaxSuggestions caps the spelling candidates returned per unknown word.
	// 0 means use the package default (3).
	MaxSuggestions int
	// MaxEditDistance overrides the per-word default budget
	// (spell.DefaultMaxEditDistance) when positive.
	MaxEditDistance int
	// Logger receives DataMalformed warnings (§7). Nil means no-op.
	Logger *zap.Logger
}

const defaultMaxSuggestions = 3

func (c Config) maxSuggestions() int {
	if c.MaxSuggestions > 0 {
		return c.MaxSuggestions
	}
	return defaultMaxSuggestions
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// languages is the registry Correct consults; Design Note 9's "phases are
// values, not a class hierarchy" extends to the language set itself.
var languages = map[string]lang.Language{
	"es": lang.Spanish{},
	"ca": lang.Catalan{},
}

// pipeline bundles everything built from a Config+language pair that
// Correct needs to run a single text through.
type pipeline struct {
	language lang.Language
	dict     *dict.Dictionary
	spell    *spell.Engine
	verbs    lang.VerbRecognizer
}

// cacheKey identifies a pipeline built from a given configuration; the same
// (DataDir, CustomDictPath, language) triple always yields the same
// dictionary, so repeated Correct calls from a long-lived host don't re-read
// and re-parse the data files every time (generalizes the teacher's
// sync.Once-cached default analyzer to a keyed cache, since here there is no
// single fixed default — Config is supplied by the caller on every call).
type cacheKey struct {
	dataDir, customDict, code string
}

var (
	pipelineMu    sync.Mutex
	pipelineCache = map[cacheKey]*pipeline{}
)

// Correct runs the full checking pipeline over text for the given language
// code ("es" or "ca") and returns the decorated output described in §6.
// A language code not in the registry is ErrUnknownLanguage; a missing main
// dictionary file is ErrDataMissing. Both are fatal — there is no partial
// result to return.
func Correct(text, languageCode string, config Config) (string, error) {
	p, err := buildPipeline(languageCode, config)
	if err != nil {
		return "", err
	}

	tokens := token.Tokenize(text, p.language.WordInternalChars())
	annotateSpelling(tokens, p.spell, config)
	p.language.ApplyGrammar(tokens, &grammar.Context{Dictionary: p.dict, Verbs: p.verbs})
	return render.Render(tokens), nil
}

// PlainText round-trips tokens back to the original input with no
// decoration, exposed for callers validating the §3/§8 round-trip
// invariant without running the full pipeline twice.
func PlainText(text string, languageCode string, config Config) (string, error) {
	l, ok := languages[languageCode]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, languageCode)
	}
	tokens := token.Tokenize(text, l.WordInternalChars())
	return render.PlainText(tokens), nil
}

func annotateSpelling(tokens []*token.Token, engine *spell.Engine, config Config) {
	for _, t := range tokens {
		if t.Category != token.CategoryWord && t.Category != token.CategoryMixed {
			continue
		}
		if engine.Known(t.Normalized) {
			continue
		}
		maxDist := config.MaxEditDistance
		if maxDist <= 0 {
			maxDist = spell.DefaultMaxEditDistance(t.Normalized)
		}
		candidates := engine.Suggest(t.Normalized, config.maxSuggestions(), maxDist)
		if len(candidates) == 0 {
			continue
		}
		t.Annotate(token.Annotation{Kind: token.KindSpelling, Candidates: candidates})
	}
}

func buildPipeline(languageCode string, config Config) (*pipeline, error) {
	l, ok := languages[languageCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, languageCode)
	}

	key := cacheKey{dataDir: config.DataDir, customDict: config.CustomDictPath, code: languageCode}
	pipelineMu.Lock()
	if p, ok := pipelineCache[key]; ok {
		pipelineMu.Unlock()
		return p, nil
	}
	pipelineMu.Unlock()

	p, err := loadPipeline(l, languageCode, config)
	if err != nil {
		return nil, err
	}

	pipelineMu.Lock()
	pipelineCache[key] = p
	pipelineMu.Unlock()
	return p, nil
}

func loadPipeline(l lang.Language, languageCode string, config Config) (*pipeline, error) {
	logger := config.logger()
	dictPath := filepath.Join(config.DataDir, languageCode+".dict")
	trie, err := dict.LoadFile(dictPath, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataMissing, err)
	}

	if config.CustomDictPath != "" {
		if err := dict.MergeFile(trie, config.CustomDictPath, logger); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataMissing, err)
		}
	}

	d := dict.NewDictionary(trie)

	namesPath := filepath.Join(config.DataDir, languageCode+".names")
	if names, err := readNames(namesPath); err == nil {
		d.LoadNames(names)
	}
	// A missing names file is not fatal: a language simply known by fewer
	// proper names, not one that can't run at all.

	l.ConfigureDictionary(d)

	var verbRec lang.VerbRecognizer
	if vr, ok := l.BuildVerbRecognizer(d); ok {
		verbRec = vr
	}

	// CustomDictPath is merged directly into the trie above, so it is
	// already covered by d.Lookup; spell.Engine's separate custom-dictionary
	// hook exists for a host that wants to layer one in without a merge, so
	// it is left nil here.
	engine := spell.NewEngine(d, verbRec, nil)

	return &pipeline{language: l, dict: d, spell: engine, verbs: verbRec}, nil
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}
