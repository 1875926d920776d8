package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/escriba/corrector/internal/ortho"
)

const sentinel = "_"

// Load reads the pipe-delimited dictionary format (§6):
//
//	lemma|category|gender|number|extra|frequency
//
// into a fresh Trie. Lines starting with '#' and blank lines are ignored.
// A line that fails to parse is a DataMalformed condition (§7): it is
// logged via logger (nil is treated as a no-op logger) and skipped — load
// continues. Duplicate lemmas accumulate feature tuples under the same key.
func Load(r io.Reader, logger *zap.Logger) (*Trie, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := NewTrie()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, key, err := parseLine(line)
		if err != nil {
			logger.Warn("dict: malformed line skipped", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		t.Insert(key, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dict: reading dictionary: %w", err)
	}
	return t, nil
}

// LoadFile opens path and calls Load. A missing/unreadable file is
// ErrDataMissing (§7), fatal at init.
func LoadFile(path string, logger *zap.Logger) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer f.Close()
	return Load(f, logger)
}

// MergeFile loads path and inserts every entry into an existing trie — used
// for the custom dictionary (§6), which short-circuits the unknown-word
// path when merged on top of the main dictionary.
func MergeFile(t *Trie, path string, logger *zap.Logger) error {
	extra, err := LoadFile(path, logger)
	if err != nil {
		return err
	}
	extra.PrefixWalk("", 0, func(surface string, entries []Entry) bool {
		for _, e := range entries {
			t.Insert(surface, e)
		}
		return true
	})
	return nil
}

func parseLine(line string) (Entry, string, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 6 {
		return Entry{}, "", fmt.Errorf("expected 6 fields, got %d", len(fields))
	}
	lemma := fields[0]
	if lemma == "" {
		return Entry{}, "", fmt.Errorf("empty lemma")
	}
	cat, ok := categoryNames[fields[1]]
	if !ok {
		return Entry{}, "", fmt.Errorf("unknown category %q", fields[1])
	}
	gender, err := parseGender(fields[2])
	if err != nil {
		return Entry{}, "", err
	}
	number, err := parseNumber(fields[3])
	if err != nil {
		return Entry{}, "", err
	}
	extra := fields[4]
	if extra == sentinel {
		extra = ""
	}
	freq := 0
	if fields[5] != sentinel {
		freq, err = strconv.Atoi(fields[5])
		if err != nil || freq < 0 {
			return Entry{}, "", fmt.Errorf("invalid frequency %q", fields[5])
		}
	}
	key := ortho.Lower(lemma)
	return Entry{
		Lemma:     lemma,
		Category:  cat,
		Gender:    gender,
		Number:    number,
		Extra:     extra,
		Frequency: freq,
	}, key, nil
}

func parseGender(f string) (Gender, error) {
	switch f {
	case sentinel:
		return GenderNone, nil
	case "m":
		return GenderMasc, nil
	case "f":
		return GenderFem, nil
	case "c":
		return GenderCommon, nil
	default:
		return GenderNone, fmt.Errorf("unknown gender %q", f)
	}
}

func parseNumber(f string) (Number, error) {
	switch f {
	case sentinel:
		return NumberNone, nil
	case "sg":
		return NumberSingular, nil
	case "pl":
		return NumberPlural, nil
	case "inv":
		return NumberInvariant, nil
	default:
		return NumberNone, fmt.Errorf("unknown number %q", f)
	}
}
