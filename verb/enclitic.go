package verb

import "strings"

// enclitics is the closed set of pronoun forms that may attach to the right
// of an imperative, infinitive or gerund host (§3 "Derived forms").
var enclitics = []string{"me", "te", "se", "nos", "os", "los", "las", "les", "lo", "la", "le"}

// enclitics sorted longest-first so greedy stripping prefers "nos" over "os"
// matching inside it, etc.
var encliticsByLengthDesc = func() []string {
	out := append([]string(nil), enclitics...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if len(out[j]) > len(out[i]) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}()

func isEnclitic(s string) bool {
	for _, e := range enclitics {
		if e == s {
			return true
		}
	}
	return false
}

// reflexivePronouns is the subset of enclitics that mark a reflexive or
// pronominal verb ("lavarse", "levantarse") rather than a direct or
// indirect object ("lo", "la", "le", "los", "las", "les" never are).
var reflexivePronouns = map[string]bool{"me": true, "te": true, "se": true, "nos": true, "os": true}

// reflexiveForPerson is the reflexive clitic that agrees with a given
// person/number, used to confirm an imperative's attached pronoun is
// reflexive rather than coincidentally reflexive-shaped for another person.
var reflexiveForPerson = map[Person]map[Number]string{
	First:  {Singular: "me", Plural: "nos"},
	Second: {Singular: "te", Plural: "os"},
	Third:  {Singular: "se", Plural: "se"},
}

// isReflexiveAttachment reports whether the first pronoun of an attached
// enclitic chain marks rec as a reflexive/pronominal form. Infinitives and
// gerunds carry no person of their own, so any reflexive-shaped clitic
// counts; an imperative's clitic must additionally agree with the
// imperative's own addressee (Person/Number).
func isReflexiveAttachment(rec Recognition, first string) bool {
	if !reflexivePronouns[first] {
		return false
	}
	if rec.Tense != ImperativeTense {
		return true
	}
	want, ok := reflexiveForPerson[rec.Person][rec.Number]
	return ok && want == first
}

// StripEnclitics greedily strips up to two trailing pronouns from surface
// (§4.B step 1: "longest chain first, up to length 2"), returning the host
// form, the stripped pronouns in left-to-right attachment order, and
// whether an orthographic accent was dropped from the host (because the
// accent seen on the enclitic-attached form was added only to preserve the
// original stress — e.g. "dándomelo" -> host "dando", not "dándo").
func StripEnclitics(surface string) (host string, chain []string, accentRestored bool) {
	// Try two-pronoun chains first.
	for _, first := range encliticsByLengthDesc {
		if !strings.HasSuffix(surface, first) {
			continue
		}
		withoutFirst := surface[:len(surface)-len(first)]
		for _, second := range encliticsByLengthDesc {
			if strings.HasSuffix(withoutFirst, second) {
				host := withoutFirst[:len(withoutFirst)-len(second)]
				if isPlausibleHost(host) {
					restored, dropped := restoreHostAccent(host)
					return restored, []string{second, first}, dropped
				}
			}
		}
	}
	for _, e := range encliticsByLengthDesc {
		if strings.HasSuffix(surface, e) {
			host := surface[:len(surface)-len(e)]
			if isPlausibleHost(host) {
				restored, dropped := restoreHostAccent(host)
				return restored, []string{e}, dropped
			}
		}
	}
	return surface, nil, false
}

// isPlausibleHost rejects residues too short to be a verb host.
func isPlausibleHost(host string) bool {
	return len([]rune(host)) >= 2
}

// restoreHostAccent strips an accent that only exists to mark the stress
// shift caused by enclitic attachment (e.g. infinitive+2 pronouns: "dármelo"
// -> host carries accent on the infinitive ending vowel that bare "dar"
// never has). Bare infinitives (-ar/-er/-ir) and gerunds (-ando/-iendo)
// never carry a written accent, so any accented final vowel on a residue
// that otherwise looks like one of those is the enclitic-induced accent.
func restoreHostAccent(host string) (string, bool) {
	replacements := map[string]string{"ár": "ar", "ér": "er", "ír": "ir", "ándo": "ando", "iéndo": "iendo"}
	for accented, plain := range replacements {
		if strings.HasSuffix(host, accented) {
			return host[:len(host)-len(accented)] + plain, true
		}
	}
	return host, false
}

// AttachEnclitics renders host (infinitive, gerund, or imperative form)
// with chain attached in order, restoring the stress-preserving accent
// where Spanish orthography requires it (§3). host and hostKind describe
// what the unattached form is, so the small set of irregular attachment
// rules (vosotros imperative drops final 'd' before "os"; nosotros
// imperative drops final 's' before "nos" and gains an accent) can apply.
func AttachEnclitics(host string, hostKind HostKind, chain []string) string {
	if len(chain) == 0 {
		return host
	}
	switch hostKind {
	case HostImperativeVosotros:
		if len(chain) == 1 && chain[0] == "os" && strings.HasSuffix(host, "d") {
			host = host[:len(host)-1]
		}
	case HostImperativeNosotros:
		if len(chain) == 1 && chain[0] == "nos" && strings.HasSuffix(host, "s") {
			host = withStressAccent(host[:len(host)-1])
		}
	}
	needsAccent := (hostKind == HostInfinitive || hostKind == HostGerund) && len(chain) == 2
	if needsAccent {
		host = addStressAccent(host, hostKind)
	}
	return host + strings.Join(chain, "")
}

// HostKind distinguishes the enclitic-bearing forms with idiosyncratic
// attachment rules.
type HostKind uint8

const (
	HostOther HostKind = iota
	HostInfinitive
	HostGerund
	HostImperativeVosotros
	HostImperativeNosotros
)

func addStressAccent(host string, kind HostKind) string {
	switch {
	case strings.HasSuffix(host, "ar"):
		return host[:len(host)-2] + "ár"
	case strings.HasSuffix(host, "er"):
		return host[:len(host)-2] + "ér"
	case strings.HasSuffix(host, "ir"):
		return host[:len(host)-2] + "ír"
	case strings.HasSuffix(host, "ando"):
		return host[:len(host)-4] + "ándo"
	case strings.HasSuffix(host, "iendo"):
		return host[:len(host)-5] + "iéndo"
	default:
		return host
	}
}

func withStressAccent(host string) string {
	// nosotros imperative stem stress is on the syllable before final "-mos".
	if strings.HasSuffix(host, "emo") {
		return host[:len(host)-3] + "émo"
	}
	if strings.HasSuffix(host, "amo") {
		return host[:len(host)-3] + "ámo"
	}
	return host
}
