// Package narsese implements a minimal lexer/parser translating Narsese
// surface syntax into the engine's internal Sentence representation
// (spec.md §7 inputNarsese). Grounded on the teacher's pkg/korel/ingest/
// tokenizer package, whose hand-rolled scanner-over-a-string shape (no
// parser-generator, no regexp) this recursive-descent parser follows.
package narsese

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/narscore/pkg/nars/narserr"
	"github.com/cognicore/narscore/pkg/nars/sentence"
	"github.com/cognicore/narscore/pkg/nars/shortfloat"
	"github.com/cognicore/narscore/pkg/nars/stamp"
	"github.com/cognicore/narscore/pkg/nars/truth"
)

// DefaultFrequency and DefaultConfidence fill in a judgment's truth value
// when the input omits a "%f;c%" clause (spec.md §6 defaults).
const (
	DefaultFrequency  = 1.0
	DefaultConfidence = 0.9
)

// BudgetValues carries an input line's explicit "$priority;durability;
// quality$" prefix. Fields the prefix omits stay nil and fall back to the
// punctuation-specific defaults at task construction.
type BudgetValues struct {
	Priority   *float64
	Durability *float64
	Quality    *float64
}

// Parse translates one line of Narsese into a Sentence plus any explicit
// budget prefix (nil when the line carries none). now is the reasoner's
// current logical clock: used as the sentence's creation time, and (for a
// tensed sentence) its occurrence time. ctx mints the new sentence's
// evidential base entry.
func Parse(line string, now int, ctx *stamp.Context) (sentence.Sentence, *BudgetValues, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return sentence.Sentence{}, nil, narserr.ErrEmptyInput
	}

	bv, line, err := parseBudgetPrefix(line)
	if err != nil {
		return sentence.Sentence{}, nil, err
	}
	if line == "" {
		return sentence.Sentence{}, nil, narserr.ErrEmptyInput
	}

	punctIdx, punct, err := findPunctuation(line)
	if err != nil {
		return sentence.Sentence{}, nil, err
	}
	termStr := strings.TrimSpace(line[:punctIdx])
	rest := strings.TrimSpace(line[punctIdx+1:])

	t, err := parseWholeTerm(termStr)
	if err != nil {
		return sentence.Sentence{}, nil, err
	}

	tense := stamp.TenseNone
	occurrence := stamp.Eternal
	switch {
	case strings.HasPrefix(rest, ":|:"):
		tense, occurrence, rest = stamp.TensePresent, now, strings.TrimSpace(rest[3:])
	case strings.HasPrefix(rest, ":/:"):
		tense, occurrence, rest = stamp.TenseFuture, now, strings.TrimSpace(rest[3:])
	case strings.HasPrefix(rest, `:\:`):
		tense, occurrence, rest = stamp.TensePast, now, strings.TrimSpace(rest[3:])
	case strings.HasPrefix(rest, ":-:"):
		tense, rest = stamp.TenseEternal, strings.TrimSpace(rest[3:])
	}

	st := ctx.New(now, occurrence, tense)

	switch punct {
	case sentence.Question:
		return sentence.NewQuestion(t, st), bv, nil

	case sentence.Judgment, sentence.Goal:
		f, c, k := DefaultFrequency, DefaultConfidence, truth.DefaultHorizon
		if rest != "" {
			f, c, k, err = parseTruthValue(rest)
			if err != nil {
				return sentence.Sentence{}, nil, err
			}
		}
		fv, err := shortfloat.New(f)
		if err != nil {
			return sentence.Sentence{}, nil, err
		}
		cv, err := shortfloat.New(c)
		if err != nil {
			return sentence.Sentence{}, nil, err
		}
		tr := truth.NewWithHorizon(fv, cv, k)
		if punct == sentence.Goal {
			return sentence.NewGoal(t, tr, st), bv, nil
		}
		return sentence.NewJudgment(t, tr, st), bv, nil

	default:
		return sentence.Sentence{}, nil, narserr.ErrParseFailure
	}
}

// parseBudgetPrefix strips a leading "$p;d;q$" (or "$p$", "$p;d$") budget
// clause, distinguishing it from a $variable by the presence of a closing
// '$' before any term bracket.
func parseBudgetPrefix(line string) (*BudgetValues, string, error) {
	if !strings.HasPrefix(line, "$") {
		return nil, line, nil
	}
	end := strings.IndexByte(line[1:], '$')
	if end < 0 {
		return nil, line, nil
	}
	end++ // index into line
	inner := line[1:end]
	if strings.ContainsAny(inner, "<>(){}[] ") {
		return nil, line, nil
	}

	parts := strings.Split(inner, ";")
	if len(parts) > 3 {
		return nil, line, nil
	}
	bv := &BudgetValues{}
	dests := []**float64{&bv.Priority, &bv.Durability, &bv.Quality}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			// Not a budget clause after all (e.g. a $variable term).
			return nil, line, nil
		}
		if v < 0 || v > 1 {
			return nil, "", fmt.Errorf("%w: budget component %v", narserr.ErrOutOfRange, v)
		}
		*dests[i] = &v
	}
	return bv, strings.TrimSpace(line[end+1:]), nil
}

func findPunctuation(line string) (int, sentence.Punctuation, error) {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '<', '(', '{', '[':
			depth++
		case '>', ')', '}', ']':
			depth--
		case '.':
			if depth == 0 {
				return i, sentence.Judgment, nil
			}
		case '?':
			if depth == 0 {
				return i, sentence.Question, nil
			}
		case '!':
			if depth == 0 {
				return i, sentence.Goal, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: missing punctuation in %q", narserr.ErrParseFailure, line)
}

// parseTruthValue reads "%frequency[;confidence[;k]]%" (spec.md §6).
func parseTruthValue(s string) (float64, float64, int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "%") || !strings.HasSuffix(s, "%") || len(s) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: malformed truth value %q", narserr.ErrParseFailure, s)
	}
	inner := s[1 : len(s)-1]
	parts := strings.Split(inner, ";")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: expected f[;c[;k]] in %q", narserr.ErrParseFailure, inner)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", narserr.ErrParseFailure, err)
	}
	c := DefaultConfidence
	if len(parts) >= 2 {
		c, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", narserr.ErrParseFailure, err)
		}
	}
	k := truth.DefaultHorizon
	if len(parts) == 3 {
		k, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || k <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: evidential horizon in %q", narserr.ErrParseFailure, inner)
		}
	}
	return f, c, k, nil
}
