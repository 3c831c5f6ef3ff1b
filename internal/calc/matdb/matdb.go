// Package matdb is the versioned allowable-stress database: exact lookup,
// linear interpolation between tabulated temperature points, and material
// specification normalization. It is read-only; there is no hot patching.
package matdb

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type LookupStatus string

const (
	StatusExact        LookupStatus = "exact"
	StatusInterpolated LookupStatus = "interpolated"
	StatusError        LookupStatus = "error"
)

// StressResult is the outcome of one allowable-stress lookup.
type StressResult struct {
	StressPSI       *float64     `json:"stress_psi"`
	Status          LookupStatus `json:"status"`
	Message         string       `json:"message,omitempty"`
	MaterialKey     string       `json:"material_key,omitempty"`
	MinTempF        float64      `json:"min_temp_f,omitempty"`
	MaxTempF        float64      `json:"max_temp_f,omitempty"`
	DatabaseVersion string       `json:"database_version"`
}

func errResult(msg string) StressResult {
	return StressResult{Status: StatusError, Message: msg, DatabaseVersion: Version}
}

// Lookup resolves the allowable stress for a material at a metal temperature.
// Unknown materials and temperatures outside the tabulated range fail; the
// database never extrapolates.
func Lookup(materialSpec string, tempF float64) StressResult {
	key, ok := Normalize(materialSpec)
	if !ok {
		return errResult(fmt.Sprintf("unknown material specification %q", materialSpec))
	}
	points := table[key]
	lo, hi := points[0].TempF, points[len(points)-1].TempF
	if tempF < lo || tempF > hi {
		r := errResult(fmt.Sprintf("temperature %.1fF outside tabulated range [%.0fF, %.0fF] for %s", tempF, lo, hi, key))
		r.MaterialKey = key
		r.MinTempF = lo
		r.MaxTempF = hi
		return r
	}

	res := StressResult{
		MaterialKey:     key,
		MinTempF:        lo,
		MaxTempF:        hi,
		DatabaseVersion: Version,
	}
	for i, p := range points {
		if p.TempF == tempF {
			s := p.StressPSI
			res.StressPSI = &s
			res.Status = StatusExact
			return res
		}
		if p.TempF > tempF {
			prev := points[i-1]
			frac := (tempF - prev.TempF) / (p.TempF - prev.TempF)
			s := prev.StressPSI + frac*(p.StressPSI-prev.StressPSI)
			res.StressPSI = &s
			res.Status = StatusInterpolated
			res.Message = fmt.Sprintf("interpolated between %.0fF and %.0fF", prev.TempF, p.TempF)
			return res
		}
	}
	// Unreachable: tempF <= hi guarantees a bracketing point above.
	return errResult("lookup fell through")
}

var (
	sepRe      = regexp.MustCompile(`[\s\-_/]+`)
	gradeRe    = regexp.MustCompile(`\bGR\b`)
	tpRe       = regexp.MustCompile(`\bTP\s*([0-9]+[A-Z]?)\b`)
	letDigitRe = regexp.MustCompile(`([A-Z])([0-9])`)
	plateSSRe  = regexp.MustCompile(`^(304|304L|316|316L)$`)
)

// Normalize resolves common variant spellings ("SA-516 Gr 70", "SA516-70",
// "Type 304", "TP304") to the canonical table key. Resolution order: direct
// match, structural rewrite, case-insensitive exact, substring fallback. A
// false return means the caller must fail the calculation, never guess.
func Normalize(materialSpec string) (string, bool) {
	s := strings.TrimSpace(materialSpec)
	if s == "" {
		return "", false
	}
	if _, ok := table[s]; ok {
		return s, true
	}

	rw := rewrite(s)
	if _, ok := table[rw]; ok {
		return rw, true
	}

	for _, key := range sortedKeys() {
		if strings.EqualFold(key, s) || strings.EqualFold(key, rw) {
			return key, true
		}
	}

	if rw != "" {
		for _, key := range sortedKeys() {
			if strings.Contains(key, rw) || strings.Contains(rw, key) {
				return key, true
			}
		}
	}
	return "", false
}

// rewrite collapses grade/type noise words and separator variants into the
// canonical hyphenated form.
func rewrite(s string) string {
	u := strings.ToUpper(strings.TrimSpace(s))
	u = strings.ReplaceAll(u, "GRADE", " ")
	u = strings.ReplaceAll(u, "GR.", " ")
	u = gradeRe.ReplaceAllString(u, " ")
	u = strings.ReplaceAll(u, "TYPE", " ")
	u = tpRe.ReplaceAllString(u, " $1")
	u = letDigitRe.ReplaceAllString(u, "$1-$2")

	tokens := sepRe.Split(u, -1)
	kept := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			kept = append(kept, t)
		}
	}
	joined := strings.Join(kept, "-")

	// Bare stainless grades are plate designations.
	if plateSSRe.MatchString(joined) {
		joined = "SA-240-" + joined
	}
	return joined
}

// Materials returns the canonical keys, sorted, for listings and validation.
func Materials() []string {
	return sortedKeys()
}

func sortedKeys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
