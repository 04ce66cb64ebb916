package entity

import (
	"fmt"
	"strings"
)

// ProgramSlug is the canonical, lowercase identifier of a clinical program.
// It is used as the route key in the dashboard and as the top-level folder in
// the public asset store.
type ProgramSlug string

// Canonical program slugs, in display order.
const (
	SlugMTMTheFutureToday  ProgramSlug = "mtmthefuturetoday"
	SlugTimeMyMeds         ProgramSlug = "timemymeds"
	SlugTestAndTreat       ProgramSlug = "testandtreat"
	SlugHbA1c              ProgramSlug = "hba1c"
	SlugOralContraceptives ProgramSlug = "oralcontraceptives"
)

// ProgramCode is the short abbreviation shown on compact dashboard tiles.
type ProgramCode string

// Known program short codes.
const (
	CodeMTM ProgramCode = "MTM"
	CodeTMM ProgramCode = "TMM"
	CodeTNT ProgramCode = "TNT"
	CodeA1C ProgramCode = "A1C"
	CodeOC  ProgramCode = "OC"
)

// programSlugs lists every canonical slug in display order.
var programSlugs = []ProgramSlug{
	SlugMTMTheFutureToday,
	SlugTimeMyMeds,
	SlugTestAndTreat,
	SlugHbA1c,
	SlugOralContraceptives,
}

// The two naming schemes are not derivable from each other, so the mapping is
// spelled out here and nowhere else.
var (
	codeToSlug = map[ProgramCode]ProgramSlug{
		CodeMTM: SlugMTMTheFutureToday,
		CodeTMM: SlugTimeMyMeds,
		CodeTNT: SlugTestAndTreat,
		CodeA1C: SlugHbA1c,
		CodeOC:  SlugOralContraceptives,
	}
	slugToCode = map[ProgramSlug]ProgramCode{
		SlugMTMTheFutureToday:  CodeMTM,
		SlugTimeMyMeds:         CodeTMM,
		SlugTestAndTreat:       CodeTNT,
		SlugHbA1c:              CodeA1C,
		SlugOralContraceptives: CodeOC,
	}
)

// ProgramSlugs returns the canonical slugs in display order.
// The returned slice is a copy.
func ProgramSlugs() []ProgramSlug {
	out := make([]ProgramSlug, len(programSlugs))
	copy(out, programSlugs)
	return out
}

// Valid reports whether s is one of the canonical slugs.
func (s ProgramSlug) Valid() bool {
	_, ok := slugToCode[s]
	return ok
}

// Code returns the short code for s, or "" if s is not canonical.
func (s ProgramSlug) Code() ProgramCode {
	return slugToCode[s]
}

// Slug returns the canonical slug for c, or "" if c is unknown.
func (c ProgramCode) Slug() ProgramSlug {
	return codeToSlug[c]
}

// ParseProgramSlug normalizes raw (case and surrounding whitespace) and
// returns the matching canonical slug.
func ParseProgramSlug(raw string) (ProgramSlug, error) {
	s := ProgramSlug(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", &ValidationError{Field: "slug", Message: fmt.Sprintf("%q is not a known program slug", raw), Cause: ErrUnknownProgram}
	}
	return s, nil
}
