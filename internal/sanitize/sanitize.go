// Package sanitize handles untrusted request input before it reaches the
// repositories. Values are always passed to the database as bound parameters;
// nothing here builds SQL text.
package sanitize

import (
	"errors"
	"strconv"
	"strings"
)

// LikeEscape is the ESCAPE character used with LikePattern.
const LikeEscape = "!"

var ErrInvalidID = errors.New("invalid id")

// ParseID accepts a base-10 non-negative integer with no sign, spaces or
// fraction that fits a signed 64-bit row id. Anything else returns ErrInvalidID.
func ParseID(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrInvalidID
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrInvalidID
		}
	}
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

var likeReplacer = strings.NewReplacer(
	LikeEscape, LikeEscape+LikeEscape,
	"%", LikeEscape+"%",
	"_", LikeEscape+"_",
)

// Fold lower-cases a search term the same way the database's LOWER() does.
type Fold func(string) string

var (
	// FoldASCII matches SQLite, whose LOWER() only folds A-Z.
	FoldASCII Fold = asciiLower
	// FoldUnicode matches PostgreSQL and MySQL on UTF-8 columns.
	FoldUnicode Fold = strings.ToLower
)

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// LikePattern turns a search term into a folded substring pattern for
// `LOWER(col) LIKE ? ESCAPE '!'`. LIKE wildcards in the term match literally.
// An empty (or blank) term yields "%%", which matches every row.
func LikePattern(term string, fold Fold) string {
	term = fold(strings.TrimSpace(term))
	return "%" + likeReplacer.Replace(term) + "%"
}
