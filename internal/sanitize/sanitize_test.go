package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"0", 0, false},
		{"1", 1, false},
		{"0042", 42, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"1.5", 0, true},
		{" 1", 0, true},
		{"1e3", 0, true},
		{"1; DROP TABLE products", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		fold Fold
		want string
	}{
		{"empty matches all", "", FoldASCII, "%%"},
		{"blank matches all", "   ", FoldASCII, "%%"},
		{"lower cased", "Jacket", FoldASCII, "%jacket%"},
		{"trimmed", "  ring ", FoldASCII, "%ring%"},
		{"percent literal", "100%", FoldASCII, "%100!%%"},
		{"underscore literal", "a_b", FoldASCII, "%a!_b%"},
		{"escape char literal", "wow!", FoldASCII, "%wow!!%"},
		{"quotes untouched", "men's", FoldASCII, "%men's%"},
		{"ascii fold keeps accented capitals", "ÉDITION Ö", FoldASCII, "%Édition Ö%"},
		{"unicode fold lowers accented capitals", "ÉDITION Ö", FoldUnicode, "%édition ö%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LikePattern(tt.term, tt.fold))
		})
	}
}
