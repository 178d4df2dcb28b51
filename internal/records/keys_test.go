package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormKey(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain_title",
			title: "The Last Frontier",
			want:  "the last frontier",
		},
		{
			name:  "strips_aka_clause",
			title: "Elysium (AKA: Project Dawn)",
			want:  "elysium",
		},
		{
			name:  "strips_quoted_aka",
			title: `Elysium (aka "Project Dawn")`,
			want:  "elysium",
		},
		{
			name:  "strips_wt_clause",
			title: "Elysium (w/t Project Dawn)",
			want:  "elysium",
		},
		{
			name:  "strips_dotted_wt",
			title: "Elysium (W.T. Project Dawn)",
			want:  "elysium",
		},
		{
			name:  "folds_diacritics",
			title: "Amélie's Café",
			want:  "amelie s cafe",
		},
		{
			name:  "folds_curly_quotes_and_dashes",
			title: "“Night–Shift”",
			want:  "night shift",
		},
		{
			name:  "collapses_punctuation_runs",
			title: "S.W.A.T.: Under  Siege!!",
			want:  "s w a t under siege",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormKey(tt.title))
		})
	}
}

func TestNormKeyIdempotent(t *testing.T) {
	titles := []string{
		"The Last Frontier",
		"Elysium (AKA: Project Dawn)",
		"Amélie's Café",
		"“Night–Shift” / Season 2",
		"Brooklyn 99",
	}
	for _, title := range titles {
		once := NormKey(title)
		assert.Equal(t, once, NormKey(once), "NormKey must be idempotent for %q", title)
	}
}

func TestAliasVariantsShareKey(t *testing.T) {
	base := NormKey("Horizon")
	variants := []string{
		"Horizon (AKA: Blue Sky)",
		`Horizon (aka "Blue Sky")`,
		"Horizon (w/t Blue Sky)",
		"Horizon (w.t. Blue Sky)",
	}
	for _, v := range variants {
		assert.Equal(t, base, NormKey(v), "alias variant %q should match base key", v)
	}
}
