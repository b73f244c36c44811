package packing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/packing"
)

// seqIDs is a deterministic IDSource for tests.
type seqIDs struct{ n int }

func (s *seqIDs) Next() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func texts(t *testing.T, input string) []string {
	t.Helper()
	items := packing.Extract(input, &seqIDs{})
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestExtract_Scenario(t *testing.T) {
	items := packing.Extract("CLOTHING:\n- 2 t-shirts\n* sunscreen\nNote: pack light", &seqIDs{})

	require.Len(t, items, 2)
	assert.Equal(t, "2 t-shirts", items[0].Text)
	assert.Equal(t, "sunscreen", items[1].Text)
	assert.Equal(t, "id-1", items[0].ID)
	assert.Equal(t, "id-2", items[1].ID)
	assert.False(t, items[0].Packed)
	assert.False(t, items[1].Packed)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "only category headings", input: "CLOTHING:\nTRAVEL DOCS:\n  FOOTWEAR:  ", want: []string{}},
		{
			name:  "noise lines dropped case insensitively",
			input: "Here is your Packing List\nCategory: Electronics\nNOTE: check weather\nCharger",
			want:  []string{"Charger"},
		},
		{
			name:  "bullet glyphs removed",
			input: "• Passport\n  - Visa copy\n### Toothbrush\n**Power bank**",
			want:  []string{"Passport", "Visa copy", "Toothbrush", "Power bank"},
		},
		{
			name:  "decoration only lines dropped",
			input: "---\n***\n• \nHat",
			want:  []string{"Hat"},
		},
		{
			name:  "mixed case heading is kept",
			input: "Clothing:",
			want:  []string{"Clothing:"},
		},
		{
			name:  "category heading with non-breaking space",
			input: "TRAVEL\u00a0DOCS:\nPassport",
			want:  []string{"Passport"},
		},
		{
			name:  "en and em dash list markers",
			input: "— towel\n– flip-flops\n - — swimsuit",
			want:  []string{"towel", "flip-flops", "swimsuit"},
		},
		{
			name:  "in-word dashes survive",
			input: "- rain—proof jacket\n- 2 t-shirts",
			want:  []string{"rain—proof jacket", "2 t-shirts"},
		},
		{
			name:  "duplicates allowed",
			input: "- socks\n- socks",
			want:  []string{"socks", "socks"},
		},
		{
			name:  "crlf",
			input: "- umbrella\r\n- raincoat\r\n",
			want:  []string{"umbrella", "raincoat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(t, tt.input))
		})
	}
}

func TestExtract_UniqueNonEmpty(t *testing.T) {
	input := "- socks\n- socks\n* socks\nSOCKS:\n\n- \n• sandals"
	items := packing.Extract(input, packing.NewULIDSource())

	seen := map[string]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.Text)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	assert.Len(t, items, 4)
}

func TestULIDSource_Monotonic(t *testing.T) {
	src := packing.NewULIDSource()

	prev := src.Next()
	for i := 0; i < 1000; i++ {
		next := src.Next()
		require.Len(t, next, 26)
		require.Greater(t, next, prev)
		prev = next
	}
}
