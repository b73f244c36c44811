package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/checklist"
	"travel-planner/internal/model"
)

func TestParseMarkdown(t *testing.T) {
	content := "# Goa\n- [ ] Sunscreen\n  - [x] Passport\n- [X] Hat\n```\n- [ ] Fake in code\n```\nplain line\n- [ ]missing space"

	boxes := checklist.ParseMarkdown(content)
	require.Len(t, boxes, 3)

	assert.Equal(t, []checklist.Checkbox{
		{Checked: false, Text: "Sunscreen"},
		{Checked: true, Text: "Passport"},
		{Checked: true, Text: "Hat"},
	}, boxes)
}

func TestImportMarkdown_NestedItemsFlattened(t *testing.T) {
	s := checklist.ImportMarkdown(`- [ ] Toiletries
    - [x] Toothbrush
	- [ ] Floss
`, &seqIDs{})

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Toothbrush", items[1].Text)
	assert.True(t, items[1].Packed)
	assert.Equal(t, "Floss", items[2].Text)
	assert.Equal(t, 1, s.Progress().Packed)
}

func TestRenderAndImportMarkdown(t *testing.T) {
	s := checklist.NewStore([]model.ChecklistItem{
		{ID: "a", Text: "passport", Packed: true},
		{ID: "b", Text: "charger"},
	}, &seqIDs{})

	md := s.RenderMarkdown()
	assert.Equal(t, "- [x] passport\n- [ ] charger\n", md)

	imported := checklist.ImportMarkdown(md, &seqIDs{})
	items := imported.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "passport", items[0].Text)
	assert.True(t, items[0].Packed)
	assert.Equal(t, "charger", items[1].Text)
	assert.False(t, items[1].Packed)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, checklist.Progress{Packed: 1, Total: 2, Percent: 50}, imported.Progress())
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", checklist.NewStore(nil, &seqIDs{}).RenderMarkdown())
}
