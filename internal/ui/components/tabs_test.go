package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTabs() []TabInfo {
	return []TabInfo{
		{Name: "Status", Icon: "●", Shortcut: "s", Active: true},
		{Name: "History", Icon: "◆", Shortcut: "h"},
		{Name: "Branches", Icon: "⑂", Shortcut: "b"},
	}
}

func TestTabAt(t *testing.T) {
	tabs := testTabs()

	// Wide terminal: full labels. First tab is 2+2+1+6+2 = 13 cells.
	assert.Equal(t, 0, TabAt(tabs, 120, 0))
	assert.Equal(t, 0, TabAt(tabs, 120, 12))
	assert.Equal(t, 1, TabAt(tabs, 120, 13))
	assert.Equal(t, -1, TabAt(tabs, 120, 119))

	// Past the last tab.
	total := 0
	for _, tab := range tabs {
		total += tabWidth(tab, false)
	}
	assert.Equal(t, 2, TabAt(tabs, 120, total-1))
	assert.Equal(t, -1, TabAt(tabs, 120, total))
}

func TestTabAtIconsOnly(t *testing.T) {
	tabs := testTabs()

	// Narrow terminal collapses to icons; each tab is 2+2 = 4 cells.
	assert.Equal(t, 0, TabAt(tabs, 14, 0))
	assert.Equal(t, 0, TabAt(tabs, 14, 3))
	assert.Equal(t, 1, TabAt(tabs, 14, 4))
	assert.Equal(t, 2, TabAt(tabs, 14, 8))
	assert.Equal(t, -1, TabAt(tabs, 14, 12))
}

func TestIconWidth(t *testing.T) {
	assert.Equal(t, 1, iconWidth("x"))
	assert.Equal(t, 2, iconWidth("●"))
	assert.Equal(t, 3, iconWidth("x●"))
}
