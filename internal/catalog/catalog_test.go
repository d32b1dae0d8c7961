package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabsOrder(t *testing.T) {
	var ids []string
	for _, tab := range Tabs() {
		ids = append(ids, tab.ID)
	}
	assert.Equal(t, []string{"home", "about", "projects", "contact"}, ids)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := Projects()
	require.NotEmpty(t, p)
	p[0].Title = "changed"
	p[0].Tech[0] = "COBOL"
	assert.NotEqual(t, "changed", Projects()[0].Title)
	assert.Equal(t, "TypeScript", Projects()[0].Tech[0])

	s := Skills()
	s[0].Skills[0].Name = "changed"
	assert.Equal(t, "HTML", Skills()[0].Skills[0].Name)

	prof := GetProfile()
	prof.Links[0].URL = "changed"
	assert.Equal(t, "https://github.com/kauhanhernandes", GetProfile().Links[0].URL)
}

func TestSkillGroups(t *testing.T) {
	groups := Skills()
	require.Len(t, groups, 4)
	assert.Equal(t, "frontend", groups[0].Category)
	assert.Len(t, groups[0].Skills, 6)
	assert.Equal(t, "others", groups[3].Category)
}

func TestAll(t *testing.T) {
	c := All()
	assert.Len(t, c.Tabs, 4)
	assert.Len(t, c.Projects, 3)
	assert.Equal(t, "Kauhan Hernandes", c.Profile.Name)
}
