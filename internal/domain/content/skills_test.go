package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFlat() []CategorizedSkill {
	return []CategorizedSkill{
		{Skill: Skill{ID: 1, Name: "React", Level: LevelAdvanced}, Category: CategoryFrontend},
		{Skill: Skill{ID: 2, Name: "Go", Level: LevelIntermediate}, Category: CategoryBackend},
		{Skill: Skill{ID: 3, Name: "Vue", Level: LevelLearning}, Category: CategoryFrontend},
		{Skill: Skill{ID: 4, Name: "Postgres", Level: LevelAdvanced}, Category: CategoryDatabase},
	}
}

func TestGroupSkills_PreservesOrderWithinCategory(t *testing.T) {
	set := GroupSkills(sampleFlat())

	assert.Len(t, set[CategoryFrontend], 2)
	assert.Equal(t, "React", set[CategoryFrontend][0].Name)
	assert.Equal(t, "Vue", set[CategoryFrontend][1].Name)
	assert.Len(t, set[CategoryBackend], 1)
}

func TestGroupSkills_Idempotent(t *testing.T) {
	once := GroupSkills(sampleFlat())
	twice := GroupSkills(FlattenSkills(once))

	assert.Equal(t, once, twice)
}

func TestFlattenSkills_RoundTrip(t *testing.T) {
	set := GroupSkills(sampleFlat())
	flat := FlattenSkills(set)

	assert.Len(t, flat, 4)
	assert.Equal(t, set, GroupSkills(flat))
}

func TestFlattenSkills_UnknownCategoryFromImportSurvives(t *testing.T) {
	set := SkillSet{
		CategoryTools:          {{ID: 5, Name: "Git"}},
		CategoryKey("embedded"): {{ID: 6, Name: "C"}},
	}

	flat := FlattenSkills(set)

	assert.Len(t, flat, 2)
	assert.Equal(t, set, GroupSkills(flat))
}

func TestCategoryKeys_Fixed(t *testing.T) {
	keys := CategoryKeys()
	assert.Len(t, keys, 5)
	for _, k := range keys {
		assert.True(t, IsValidCategory(k))
	}
	assert.False(t, IsValidCategory(CategoryKey("embedded")))
}
