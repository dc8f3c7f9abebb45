package content

// GroupSkills folds a flat skill list into the categorized read model.
// Insertion order within a category is preserved. Grouping an already
// grouped-then-flattened list reproduces the same structure, so the
// translation is idempotent.
func GroupSkills(flat []CategorizedSkill) SkillSet {
	set := SkillSet{}
	for _, cs := range flat {
		set[cs.Category] = append(set[cs.Category], cs.Skill)
	}
	return set
}

// FlattenSkills is the inverse translation, used on the write path where the
// backend stores one row per skill. Categories walk in fixed display order
// first so round-trips are stable; unknown keys introduced by bulk import
// follow after.
func FlattenSkills(set SkillSet) []CategorizedSkill {
	flat := make([]CategorizedSkill, 0)
	seen := map[CategoryKey]bool{}

	appendCategory := func(key CategoryKey) {
		for _, s := range set[key] {
			flat = append(flat, CategorizedSkill{Skill: s, Category: key})
		}
		seen[key] = true
	}

	for _, key := range CategoryKeys() {
		if _, ok := set[key]; ok {
			appendCategory(key)
		}
	}
	for key := range set {
		if !seen[key] {
			appendCategory(key)
		}
	}
	return flat
}
