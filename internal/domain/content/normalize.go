package content

import (
	"encoding/json"
	"strconv"
)

// Normalization maps raw gateway records onto the canonical shapes. It is
// total: any record with the minimally required fields yields a value with
// empty-string/false/empty-slice defaults, never nil.

func str(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func boolean(raw map[string]any, key string) bool {
	if v, ok := raw[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// id accepts the numeric forms a JSON decoder or a database row may carry.
func id(raw map[string]any, key string) int64 {
	switch v := raw[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func strSlice(raw map[string]any, key string) []string {
	out := []string{}
	v, ok := raw[key]
	if !ok {
		return out
	}
	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// NormalizeProfile accepts both snake_case database rows and camelCase client
// records, with socials either nested or as flat columns. A nil record falls
// back to the built-in default profile.
func NormalizeProfile(raw map[string]any) Profile {
	if raw == nil {
		return DefaultSnapshot().Profile
	}

	p := Profile{
		Name:         str(raw, "name"),
		Title:        str(raw, "title"),
		Location:     str(raw, "location"),
		Bio:          str(raw, "bio"),
		ProfileImage: str(raw, "profile_image", "profileImage"),
		Email:        str(raw, "email"),
	}

	socials := map[string]any{}
	if nested, ok := raw["socials"].(map[string]any); ok {
		socials = nested
	}
	p.Socials = SocialLinks{
		GitHub:   str(raw, "github"),
		LinkedIn: str(raw, "linkedin"),
		Twitter:  str(raw, "twitter"),
		Facebook: str(raw, "facebook"),
	}
	if p.Socials.GitHub == "" {
		p.Socials.GitHub = str(socials, "github")
	}
	if p.Socials.LinkedIn == "" {
		p.Socials.LinkedIn = str(socials, "linkedin")
	}
	if p.Socials.Twitter == "" {
		p.Socials.Twitter = str(socials, "twitter")
	}
	if p.Socials.Facebook == "" {
		p.Socials.Facebook = str(socials, "facebook")
	}
	return p
}

func NormalizeCareerEntry(raw map[string]any) CareerEntry {
	return CareerEntry{
		ID:          id(raw, "id"),
		Institution: str(raw, "institution"),
		Degree:      str(raw, "degree"),
		Major:       str(raw, "major"),
		Date:        str(raw, "date"),
		Description: str(raw, "description"),
	}
}

func NormalizeProject(raw map[string]any) Project {
	return Project{
		ID:          id(raw, "id"),
		Title:       str(raw, "title"),
		Description: str(raw, "description"),
		Image:       str(raw, "image"),
		Tags:        strSlice(raw, "tags"),
		Demo:        str(raw, "demo"),
		Repo:        str(raw, "repo"),
	}
}

func NormalizeSkill(raw map[string]any) Skill {
	return Skill{
		ID:     id(raw, "id"),
		Name:   str(raw, "name"),
		Logo:   str(raw, "logo"),
		Level:  str(raw, "level"),
		Invert: boolean(raw, "invert"),
	}
}

// NormalizeSnapshot turns a decoded gateway payload into a canonical
// snapshot. The skills value may arrive grouped or as a flat list with a
// category field per record; both land in the grouped read model.
func NormalizeSnapshot(raw map[string]any) Snapshot {
	snap := Snapshot{
		Career:   []CareerEntry{},
		Projects: []Project{},
	}

	profileRaw, _ := pick(raw, "profile", "user").(map[string]any)
	snap.Profile = NormalizeProfile(profileRaw)

	if list, ok := pick(raw, "career").([]any); ok {
		for _, item := range list {
			if rec, ok := item.(map[string]any); ok {
				snap.Career = append(snap.Career, NormalizeCareerEntry(rec))
			}
		}
	}

	if list, ok := pick(raw, "projects").([]any); ok {
		for _, item := range list {
			if rec, ok := item.(map[string]any); ok {
				snap.Projects = append(snap.Projects, NormalizeProject(rec))
			}
		}
	}

	snap.Skills = normalizeSkills(pick(raw, "skillCategories", "skills"))
	return snap
}

func pick(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func normalizeSkills(v any) SkillSet {
	switch typed := v.(type) {
	case map[string]any:
		set := SkillSet{}
		for key, val := range typed {
			list, ok := val.([]any)
			if !ok {
				set[CategoryKey(key)] = []Skill{}
				continue
			}
			skills := make([]Skill, 0, len(list))
			for _, item := range list {
				if rec, ok := item.(map[string]any); ok {
					skills = append(skills, NormalizeSkill(rec))
				}
			}
			set[CategoryKey(key)] = skills
		}
		return set
	case []any:
		flat := make([]CategorizedSkill, 0, len(typed))
		for _, item := range typed {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			flat = append(flat, CategorizedSkill{
				Skill:    NormalizeSkill(rec),
				Category: CategoryKey(str(rec, "category")),
			})
		}
		return GroupSkills(flat)
	}
	return DefaultSnapshot().Skills
}
