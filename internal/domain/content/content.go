package content

// SocialLinks holds the optional profile link set. An empty string means the
// link is unset; consumers render "#" for those.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
}

// Profile is a singleton: updates replace fields, a second instance is never
// created.
type Profile struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Location     string      `json:"location"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	Email        string      `json:"email"`
	Socials      SocialLinks `json:"socials"`
}

type CareerEntry struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// LinkPlaceholder marks an absent demo/repo URL.
const LinkPlaceholder = "#"

type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Demo        string   `json:"demo"`
	Repo        string   `json:"repo"`
}

// Proficiency labels, ranked for display.
const (
	LevelLearning     = "Learning"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

type Skill struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Level  string `json:"level"`
	Invert bool   `json:"invert"`
}

// CategoryKey is one of the fixed skill-grouping labels.
type CategoryKey string

const (
	CategoryFrontend    CategoryKey = "frontend"
	CategoryBackend     CategoryKey = "backend"
	CategoryDatabase    CategoryKey = "database"
	CategoryCloudDevOps CategoryKey = "cloudDevOps"
	CategoryTools       CategoryKey = "tools"
)

// CategoryKeys returns the fixed category set in display order.
func CategoryKeys() []CategoryKey {
	return []CategoryKey{
		CategoryFrontend,
		CategoryBackend,
		CategoryDatabase,
		CategoryCloudDevOps,
		CategoryTools,
	}
}

func IsValidCategory(key CategoryKey) bool {
	switch key {
	case CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryCloudDevOps, CategoryTools:
		return true
	}
	return false
}

// SkillSet is the grouped read model served to display consumers.
type SkillSet map[CategoryKey][]Skill

// CategorizedSkill is the flat wire/database form of a skill row.
type CategorizedSkill struct {
	Skill
	Category CategoryKey `json:"category"`
}

// Snapshot is the unit of load, fallback persistence, export and import.
type Snapshot struct {
	Profile  Profile       `json:"profile"`
	Career   []CareerEntry `json:"career"`
	Projects []Project     `json:"projects"`
	Skills   SkillSet      `json:"skillCategories"`
}

// Clone deep-copies the snapshot so mutations can swap state wholesale
// without readers observing a half-updated collection.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Profile:  s.Profile,
		Career:   make([]CareerEntry, len(s.Career)),
		Projects: make([]Project, len(s.Projects)),
		Skills:   make(SkillSet, len(s.Skills)),
	}
	copy(out.Career, s.Career)
	for i, p := range s.Projects {
		cp := p
		cp.Tags = make([]string, len(p.Tags))
		copy(cp.Tags, p.Tags)
		out.Projects[i] = cp
	}
	for cat, skills := range s.Skills {
		cs := make([]Skill, len(skills))
		copy(cs, skills)
		out.Skills[cat] = cs
	}
	return out
}

// DefaultSnapshot is the built-in content used when both the gateway and the
// fallback store come up empty.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Profile: Profile{
			Name:         "Minh Sơn",
			Title:        "Information Systems Student & Aspiring Developer",
			Location:     "Hanoi, Vietnam",
			Bio:          "A third-year Computer Science student specializing in Information Systems. Passionate about building robust applications and solving complex problems with code.",
			ProfileImage: "https://placehold.co/150x150/1e293b/a5b4fc?text=LMS",
			Email:        "minhson789999@gmail.com",
			Socials: SocialLinks{
				GitHub:   "https://github.com/Autum7899",
				LinkedIn: "https://www.linkedin.com/in/sơn-minh-3837a8370/",
			},
		},
		Career: []CareerEntry{
			{
				ID:          1,
				Institution: "University of Economics - Technology for Industries",
				Degree:      "Engineering degree in Information Technology",
				Major:       "Information Systems",
				Date:        "Expected Graduation: 2026",
				Description: "Focusing on database management, system analysis, and full-stack web development.",
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "University Web Project",
				Description: "A comprehensive university project focused on database management and web interfaces.",
				Image:       "https://placehold.co/600x400/1e293b/a5b4fc?text=Project+1",
				Tags:        []string{"React", "SQL Server", "Express"},
				Demo:        LinkPlaceholder,
				Repo:        LinkPlaceholder,
			},
		},
		Skills: SkillSet{
			CategoryFrontend: {
				{
					ID:    1,
					Name:  "React",
					Logo:  "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/react/react-original.svg",
					Level: LevelAdvanced,
				},
			},
			CategoryBackend:     {},
			CategoryDatabase:    {},
			CategoryCloudDevOps: {},
			CategoryTools:       {},
		},
	}
}
