package skillfield

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

// ErrNoSkills is returned when a skill set contains no skills.
var ErrNoSkills = errors.New("skillfield: skill set has no skills")

// Skill is one record of the input skill list. The engine only relies on ID
// and Icon; the remaining fields are passed through to renderers.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Category    string   `json:"category,omitempty"`
	Level       int      `json:"level"`
	MaxLevel    int      `json:"maxLevel"`
	Years       *float64 `json:"years,omitempty"`
}

// LevelRatio returns Level/MaxLevel, or 0 when MaxLevel is not positive.
func (s Skill) LevelRatio() float64 {
	if s.MaxLevel <= 0 {
		return 0
	}
	return float64(s.Level) / float64(s.MaxLevel)
}

// Category groups skills for filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SkillSet is the decoded skill data document.
type SkillSet struct {
	Skills     []Skill    `json:"skills"`
	Categories []Category `json:"categories"`
}

// ParseSkillSet decodes a skill data document.
func ParseSkillSet(data []byte) (*SkillSet, error) {
	var set SkillSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("skillfield: parse skill set: %w", err)
	}
	if len(set.Skills) == 0 {
		return nil, ErrNoSkills
	}
	return &set, nil
}

// LoadSkillSet reads and decodes the named skill document from fsys.
func LoadSkillSet(fsys fs.FS, name string) (*SkillSet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("skillfield: read skill set: %w", err)
	}
	return ParseSkillSet(data)
}

// Filter returns the skills in the given category, or all skills for "" and
// "all", ordered by level ratio (highest first). Ties keep input order.
func (s *SkillSet) Filter(category string) []Skill {
	out := make([]Skill, 0, len(s.Skills))
	for _, sk := range s.Skills {
		if category == "" || category == "all" || sk.Category == category {
			out = append(out, sk)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LevelRatio() > out[j].LevelRatio()
	})
	return out
}

// CategoryName returns the display name for a category id, or the id itself
// if the category is unknown.
func (s *SkillSet) CategoryName(id string) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
