package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Difficulty labels used by questions.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question represents a coding exercise published by a staff member.
type Question struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Difficulty   string         `gorm:"size:16;not null" json:"difficulty"`
	Tags         datatypes.JSON `gorm:"type:text" json:"-"`
	SampleInput  string         `gorm:"type:text" json:"sample_input"`
	SampleOutput string         `gorm:"type:text" json:"sample_output"`
	Constraints  string         `gorm:"type:text" json:"constraints"`
	CreatedBy    string         `gorm:"size:36;not null;index" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"-"`
}

// TagsSlice decodes the stored JSON tag array. A missing or malformed
// column yields nil.
func (q Question) TagsSlice() []string {
	if len(q.Tags) == 0 {
		return nil
	}

	var tags []string
	if err := json.Unmarshal(q.Tags, &tags); err != nil {
		return nil
	}
	return tags
}

// EncodeTags stores a tag slice as a JSON array, dropping empty entries.
func EncodeTags(tags []string) datatypes.JSON {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return nil
	}
	return datatypes.JSON(encoded)
}
