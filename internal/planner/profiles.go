// Package planner builds day-by-day exam study plans from weighted topics,
// a daily time budget, and an exam date. It performs no I/O and calls no
// external service; the only configuration surface is the static difficulty
// profile table embedded below.
package planner

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DifficultyProfile describes how a difficulty level shapes subtopic depth,
// time allocation, and prompt construction for the topic expander.
type DifficultyProfile struct {
	Weight         float64  `yaml:"weight"`
	Depth          string   `yaml:"depth"`
	RevisionCycles int      `yaml:"revision_cycles"`
	PracticeType   string   `yaml:"practice_type"`
	Focus          []string `yaml:"focus"`
	Notes          string   `yaml:"notes"`
	PromptHint     string   `yaml:"prompt_hint"`
}

// DefaultDifficulty is used for absent or unrecognized difficulty labels.
const DefaultDifficulty = "medium"

//go:embed profiles.yaml
var profilesYAML []byte

var profiles map[string]DifficultyProfile

func init() {
	if err := yaml.Unmarshal(profilesYAML, &profiles); err != nil {
		panic(fmt.Sprintf("planner: parsing embedded profiles.yaml: %v", err))
	}
	if _, ok := profiles[DefaultDifficulty]; !ok {
		panic("planner: profiles.yaml is missing the default difficulty")
	}
}

// NormalizeDifficulty lowercases and trims a difficulty label, mapping
// anything outside the known set to DefaultDifficulty. It is total over
// strings and never fails.
func NormalizeDifficulty(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if _, ok := profiles[level]; !ok {
		return DefaultDifficulty
	}
	return level
}

// Profile returns the pedagogical profile for a difficulty level.
func Profile(level string) DifficultyProfile {
	return profiles[NormalizeDifficulty(level)]
}

// Weight returns the relative time-allocation multiplier for a difficulty.
func Weight(level string) float64 {
	return Profile(level).Weight
}

// PromptHint returns the LLM instruction hint for a difficulty.
func PromptHint(level string) string {
	return Profile(level).PromptHint
}
