package planner_test

import (
	"errors"
	"testing"

	"github.com/prepdeck/prepdeck/internal/planner"
)

func TestParseTopics(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []planner.Topic
	}{
		{
			name: "single topic defaults to medium",
			raw:  "Thermodynamics",
			want: []planner.Topic{{Name: "Thermodynamics", Difficulty: "medium"}},
		},
		{
			name: "topic with difficulty",
			raw:  "Algebra | easy",
			want: []planner.Topic{{Name: "Algebra", Difficulty: "easy"}},
		},
		{
			name: "difficulty is normalized",
			raw:  "Optics | HARD ",
			want: []planner.Topic{{Name: "Optics", Difficulty: "hard"}},
		},
		{
			name: "unknown difficulty falls back to medium",
			raw:  "Optics | impossible",
			want: []planner.Topic{{Name: "Optics", Difficulty: "medium"}},
		},
		{
			name: "extra segments are ignored",
			raw:  "Algebra | hard | high",
			want: []planner.Topic{{Name: "Algebra", Difficulty: "hard"}},
		},
		{
			name: "blank lines are skipped",
			raw:  "\nAlgebra | easy\n\n  \nCalculus | hard\n",
			want: []planner.Topic{
				{Name: "Algebra", Difficulty: "easy"},
				{Name: "Calculus", Difficulty: "hard"},
			},
		},
		{
			name: "duplicates are preserved in order",
			raw:  "Algebra\nAlgebra",
			want: []planner.Topic{
				{Name: "Algebra", Difficulty: "medium"},
				{Name: "Algebra", Difficulty: "medium"},
			},
		},
		{
			name: "empty pipe segment keeps default difficulty",
			raw:  "Algebra |",
			want: []planner.Topic{{Name: "Algebra", Difficulty: "medium"}},
		},
		{
			name: "pipe with no name yields empty-name topic",
			raw:  "| easy",
			want: []planner.Topic{{Name: "", Difficulty: "easy"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planner.ParseTopics(tt.raw)
			if err != nil {
				t.Fatalf("ParseTopics() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTopics() returned %d topics, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i].Name {
					t.Errorf("topic[%d].Name = %q, want %q", i, got[i].Name, tt.want[i].Name)
				}
				if got[i].Difficulty != tt.want[i].Difficulty {
					t.Errorf("topic[%d].Difficulty = %q, want %q", i, got[i].Difficulty, tt.want[i].Difficulty)
				}
			}
		})
	}
}

func TestParseTopics_Empty(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n  "} {
		_, err := planner.ParseTopics(raw)
		if !errors.Is(err, planner.ErrNoTopics) {
			t.Errorf("ParseTopics(%q) error = %v, want ErrNoTopics", raw, err)
		}
	}
}

func TestIsSingleTopic(t *testing.T) {
	one := []planner.Topic{{Name: "Algebra"}}
	two := []planner.Topic{{Name: "Algebra"}, {Name: "Calculus"}}

	if !planner.IsSingleTopic(one) {
		t.Error("IsSingleTopic(one topic) = false, want true")
	}
	if planner.IsSingleTopic(two) {
		t.Error("IsSingleTopic(two topics) = true, want false")
	}
}
