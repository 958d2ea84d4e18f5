package notifier

import (
	"strings"
	"testing"

	"github.com/pmoret/gaps-notify/internal/grades"
)

func TestFormatChanges(t *testing.T) {
	changes := []grades.Change{
		{Course: "MAT1", Category: "cours", Grade: "5.5"},
		{Course: "MAT1", Category: "laboratoire", Grade: "4.0"},
		{Course: "PRG1", Category: "projet", Grade: "5.0", Name: "Projet final", Average: "4.8"},
	}

	got := FormatChanges(changes)

	want := "📚 New Grades Available! 📚\n\n" +
		"📖 New grade in cours for MAT1 : 5.5\n" +
		"🔬 New grade in laboratoire for MAT1 : 4.0\n" +
		"📖 New grade in projet for PRG1 : 5.0 (Projet final), class avg 4.8\n" +
		"\nKeep up the excellence! 🚀"

	if got != want {
		t.Errorf("FormatChanges() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatChangesIsDeterministic(t *testing.T) {
	changes := []grades.Change{
		{Course: "X", Category: "lab", Grade: "A"},
		{Course: "Y", Category: "cours", Grade: "B"},
	}

	first := FormatChanges(changes)
	second := FormatChanges(changes)
	if first != second {
		t.Error("formatting the same change list twice must produce identical output")
	}
}

func TestFormatChangesPreservesInputOrder(t *testing.T) {
	changes := []grades.Change{
		{Course: "Z", Category: "cours", Grade: "1"},
		{Course: "A", Category: "cours", Grade: "2"},
	}

	got := FormatChanges(changes)
	if strings.Index(got, "for Z") > strings.Index(got, "for A") {
		t.Error("change lines must keep input order")
	}
}

func TestCategoryMarker(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"laboratoire", "🔬"},
		{"cours", "📖"},
		{"projet", "📖"},
		{"", "📖"},
	}

	for _, tt := range tests {
		if got := categoryMarker(tt.category); got != tt.want {
			t.Errorf("categoryMarker(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
