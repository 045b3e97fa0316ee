package report

import (
	"strings"
	"testing"

	"github.com/dryarchive/worldimport/internal/importer"
	"github.com/dryarchive/worldimport/internal/seeder"
)

func TestImport(t *testing.T) {
	out := Import(&importer.Summary{Users: 2, Levels: 1, Relations: 3, Assets: 4})

	for _, want := range []string{"Import complete", "Users", "Levels", "Relations", "Assets", "2", "1", "3", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestSeed(t *testing.T) {
	out := Seed(&seeder.Summary{
		Placeholders:    5,
		UniquePlays:     7,
		PlayCounts:      7,
		FavouriteUsers:  2,
		FavouriteLevels: 3,
	})

	for _, want := range []string{"Seeding complete", "Placeholder users", "Unique plays", "Play counts", "Favourite users", "Favourite levels", "5", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}
