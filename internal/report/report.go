// package report renders styled run summaries for terminal output
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dryarchive/worldimport/internal/importer"
	"github.com/dryarchive/worldimport/internal/seeder"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
)

// Import renders the per-collection counts of a committed import.
func Import(sum *importer.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Import complete"))
	b.WriteString("\n")
	writeLine(&b, "Users", sum.Users)
	writeLine(&b, "Levels", sum.Levels)
	writeLine(&b, "Relations", sum.Relations)
	writeLine(&b, "Assets", sum.Assets)
	return b.String()
}

// Seed renders the synthetic record counts of a seed run.
func Seed(sum *seeder.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Seeding complete"))
	b.WriteString("\n")
	writeLine(&b, "Placeholder users", sum.Placeholders)
	writeLine(&b, "Unique plays", sum.UniquePlays)
	writeLine(&b, "Play counts", sum.PlayCounts)
	writeLine(&b, "Favourite users", sum.FavouriteUsers)
	writeLine(&b, "Favourite levels", sum.FavouriteLevels)
	return b.String()
}

func writeLine(b *strings.Builder, label string, n int) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(label+":"),
		valueStyle.Render(fmt.Sprintf("%d", n)),
	))
}
