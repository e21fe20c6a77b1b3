package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// BreakdownTable renders the breed by feed-type yields with a per-breed total.
func BreakdownTable(b models.YieldBreakdown) string {
	headers := []string{"Breed"}
	for _, feed := range models.FeedTypes {
		headers = append(headers, string(feed))
	}
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(b.Breeds))
	for _, breed := range b.Breeds {
		row := []string{breed}
		for _, feed := range models.FeedTypes {
			row = append(row, Number(b.ByBreed[breed][feed]))
		}
		row = append(row, Number(b.BreedTotal(breed)))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	return t.String() + "\n"
}
