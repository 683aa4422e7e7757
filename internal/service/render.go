package service

import (
	"fmt"
	"io"
	"strings"

	"propsearch/internal/model"
)

const cardWidth = 78

// RenderText writes the summary and box-drawn cards of resp to w, the way
// the terminal front-end shows them
func RenderText(w io.Writer, resp *model.SearchResponse) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary:\n  %s\n\n", resp.Summary)
	if len(resp.Cards) == 0 {
		b.WriteString("No properties found.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	border := strings.Repeat("─", cardWidth)
	for _, card := range resp.Cards {
		fmt.Fprintf(&b, "#%d\n", card.Rank)
		fmt.Fprintf(&b, "┌%s┐\n", border)
		writeLine(&b, card.Title)
		fmt.Fprintf(&b, "├%s┤\n", border)
		writeLine(&b, "Location: "+card.Location)
		writeLine(&b, fmt.Sprintf("%-12s | %-18s | %s", card.BHK, card.Price, card.CarpetArea))
		writeLine(&b, fmt.Sprintf("Status: %-26s | %s", card.Status, card.Furnishing))
		amenities := notMentioned
		if len(card.Amenities) > 0 {
			amenities = strings.Join(card.Amenities, ", ")
		}
		writeLine(&b, "Amenities: "+amenities)
		if card.Link != "" {
			writeLine(&b, "Link: "+card.Link)
		}
		fmt.Fprintf(&b, "└%s┘\n\n", border)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeLine pads or truncates text to the inside width of a card
func writeLine(b *strings.Builder, text string) {
	inner := cardWidth - 2
	runes := []rune(text)
	if len(runes) > inner {
		runes = append(runes[:inner-3], []rune("...")...)
	}
	fmt.Fprintf(b, "│ %s%s │\n", string(runes), strings.Repeat(" ", inner-len(runes)))
}
