package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mytheresa/product-categories/catalog"
	"github.com/mytheresa/product-categories/models"
)

const (
	colID = iota
	colProduct
	colCategory
	colUser
)

// CategoryLabel is the category cell text, "icon - title".
func CategoryLabel(c models.Category) string {
	return fmt.Sprintf("%s - %s", c.Icon, c.Title)
}

// RenderTable renders the visible rows, or the no-matching message when
// there are none.
func RenderTable(rows []models.FullProduct) string {
	if len(rows) == 0 {
		return messageStyle.Render(catalog.NoMatchingMessage)
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.ID),
			r.Name,
			CategoryLabel(r.Category),
			r.Owner.Name,
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("ID", "Product", "Category", "User").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case colID:
				return idCellStyle
			case colUser:
				return ownerStyle(rows[row].Owner)
			default:
				return cellStyle
			}
		}).
		Render()
}

func ownerStyle(u models.User) lipgloss.Style {
	if u.Sex == models.SexFemale {
		return femaleStyle
	}
	return maleStyle
}
