package ui

import (
	"github.com/pterm/pterm"
)

// Table renders a boxed table with the header row styled through the
// ui_column_header element. pterm owns the layout; the cells arrive
// already styled so the table draws the same whether or not color is
// enabled.
func (c *Console) Table(elements *Elements, header []string, rows [][]string) (string, error) {
	styledHeader := make([]string, len(header))
	for i, h := range header {
		styledHeader[i] = elements.Styled(c, "ui_column_header", h)
	}

	data := pterm.TableData{styledHeader}
	for _, row := range rows {
		data = append(data, row)
	}

	return pterm.DefaultTable.WithData(data).WithBoxed(true).Srender()
}

// PrintTable renders a table and writes it to the console.
func (c *Console) PrintTable(elements *Elements, header []string, rows [][]string) error {
	out, err := c.Table(elements, header, rows)
	if err != nil {
		return err
	}
	c.Println(out)
	return nil
}
