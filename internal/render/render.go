package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/Iron-Ham/leagueroster/internal/division"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

// Table lays out rows in left-aligned columns sized to their widest cell,
// with a styled header row and a rule beneath it. Short rows are padded with
// empty cells.
func Table(headers []string, rows [][]string) string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		padded[i] = cells
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).PaddingRight(2)
	cell := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Muted).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(padded...)

	return t.String() + "\n"
}

// Divisions renders the rules of every division, fees formatted in unit
// for the given locale.
func Divisions(unit currency.Unit, tag language.Tag) string {
	headers := []string{"KEY", "DIVISION", "FEE", "ROSTER", "NUMBERS", "MINUTES", "UNLIMITED SUBS"}
	var rows [][]string
	for _, d := range division.All() {
		p := d.CreatePolicies()
		subs := "no"
		if p.AllowsUnlimitedSubstitutions() {
			subs = "yes"
		}
		rows = append(rows, []string{
			d.String(),
			d.Name(),
			p.RegistrationFee().Format(unit, tag),
			fmt.Sprintf("%d-%d", p.MinRosterSize(), p.MaxRosterSize()),
			p.AllowedNumbers().String(),
			fmt.Sprintf("%d", p.MatchDurationMinutes()),
			subs,
		})
	}
	return Table(headers, rows)
}

// TeamLine renders a registered team as one result line.
func TeamLine(t *roster.Team, unit currency.Unit, tag language.Tag) string {
	return fmt.Sprintf("%s %s  %s  %s  %s",
		Success.Render(MarkOK),
		lipgloss.NewStyle().Bold(true).Render(t.Name()),
		Muted.Render(t.Division()),
		fmt.Sprintf("%d players", t.Size()),
		Muted.Render("fee "+t.Policies().RegistrationFee().Format(unit, tag)))
}

// FailureLine renders a team that could not be registered.
func FailureLine(name string, err error) string {
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s %s  %s",
		Failure.Render(MarkFail),
		lipgloss.NewStyle().Bold(true).Render(name),
		Failure.Render(err.Error()))
}

// Summary renders the closing line of a registration run.
func Summary(registered, total int, season string) string {
	msg := fmt.Sprintf("Registered %d of %d teams for season %s", registered, total, season)
	if registered == total {
		return Success.Render(msg)
	}
	return Warning.Render(msg)
}
