package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/olekukonko/ts"
)

var (
	styleAvailable   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleRegistered  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleUncertain   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleUnsupported = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeader      = lipgloss.NewStyle().Bold(true)
)

// Table renders result records as a fixed-column terminal table.
type Table struct {
	noColor bool
	width   int
}

// NewTable creates a table renderer sized to the terminal.
func NewTable(noColor bool) *Table {
	width := 120
	if size, err := ts.GetSize(); err == nil && size.Col() > 0 {
		width = size.Col()
	}
	return &Table{noColor: noColor, width: width}
}

// Render renders all records plus a summary line.
func (t *Table) Render(records []*entity.ResultRecord) string {
	var b strings.Builder

	domainWidth := len("domain")
	for _, record := range records {
		if len(record.Domain) > domainWidth {
			domainWidth = len(record.Domain)
		}
	}

	header := fmt.Sprintf("%-*s  %-15s  %-16s  %s", domainWidth, "domain", "classification", "price", "links")
	b.WriteString(t.style(styleHeader, header))
	b.WriteString("\n")

	var available, registered, uncertain, unsupported int
	for _, record := range records {
		links := make([]string, 0, len(record.Links))
		for _, link := range record.Links {
			links = append(links, link.URL)
		}

		line := fmt.Sprintf("%-*s  %-15s  %-16s  %s",
			domainWidth,
			record.Domain,
			record.Classification,
			record.Price,
			strings.Join(links, " "),
		)
		if len(line) > t.width {
			line = line[:t.width]
		}

		switch record.Classification {
		case entity.ClassificationAvailable:
			available++
			line = t.style(styleAvailable, line)
		case entity.ClassificationRegistered:
			registered++
			line = t.style(styleRegistered, line)
		case entity.ClassificationUncertain:
			uncertain++
			line = t.style(styleUncertain, line)
		case entity.ClassificationUnsupportedTLD:
			unsupported++
			line = t.style(styleUnsupported, line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d checked: %s available, %s registered, %s uncertain, %s unsupported\n",
		len(records),
		t.style(styleAvailable, fmt.Sprintf("%d", available)),
		t.style(styleRegistered, fmt.Sprintf("%d", registered)),
		t.style(styleUncertain, fmt.Sprintf("%d", uncertain)),
		t.style(styleUnsupported, fmt.Sprintf("%d", unsupported)),
	))

	return b.String()
}

func (t *Table) style(s lipgloss.Style, text string) string {
	if t.noColor {
		return text
	}
	return s.Render(text)
}
