package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func (m Model) View() string {
	if m.Loading {
		return m.renderLoadingView()
	}
	var content strings.Builder
	content.WriteString(m.renderHeader())
	switch m.ViewState {
	case ViewStateZones:
		content.WriteString(m.renderZones())
	case ViewStateRecords:
		content.WriteString(m.renderRecords())
	case ViewStateDetail:
		content.WriteString(m.renderDetail())
	case ViewStatePlan:
		content.WriteString(m.renderPlanPreview())
	}
	content.WriteString(m.renderHelpLine())
	return BaseStyle.Render(content.String())
}

func (m Model) renderLoadingView() string {
	var content strings.Builder
	content.WriteString(TitleStyle.Render("Simply DNS"))
	content.WriteString("\n\n")

	spinner := SpinnerFrames[m.Spinner]
	content.WriteString(LoadingOverlayStyle.Render(fmt.Sprintf("  %s %s", spinner, m.LoadingMessage)))
	content.WriteString("\n\n")
	content.WriteString(HelpStyle.Render("  Ctrl+C to cancel"))
	return BaseStyle.Render(content.String())
}

func (m Model) renderHeader() string {
	var header strings.Builder
	header.WriteString(TitleStyle.Render("Simply DNS"))
	if zone := m.currentZone(); zone != nil && m.ViewState != ViewStateZones {
		header.WriteString(" ")
		header.WriteString(ZoneStyle.Render(fmt.Sprintf("[%s]", zone.Domain)))
	}
	header.WriteString("\n")
	return header.String()
}

func (m Model) renderZones() string {
	var content strings.Builder
	content.WriteString("\n")
	if m.ErrorMessage != "" {
		content.WriteString(ChangeDeleteStyle.Render("Error: " + m.ErrorMessage))
		content.WriteString("\n\n")
	}

	zones := m.zones()
	if len(zones) == 0 {
		content.WriteString("No zones configured.\n")
		return content.String()
	}
	for i, zone := range zones {
		cursor := "  "
		if i == m.ZoneIndex {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-30s account: %s, records: %d", cursor, zone.Domain, zone.Account, len(zone.Records))
		if zone.Prune {
			line += ", prune"
		}
		if i == m.ZoneIndex {
			line = SelectedStyle.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	return content.String()
}

func (m Model) renderRecords() string {
	availableHeight := m.Height - 8
	if availableHeight < 5 {
		availableHeight = 5
	}
	if m.ErrorMessage != "" {
		availableHeight -= 2
		if availableHeight < 3 {
			availableHeight = 3
		}
	}

	var content strings.Builder
	content.WriteString("\n")
	if m.ErrorMessage != "" {
		content.WriteString(ChangeDeleteStyle.Render("Error: " + m.ErrorMessage))
		content.WriteString("\n\n")
	}
	content.WriteString(HelpStyle.Render(fmt.Sprintf("  %-8s %-6s %-24s %6s %5s  %s", "ID", "TYPE", "NAME", "TTL", "PRIO", "DATA")))
	content.WriteString("\n")

	if len(m.Records) == 0 {
		content.WriteString("  (no records)\n")
		return content.String()
	}

	lines := make([]string, 0, len(m.Records))
	for i, rec := range m.Records {
		cursor := "  "
		if i == m.RecordIndex {
			cursor = "> "
		}
		prio := "-"
		if rec.Priority != nil {
			prio = strconv.Itoa(*rec.Priority)
		}
		line := fmt.Sprintf("%s%-8s %-6s %-24s %6d %5s  %s", cursor, rec.ID, rec.Type, rec.Name, rec.TTL, prio, rec.Data)
		if i == m.RecordIndex {
			line = SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	viewport := NewViewport(m.RecordIndex, len(lines), availableHeight)
	for i := viewport.VisibleStart(); i < viewport.VisibleEnd() && i < len(lines); i++ {
		content.WriteString(lines[i])
		content.WriteString("\n")
	}
	if viewport.TotalRows > viewport.VisibleRows {
		content.WriteString("\n")
		content.WriteString(viewport.RenderScrollIndicator())
	}
	return content.String()
}

func (m Model) renderDetail() string {
	var content strings.Builder
	content.WriteString("\n")
	if m.RecordIndex < 0 || m.RecordIndex >= len(m.Records) {
		content.WriteString("  (no record selected)\n")
		return content.String()
	}
	domainName := ""
	if zone := m.currentZone(); zone != nil {
		domainName = zone.Domain
	}
	renderRecord(&content, domainName, m.Records[m.RecordIndex])
	return content.String()
}

func (m Model) renderPlanPreview() string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, TitleStyle.Render("Pending Changes"))
	lines = append(lines, "")
	if m.PlanResult == nil || len(m.PlanResult.Changes()) == 0 {
		lines = append(lines, "No changes detected.")
	} else {
		for _, ch := range m.PlanResult.Changes() {
			prefix, style := FormatChangeType(ch.Type())
			lines = append(lines, style.Render(fmt.Sprintf("%s %s", prefix, ch.Key())))
			for _, action := range ch.Actions() {
				lines = append(lines, HelpStyle.Render("    - "+action))
			}
		}
		lines = append(lines, "")
		lines = append(lines, HelpStyle.Render("Apply with: simplydns sync plan && simplydns sync apply"))
	}

	availableHeight := m.Height - 6
	if availableHeight < 5 {
		availableHeight = 5
	}

	viewport := NewViewport(0, len(lines), availableHeight)
	var content strings.Builder
	for i := viewport.VisibleStart(); i < viewport.VisibleEnd() && i < len(lines); i++ {
		content.WriteString(lines[i])
		content.WriteString("\n")
	}
	if viewport.TotalRows > viewport.VisibleRows {
		content.WriteString("\n")
		content.WriteString(viewport.RenderSimpleScrollIndicator())
	}
	return content.String()
}

func (m Model) renderHelpLine() string {
	switch m.ViewState {
	case ViewStateZones:
		return "\n" + HelpZones()
	case ViewStateRecords:
		return "\n" + HelpRecords()
	case ViewStateDetail:
		return "\n" + HelpDetail()
	case ViewStatePlan:
		return "\n" + HelpPlanPreview()
	}
	return ""
}
