package cli

import "strings"

const (
	KeyQuit    = "q"
	KeyEscape  = "esc"
	KeyUp      = "up"
	KeyUpAlt   = "k"
	KeyDown    = "down"
	KeyDownAlt = "j"
	KeyEnter   = "enter"
	KeyRefresh = "r"
	KeyPlan    = "p"
)

type HelpItem struct {
	Key  string
	Desc string
}

func BuildHelpText(items []HelpItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Key + " " + item.Desc
	}
	return HelpStyle.Render("  " + strings.Join(parts, "  "))
}

var (
	HelpNav     = HelpItem{Key: "↑/↓", Desc: "navigate"}
	HelpEsc     = HelpItem{Key: "Esc", Desc: "back"}
	HelpQuit    = HelpItem{Key: "q", Desc: "quit"}
	HelpRefresh = HelpItem{Key: "r", Desc: "refresh"}
)

func HelpZones() string {
	return BuildHelpText([]HelpItem{
		HelpNav,
		{Key: "Enter", Desc: "open"},
		HelpRefresh,
		HelpQuit,
	})
}

func HelpRecords() string {
	return BuildHelpText([]HelpItem{
		HelpNav,
		{Key: "Enter", Desc: "detail"},
		HelpRefresh,
		{Key: "p", Desc: "plan"},
		HelpEsc,
		HelpQuit,
	})
}

func HelpDetail() string {
	return BuildHelpText([]HelpItem{
		{Key: "Enter", Desc: "back"},
		HelpEsc,
		HelpQuit,
	})
}

func HelpPlanPreview() string {
	return BuildHelpText([]HelpItem{
		HelpEsc,
		HelpQuit,
	})
}
