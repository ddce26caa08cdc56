package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lite-lake/simply-dns/internal/domain/service"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
)

var browseDomain string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse zones and records interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(browseDomain)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseDomain, "domain", "d", "", "Open this domain's records directly")
}

func runBrowse(domainName string) error {
	p := tea.NewProgram(NewModel(ConfigDir, BaseURL, domainName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case spinnerTickMsg:
		if !m.Loading {
			return m, nil
		}
		m.Spinner = (m.Spinner + 1) % len(SpinnerFrames)
		return m, tickSpinner()
	case configLoadedMsg:
		return m.handleConfigLoaded(msg)
	case recordsLoadedMsg:
		return m.handleRecordsLoaded(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case KeyQuit:
			return m, tea.Quit
		case KeyEscape:
			return m.handleEscape()
		case KeyUp, KeyUpAlt:
			return m.handleUp(), nil
		case KeyDown, KeyDownAlt:
			return m.handleDown(), nil
		case KeyEnter:
			return m.handleEnter()
		case KeyRefresh:
			return m.handleRefresh()
		case KeyPlan:
			return m.handlePlanKey(), nil
		}
	}
	return m, nil
}

func (m Model) handleConfigLoaded(msg configLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.err != nil {
		m.ErrorMessage = msg.err.Error()
		return m, nil
	}
	m.Config = msg.cfg
	m.ErrorMessage = ""
	if m.ZoneIndex >= len(msg.cfg.Zones) {
		m.ZoneIndex = 0
	}
	if m.initialDomain != "" {
		wanted := m.initialDomain
		m.initialDomain = ""
		for i := range msg.cfg.Zones {
			if strings.EqualFold(msg.cfg.Zones[i].Domain, wanted) {
				m.ZoneIndex = i
				return m.openZone()
			}
		}
		m.ErrorMessage = fmt.Sprintf("domain %s is not configured", wanted)
	}
	return m, nil
}

func (m Model) handleRecordsLoaded(msg recordsLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.err != nil {
		m.ErrorMessage = msg.err.Error()
		return m, nil
	}
	zone := m.currentZone()
	if zone == nil || !strings.EqualFold(zone.Domain, msg.domain) {
		// Response for a zone we already navigated away from.
		return m, nil
	}
	m.Records = msg.records
	m.RecordIndex = 0
	m.PlanResult = nil
	m.ErrorMessage = ""
	m.ViewState = ViewStateRecords
	return m, nil
}

func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.ViewState {
	case ViewStateDetail, ViewStatePlan:
		m.ViewState = ViewStateRecords
	case ViewStateRecords:
		m.ViewState = ViewStateZones
		m.ErrorMessage = ""
	default:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleUp() Model {
	switch m.ViewState {
	case ViewStateZones:
		if m.ZoneIndex > 0 {
			m.ZoneIndex--
		}
	case ViewStateRecords:
		if m.RecordIndex > 0 {
			m.RecordIndex--
		}
	}
	return m
}

func (m Model) handleDown() Model {
	switch m.ViewState {
	case ViewStateZones:
		if m.ZoneIndex < len(m.zones())-1 {
			m.ZoneIndex++
		}
	case ViewStateRecords:
		if m.RecordIndex < len(m.Records)-1 {
			m.RecordIndex++
		}
	}
	return m
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.ViewState {
	case ViewStateZones:
		if m.Loading || m.Config == nil {
			return m, nil
		}
		return m.openZone()
	case ViewStateRecords:
		if len(m.Records) > 0 {
			m.ViewState = ViewStateDetail
		}
	case ViewStateDetail, ViewStatePlan:
		m.ViewState = ViewStateRecords
	}
	return m, nil
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if m.Loading {
		return m, nil
	}
	switch m.ViewState {
	case ViewStateZones:
		m.Loading = true
		m.LoadingMessage = "Loading configuration..."
		m.Spinner = 0
		return m, tea.Batch(loadConfigCmd(m.ConfigDir, m.BaseURL), tickSpinner())
	case ViewStateRecords:
		zone := m.currentZone()
		if zone == nil || m.api == nil {
			return m, nil
		}
		m.Loading = true
		m.LoadingMessage = fmt.Sprintf("Refreshing records for %s...", zone.Domain)
		m.Spinner = 0
		return m, tea.Batch(loadRecordsCmd(m.api, zone.Domain), tickSpinner())
	}
	return m, nil
}

func (m Model) handlePlanKey() Model {
	if m.ViewState != ViewStateRecords || m.Config == nil {
		return m
	}
	zone := m.currentZone()
	if zone == nil {
		return m
	}
	scope := valueobject.NewScopeWithValues(zone.Domain, "", "")
	plan := valueobject.NewPlanWithScope(scope)
	service.NewDifferService().PlanZone(plan, zone, m.Records, scope)
	m.PlanResult = plan
	m.ViewState = ViewStatePlan
	return m
}

func (m Model) openZone() (tea.Model, tea.Cmd) {
	zone := m.currentZone()
	if zone == nil {
		return m, nil
	}
	api, _, err := m.resolveAPI(m.Config, zone.Domain)
	if err != nil {
		m.ErrorMessage = err.Error()
		return m, nil
	}
	m.api = api
	m.Loading = true
	m.LoadingMessage = fmt.Sprintf("Loading records for %s...", zone.Domain)
	m.Spinner = 0
	return m, tea.Batch(loadRecordsCmd(api, zone.Domain), tickSpinner())
}
