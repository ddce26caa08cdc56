package cli

import (
	"github.com/charmbracelet/bubbletea"

	"github.com/lite-lake/simply-dns/internal/domain/contract"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
	"github.com/lite-lake/simply-dns/internal/simply"
)

type ViewState int

const (
	ViewStateZones ViewState = iota
	ViewStateRecords
	ViewStateDetail
	ViewStatePlan
)

// Model is the record browser. Zones come from the local configuration,
// records from the service; the plan view is a local preview and never
// writes anything.
type Model struct {
	ViewState ViewState
	ConfigDir string
	BaseURL   string

	Config      *entity.Config
	ZoneIndex   int
	Records     []simply.Record
	RecordIndex int
	PlanResult  *valueobject.Plan

	Loading        bool
	LoadingMessage string
	Spinner        int

	Width        int
	Height       int
	ErrorMessage string

	initialDomain string
	api           contract.RecordAPI
	resolveAPI    func(cfg *entity.Config, domainName string) (contract.RecordAPI, *entity.Zone, error)
}

func NewModel(configDir, baseURL, domainName string) Model {
	return Model{
		ViewState:      ViewStateZones,
		ConfigDir:      configDir,
		BaseURL:        baseURL,
		Loading:        true,
		LoadingMessage: "Loading configuration...",
		Width:          80,
		Height:         24,
		initialDomain:  domainName,
		resolveAPI:     resolveRecordAPI,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.ConfigDir, m.BaseURL), tickSpinner())
}

func (m Model) zones() []entity.Zone {
	if m.Config == nil {
		return nil
	}
	return m.Config.Zones
}

func (m Model) currentZone() *entity.Zone {
	zones := m.zones()
	if m.ZoneIndex < 0 || m.ZoneIndex >= len(zones) {
		return nil
	}
	return &zones[m.ZoneIndex]
}
