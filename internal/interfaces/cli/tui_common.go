package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbletea"

	"github.com/lite-lake/simply-dns/internal/domain/contract"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/infrastructure/persistence"
	"github.com/lite-lake/simply-dns/internal/simply"
)

type configLoadedMsg struct {
	cfg *entity.Config
	err error
}

type recordsLoadedMsg struct {
	domain  string
	records []simply.Record
	err     error
}

type spinnerTickMsg struct{}

func tickSpinner() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func loadConfigCmd(configDir, baseURL string) tea.Cmd {
	return func() tea.Msg {
		loader := persistence.NewConfigLoader(configDir)
		cfg, err := loader.Load(context.Background())
		if err != nil {
			return configLoadedMsg{err: err}
		}
		if err := loader.Validate(cfg); err != nil {
			return configLoadedMsg{err: err}
		}
		overrideBaseURL(cfg, baseURL)
		return configLoadedMsg{cfg: cfg}
	}
}

func loadRecordsCmd(api contract.RecordAPI, domainName string) tea.Cmd {
	return func() tea.Msg {
		records, err := api.ListRecords(context.Background(), domainName)
		return recordsLoadedMsg{domain: domainName, records: records, err: err}
	}
}
