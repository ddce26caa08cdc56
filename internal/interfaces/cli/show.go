package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lite-lake/simply-dns/internal/simply"
)

var recordsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one record in detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsShow(cmd)
	},
}

func init() {
	recordsCmd.AddCommand(recordsShowCmd)
	recordsShowCmd.Flags().StringVarP(&recordsDomain, "domain", "d", "", "Domain the record belongs to")
	recordsShowCmd.Flags().Int64Var(&recordsID, "id", 0, "Record id")
}

func runRecordsShow(cmd *cobra.Command) error {
	if recordsDomain == "" {
		return fmt.Errorf("--domain is required")
	}
	if recordsID == 0 {
		return fmt.Errorf("--id is required")
	}
	cfg, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	api, zone, err := resolveRecordAPI(cfg, recordsDomain)
	if err != nil {
		return err
	}

	records, err := api.ListRecords(cmd.Context(), zone.Domain)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ID == simply.RecordID(recordsID) {
			renderRecord(os.Stdout, zone.Domain, rec)
			return nil
		}
	}
	return fmt.Errorf("record %d not found in %s", recordsID, zone.Domain)
}

// renderRecord prints one record as label/value lines. Priority and comment
// only appear when the service reported them.
func renderRecord(w io.Writer, domainName string, rec simply.Record) {
	rows := []struct {
		label string
		value string
	}{
		{"record id", rec.ID.String()},
		{"domain", domainName},
		{"type", rec.Type},
		{"name", rec.Name},
		{"data", rec.Data},
		{"ttl", strconv.Itoa(rec.TTL)},
	}
	if rec.Priority != nil {
		rows = append(rows, struct{ label, value string }{"priority", strconv.Itoa(*rec.Priority)})
	}
	if rec.Comment != "" {
		rows = append(rows, struct{ label, value string }{"comment", rec.Comment})
	}

	caser := cases.Title(language.English)
	for _, row := range rows {
		fmt.Fprintf(w, "%-11s %s\n", caser.String(row.label)+":", row.value)
	}
}
