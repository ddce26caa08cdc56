package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lite-lake/simply-dns/internal/simply"
)

var (
	recordsDomain   string
	recordsType     string
	recordsName     string
	recordsData     string
	recordsTTL      int
	recordsPriority int
	recordsComment  string
	recordsID       int64
	recordsYes      bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage DNS records directly",
	Long:  "List, create, update and delete DNS records through the Simply.com API.",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records of a domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsList(cmd)
	},
}

var recordsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsAdd(cmd)
	},
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a record by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsUpdate(cmd)
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a record by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsDelete(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.AddCommand(recordsListCmd)
	recordsListCmd.Flags().StringVarP(&recordsDomain, "domain", "d", "", "Domain the records belong to")
	recordsListCmd.Flags().StringVarP(&recordsType, "type", "t", "", "Filter by record type")

	recordsCmd.AddCommand(recordsAddCmd)
	recordsAddCmd.Flags().StringVarP(&recordsDomain, "domain", "d", "", "Domain the record belongs to")
	recordsAddCmd.Flags().StringVarP(&recordsType, "type", "t", "", "Record type (A, AAAA, CNAME, MX, TXT, ...)")
	recordsAddCmd.Flags().StringVarP(&recordsName, "name", "n", "", "Record name ('@' for the apex)")
	recordsAddCmd.Flags().StringVar(&recordsData, "data", "", "Record data")
	recordsAddCmd.Flags().IntVar(&recordsTTL, "ttl", 0, "Record TTL in seconds")
	recordsAddCmd.Flags().IntVar(&recordsPriority, "priority", 0, "Record priority (MX, SRV)")
	recordsAddCmd.Flags().StringVar(&recordsComment, "comment", "", "Record comment")

	recordsCmd.AddCommand(recordsUpdateCmd)
	recordsUpdateCmd.Flags().StringVarP(&recordsDomain, "domain", "d", "", "Domain the record belongs to")
	recordsUpdateCmd.Flags().Int64Var(&recordsID, "id", 0, "Record id")
	recordsUpdateCmd.Flags().StringVarP(&recordsType, "type", "t", "", "Record type")
	recordsUpdateCmd.Flags().StringVarP(&recordsName, "name", "n", "", "Record name")
	recordsUpdateCmd.Flags().StringVar(&recordsData, "data", "", "Record data")
	recordsUpdateCmd.Flags().IntVar(&recordsTTL, "ttl", 0, "Record TTL in seconds")
	recordsUpdateCmd.Flags().IntVar(&recordsPriority, "priority", 0, "Record priority (MX, SRV)")

	recordsCmd.AddCommand(recordsDeleteCmd)
	recordsDeleteCmd.Flags().StringVarP(&recordsDomain, "domain", "d", "", "Domain the record belongs to")
	recordsDeleteCmd.Flags().Int64Var(&recordsID, "id", 0, "Record id")
	recordsDeleteCmd.Flags().BoolVarP(&recordsYes, "yes", "y", false, "Skip confirmation prompt")
}

func runRecordsList(cmd *cobra.Command) error {
	if recordsDomain == "" {
		return fmt.Errorf("--domain is required")
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
	if recordsType != "" {
		filtered := records[:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Type, recordsType) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	fmt.Printf("Records for %s:\n", zone.Domain)
	if len(records) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, rec := range records {
		prioInfo := ""
		if rec.Priority != nil {
			prioInfo = fmt.Sprintf(", prio: %d", *rec.Priority)
		}
		fmt.Printf("  %-8s %-6s %-24s -> %-28s (ttl: %d%s)\n", rec.ID, rec.Type, rec.Name, rec.Data, rec.TTL, prioInfo)
	}
	return nil
}

func runRecordsAdd(cmd *cobra.Command) error {
	if recordsDomain == "" {
		return fmt.Errorf("--domain is required")
	}
	if recordsType == "" || recordsName == "" || recordsData == "" {
		return fmt.Errorf("--type, --name and --data are required")
	}
	cfg, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	api, zone, err := resolveRecordAPI(cfg, recordsDomain)
	if err != nil {
		return err
	}

	request := simply.CreateRequest{
		Type:    recordsType,
		Name:    recordsName,
		Data:    recordsData,
		Comment: recordsComment,
	}
	if cmd.Flags().Changed("ttl") {
		request.TTL = &recordsTTL
	}
	if cmd.Flags().Changed("priority") {
		request.Priority = &recordsPriority
	}

	ids, err := api.CreateRecord(cmd.Context(), zone.Domain, request)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Printf("✓ created %s record %s (no id returned)\n", strings.ToUpper(recordsType), recordsName)
		return nil
	}
	for _, id := range ids {
		fmt.Printf("✓ created %s record %s with id %s\n", strings.ToUpper(recordsType), recordsName, id)
	}
	return nil
}

func runRecordsUpdate(cmd *cobra.Command) error {
	if recordsDomain == "" {
		return fmt.Errorf("--domain is required")
	}
	if recordsID == 0 {
		return fmt.Errorf("--id is required")
	}
	if recordsType == "" || recordsName == "" || recordsData == "" {
		return fmt.Errorf("--type, --name and --data are required")
	}
	cfg, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	api, zone, err := resolveRecordAPI(cfg, recordsDomain)
	if err != nil {
		return err
	}

	request := simply.UpdateRequest{
		Type: recordsType,
		Name: recordsName,
		Data: recordsData,
	}
	if cmd.Flags().Changed("ttl") {
		request.TTL = &recordsTTL
	}
	if cmd.Flags().Changed("priority") {
		request.Priority = &recordsPriority
	}

	if err := api.UpdateRecord(cmd.Context(), zone.Domain, simply.RecordID(recordsID), request); err != nil {
		return err
	}
	fmt.Printf("✓ updated record %d\n", recordsID)
	return nil
}

func runRecordsDelete(cmd *cobra.Command) error {
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

	if !recordsYes {
		if !Confirm(fmt.Sprintf("Delete record %d from %s?", recordsID, zone.Domain), false) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := api.DeleteRecord(cmd.Context(), zone.Domain, simply.RecordID(recordsID)); err != nil {
		return err
	}
	fmt.Printf("✓ deleted record %d\n", recordsID)
	return nil
}
