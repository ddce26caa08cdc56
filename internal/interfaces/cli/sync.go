package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/simply-dns/internal/application/usecase"
	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
	"github.com/lite-lake/simply-dns/internal/infrastructure/state"
)

var (
	syncDomain string
	syncType   string
	syncName   string
	syncYes    bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync declared zones against the service",
	Long:  "Compare declared zone records with the service and apply the difference.",
}

var syncPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and save a change plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncPlan(cmd)
	},
}

var syncApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the saved change plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncApply(cmd)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.AddCommand(syncPlanCmd)
	syncPlanCmd.Flags().StringVarP(&syncDomain, "domain", "d", "", "Filter by domain")
	syncPlanCmd.Flags().StringVarP(&syncType, "type", "t", "", "Filter by record type")
	syncPlanCmd.Flags().StringVarP(&syncName, "name", "n", "", "Filter by record name")

	syncCmd.AddCommand(syncApplyCmd)
	syncApplyCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "Skip confirmation prompt")
}

func runSyncPlan(cmd *cobra.Command) error {
	u := syncUsecase()
	scope := valueobject.NewScopeWithValues(syncDomain, syncType, syncName)
	plan, err := u.Plan(cmd.Context(), scope)
	if err != nil {
		return err
	}

	if !plan.HasChanges() {
		fmt.Println("No changes detected.")
		return nil
	}

	fmt.Println("Record Change Plan:")
	fmt.Println("===================")
	displayChanges(os.Stdout, plan.Changes(), true)

	counts := plan.Counts()
	fmt.Printf("\nPlan: %d to create, %d to update, %d to delete.\n",
		counts[valueobject.ChangeTypeCreate], counts[valueobject.ChangeTypeUpdate], counts[valueobject.ChangeTypeDelete])
	fmt.Printf("Saved to %s. Run 'simplydns sync apply' to execute.\n", planPath())
	return nil
}

func runSyncApply(cmd *cobra.Command) error {
	store := state.NewPlanStore(planPath())
	plan, err := store.Load(cmd.Context())
	if errors.Is(err, domain.ErrPlanNotFound) {
		return fmt.Errorf("no saved plan; run 'simplydns sync plan' first")
	}
	if err != nil {
		return err
	}

	if !plan.HasChanges() {
		fmt.Println("No changes to apply.")
		return nil
	}

	fmt.Println("Record Changes:")
	displayChanges(os.Stdout, plan.Changes(), false)

	if !syncYes {
		if !Confirm("\nDo you want to apply these changes?", false) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	results, err := syncUsecase().Apply(cmd.Context(), plan)
	if errors.Is(err, domain.ErrPlanStale) {
		return fmt.Errorf("saved plan is stale, the configuration changed since it was computed; run 'simplydns sync plan' again")
	}
	if err != nil {
		return err
	}
	displaySyncResults(results)
	return nil
}

func displayChanges(w io.Writer, changes []*valueobject.Change, withActions bool) {
	for _, ch := range changes {
		var prefix string
		switch ch.Type() {
		case valueobject.ChangeTypeCreate:
			prefix = "+"
		case valueobject.ChangeTypeUpdate:
			prefix = "~"
		case valueobject.ChangeTypeDelete:
			prefix = "-"
		default:
			prefix = " "
		}
		fmt.Fprintf(w, "%s %s: %s\n", prefix, ch.Domain(), ch.Key())
		if !withActions {
			continue
		}
		for _, action := range ch.Actions() {
			fmt.Fprintf(w, "    - %s\n", action)
		}
	}
}

func displaySyncResults(results []*usecase.Result) {
	created, updated, deleted, failed := 0, 0, 0, 0
	for _, result := range results {
		label := fmt.Sprintf("%s: %s", result.Change.Domain(), result.Change.Key())
		if result.Err != nil {
			failed++
			fmt.Printf("✗ %s - %v\n", label, result.Err)
			continue
		}
		switch result.Change.Type() {
		case valueobject.ChangeTypeCreate:
			created++
		case valueobject.ChangeTypeUpdate:
			updated++
		case valueobject.ChangeTypeDelete:
			deleted++
		}
		fmt.Printf("✓ %s\n", label)
	}

	fmt.Printf("\nApplied: %d created, %d updated, %d deleted, %d failed\n", created, updated, deleted, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
