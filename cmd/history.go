package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/withlaunch/bluectl/internal/history"
)

var (
	historyLimit  int
	historyOutput string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List deployments recorded in the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := history.DefaultPath()
		if err != nil {
			return err
		}

		store := history.NewStore(&history.Options{Path: path})
		if err := store.Open(); err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(historyLimit)
		if err != nil {
			return err
		}

		switch historyOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		case "table":
			printHistoryTable(records)
			return nil
		default:
			return fmt.Errorf("unknown output format: %s", historyOutput)
		}
	},
}

func printHistoryTable(records []history.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tCLUSTER\tSERVICE\tDEPLOYMENT\tTASK DEFINITION")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.CreatedAt.Local().Format(time.RFC3339),
			rec.Cluster,
			rec.Service,
			rec.DeploymentID,
			rec.TaskDefinitionArn)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of records to show")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "table", "output format (table|json)")
}
