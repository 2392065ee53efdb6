package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/maintdispatch/infra/store"
)

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the monitored machines",
	RunE:  runMachines,
}

func init() {
	rootCmd.AddCommand(machinesCmd)
}

func runMachines(cmd *cobra.Command, args []string) error {
	st := store.NewSampleStore()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tNEXT MAINTENANCE"); err != nil {
		return err
	}
	for _, m := range st.Machines() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Type, m.Status, m.NextMaintenance.Format("2006-01-02")); err != nil {
			return err
		}
	}
	return w.Flush()
}
