package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm TASK",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	eng, err := loadEngine(cmd.Context(), s)
	if err != nil {
		exitErr("load schedule", err)
	}

	task, ok := eng.Store().TaskByID(args[0])
	if !ok {
		exitErr("rm", fmt.Errorf("task not found: %s", args[0]))
	}
	if err := eng.RemoveTask(args[0]); err != nil {
		exitErr("rm", err)
	}
	saveEmployee(cmd.Context(), s, eng, task.EmployeeID)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", args[0])
}
