package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dayboard/internal/timeline"
)

func init() {
	staffCmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage the roster",
	}

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an employee",
		Args:  cobra.ExactArgs(1),
		Run:   runStaffAdd,
	}
	addCmd.Flags().String("start", "10:00", "Shift start (HH:MM)")
	addCmd.Flags().String("end", "16:30", "Shift end (HH:MM)")

	renameCmd := &cobra.Command{
		Use:   "rename EMPLOYEE NAME",
		Short: "Rename an employee",
		Args:  cobra.ExactArgs(2),
		Run:   runStaffRename,
	}

	rmCmd := &cobra.Command{
		Use:   "rm EMPLOYEE",
		Short: "Remove an employee and their tasks",
		Args:  cobra.ExactArgs(1),
		Run:   runStaffRm,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		Run:   runStaffList,
	}

	staffCmd.AddCommand(addCmd, renameCmd, rmCmd, listCmd)
	RootCmd.AddCommand(staffCmd)
}

func runStaffAdd(cmd *cobra.Command, args []string) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")

	startMin, err := timeline.ParseClock(startStr)
	if err != nil {
		exitErr("shift start", err)
	}
	endMin, err := timeline.ParseClock(endStr)
	if err != nil {
		exitErr("shift end", err)
	}

	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	emp, err := s.AddEmployee(cmd.Context(), args[0], timeline.ToRow(startMin), timeline.ToRow(endMin))
	if err != nil {
		exitErr("add employee", err)
	}

	b, _ := json.Marshal(emp)
	fmt.Println(string(b))
}

func runStaffRename(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	emp, err := s.EmployeeByRef(cmd.Context(), args[0])
	if err != nil {
		exitErr("employee", err)
	}
	if err := s.RenameEmployee(cmd.Context(), emp.ID, args[1]); err != nil {
		exitErr("rename", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"name":%q}`+"\n", emp.ID, args[1])
}

func runStaffRm(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	emp, err := s.EmployeeByRef(cmd.Context(), args[0])
	if err != nil {
		exitErr("employee", err)
	}
	if err := s.RemoveEmployee(cmd.Context(), emp.ID); err != nil {
		exitErr("remove employee", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", emp.ID)
}

func runStaffList(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	roster, err := s.Roster(cmd.Context())
	if err != nil {
		exitErr("roster", err)
	}

	if formatFlag == "text" {
		for _, e := range roster {
			fmt.Printf("%-12s %s  (%s)\n",
				e.Name, timeline.RowRangeLabel(e.ShiftStart, e.ShiftEnd), e.ID)
		}
		return
	}
	b, _ := json.MarshalIndent(roster, "", "  ")
	fmt.Println(string(b))
}
