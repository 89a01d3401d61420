package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dayboard/internal/model"
	"dayboard/internal/timeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list [EMPLOYEE]",
		Short: "List scheduled tasks",
		Long:  "List tasks sorted by start time, for one employee (id or name) or everyone.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runList,
	}

	cmd.Flags().String("kind", "", "Filter by task kind")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	kindFilter, _ := cmd.Flags().GetString("kind")

	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	roster, err := s.Roster(cmd.Context())
	if err != nil {
		exitErr("roster", err)
	}
	if len(args) == 1 {
		emp, err := s.EmployeeByRef(cmd.Context(), args[0])
		if err != nil {
			exitErr("employee", err)
		}
		roster = []model.Employee{*emp}
	}

	eng, err := loadEngine(cmd.Context(), s)
	if err != nil {
		exitErr("load schedule", err)
	}

	var tasks []model.Task
	for _, emp := range roster {
		for _, t := range eng.TasksByEmployee(emp.ID) {
			if kindFilter != "" && string(t.Kind) != kindFilter {
				continue
			}
			tasks = append(tasks, t)
		}
	}

	if formatFlag == "text" {
		byID := make(map[string]string, len(roster))
		for _, e := range roster {
			byID[e.ID] = e.Name
		}
		for _, t := range tasks {
			fmt.Printf("%-12s %s  %-14s (%s)\n",
				byID[t.EmployeeID], timeline.RowRangeLabel(t.Start, t.End), t.Label, t.ID)
		}
		return
	}

	b, _ := json.MarshalIndent(tasks, "", "  ")
	fmt.Println(string(b))
}
