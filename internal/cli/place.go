package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dayboard/internal/timeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "place EMPLOYEE TIME KIND",
		Short: "Place a task on the grid",
		Long: "Place a single-slot task of the given kind at TIME (HH:MM) for an\n" +
			"employee (id or name). Whatever the slot lands on is trimmed, split,\n" +
			"or dropped; adjacent same-kind blocks merge unless the kind is\n" +
			"tour-like.",
		Args: cobra.ExactArgs(3),
		Run:  runPlace,
	}

	RootCmd.AddCommand(cmd)
}

func runPlace(cmd *cobra.Command, args []string) {
	kind := parseKind(args[2])

	minutes, err := timeline.ParseClock(args[1])
	if err != nil {
		exitErr("time", err)
	}
	row := timeline.ToRow(minutes)

	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	emp, err := s.EmployeeByRef(cmd.Context(), args[0])
	if err != nil {
		exitErr("employee", err)
	}

	eng, err := loadEngine(cmd.Context(), s)
	if err != nil {
		exitErr("load schedule", err)
	}

	task, err := eng.PlaceTask(emp.ID, row, kind)
	if err != nil {
		exitErr("place", err)
	}
	saveEmployee(cmd.Context(), s, eng, emp.ID)

	if formatFlag == "text" {
		fmt.Printf("%s  %s  %s  (%s)\n",
			emp.Name, timeline.RowRangeLabel(task.Start, task.End), task.Label, task.ID)
		return
	}
	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
