package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dayboard/internal/timeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "move TASK START END",
		Short: "Move an existing task to a new time range",
		Long: "Re-range a task to [START, END) given as HH:MM clock times. The task\n" +
			"is exempt from its own collision; everything else in its way is\n" +
			"trimmed, split, or dropped.",
		Args: cobra.ExactArgs(3),
		Run:  runMove,
	}

	RootCmd.AddCommand(cmd)
}

func runMove(cmd *cobra.Command, args []string) {
	startMin, err := timeline.ParseClock(args[1])
	if err != nil {
		exitErr("start time", err)
	}
	endMin, err := timeline.ParseClock(args[2])
	if err != nil {
		exitErr("end time", err)
	}

	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	eng, err := loadEngine(cmd.Context(), s)
	if err != nil {
		exitErr("load schedule", err)
	}

	task, err := eng.MoveTask(args[0], timeline.ToRow(startMin), timeline.ToRow(endMin))
	if err != nil {
		exitErr("move", err)
	}
	saveEmployee(cmd.Context(), s, eng, task.EmployeeID)

	if formatFlag == "text" {
		fmt.Printf("%s  %s  (%s)\n",
			timeline.RowRangeLabel(task.Start, task.End), task.Label, task.ID)
		return
	}
	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
