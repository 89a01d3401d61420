package cli

import (
	"os"

	"github.com/spf13/cobra"

	"dayboard/internal/grid"
)

func init() {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the day as a colored grid",
		Run:   runGrid,
	}

	RootCmd.AddCommand(cmd)
}

func runGrid(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	roster, err := s.Roster(cmd.Context())
	if err != nil {
		exitErr("roster", err)
	}

	eng, err := loadEngine(cmd.Context(), s)
	if err != nil {
		exitErr("load schedule", err)
	}

	grid.Render(os.Stdout, roster, eng.TasksByEmployee)
}
