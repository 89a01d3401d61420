package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dayboard/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a schedule from JSON",
		Long:  "Replace the session with a snapshot read from stdin (the format produced by export).",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		exitErr("parse json", err)
	}

	s, err := openSession()
	if err != nil {
		exitErr("open schedule", err)
	}
	defer s.Close()

	if err := s.Import(cmd.Context(), &snap); err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"employees":%d,"tasks":%d}`+"\n", len(snap.Employees), len(snap.Tasks))
}
