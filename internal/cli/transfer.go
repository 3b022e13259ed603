package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/export"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk import a JSON array of entries; - reads stdin.",
		Example: `
staylog import --user alice staylog-export-2025-06-12.json
cat backup.json | staylog import --user alice -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			payload, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			res, err := e.entries.Import(cmd.Context(), userID, payload)
			if err != nil {
				return err
			}
			renderImport(cmd.OutOrStdout(), res)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every entry to a file as json, csv, xlsx or ics.",
		Example: `
staylog export --user alice
staylog export --user alice --format ics --out -
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			entries, err := e.entries.Export(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if out == "-" {
				return export.Write(cmd.OutOrStdout(), f, entries)
			}
			if out == "" {
				out = f.FileName(exportDay())
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.Write(file, f, entries); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d entries to %s\n", len(entries), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv, xlsx or ics")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout; defaults to staylog-export-DATE.EXT")
	topLevel.AddCommand(cmd)
}

// exportDay is the date an export file is named after.
var exportDay = func() time.Time { return domain.Day(time.Now()) }

// readInput reads the named file, or stdin for "-".
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
