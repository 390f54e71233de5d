package commands

import (
	"fmt"
	"strings"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/export"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	store         storeFlags
	filter        filterFlags
	defaultDBPath string
	format        string
	out           string
}

func NewExportCmd(defaultDBPath string) *cobra.Command {
	ec := &ExportCmd{defaultDBPath: defaultDBPath}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a report and export it to a file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.store.profilePath, "profile", "", "Path to a profile file")
	cmd.Flags().StringVar(&ec.store.dbPath, "db", "", "Path to the catalog database")
	cmd.Flags().StringVar(&ec.format, "format", "xlsx", "Export format: xlsx or pdf")
	cmd.Flags().StringVar(&ec.out, "out", "", "Destination path (default report_<mode>_<from>_<to>.<format>)")
	ec.filter.register(cmd)

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	flt, err := ec.filter.parse()
	if err != nil {
		return err
	}

	if ec.format != "xlsx" && ec.format != "pdf" {
		return fmt.Errorf("unknown export format %q", ec.format)
	}

	db, err := openDB(&ec.store, ec.defaultDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := newSession(db)
	if err != nil {
		return err
	}

	count, err := session.Generate(ctx, flt)
	if err != nil {
		return err
	}

	path := ec.out
	if path == "" {
		path = defaultFilename(flt, ec.format)
	}

	switch ec.format {
	case "pdf":
		err = export.NewDocumentRenderer().RenderFile(session.CurrentFilter(), session.CurrentRows(), path)
	default:
		err = export.NewWorkbookRenderer().RenderFile(session.CurrentFilter(), session.CurrentRows(), path)
	}
	if err != nil {
		return err
	}

	logger.Info().
		Int("rows", count).
		Str("path", path).
		Msg("report exported")
	return nil
}

func defaultFilename(flt domain.ReportFilter, format string) string {
	parts := []string{"report", string(flt.Mode)}
	if from, to, ok := flt.DateRange(); ok {
		parts = append(parts, from.Format(dateLayout), to.Format(dateLayout))
	}
	return strings.Join(parts, "_") + "." + format
}
