package commands

import (
	termexport "github.com/143WaysToLooseUrSelf/eventdesign/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	store         storeFlags
	filter        filterFlags
	defaultDBPath string
	reporter      *termexport.Reporter
}

func NewReportCmd(defaultDBPath string, reporter *termexport.Reporter) *cobra.Command {
	rc := &ReportCmd{defaultDBPath: defaultDBPath, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report and print it",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.store.profilePath, "profile", "", "Path to a profile file")
	cmd.Flags().StringVar(&rc.store.dbPath, "db", "", "Path to the catalog database")
	rc.filter.register(cmd)

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	flt, err := rc.filter.parse()
	if err != nil {
		return err
	}

	db, err := openDB(&rc.store, rc.defaultDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := newSession(db)
	if err != nil {
		return err
	}

	if _, err := session.Generate(ctx, flt); err != nil {
		return err
	}

	return rc.reporter.Handle(session.CurrentFilter(), session.CurrentRows())
}
