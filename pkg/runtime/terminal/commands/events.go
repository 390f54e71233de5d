package commands

import (
	"fmt"
	"strings"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/adapters"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/catalog"
	"github.com/spf13/cobra"
)

type EventsCmd struct {
	store         storeFlags
	defaultDBPath string
}

func NewEventsCmd(defaultDBPath string) *cobra.Command {
	ec := &EventsCmd{defaultDBPath: defaultDBPath}
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List all catalog events",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.store.profilePath, "profile", "", "Path to a profile file")
	cmd.Flags().StringVar(&ec.store.dbPath, "db", "", "Path to the catalog database")

	return cmd
}

func (ec *EventsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := openDB(&ec.store, ec.defaultDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := catalog.NewEventStore(db)
	if err != nil {
		return err
	}

	rows, err := events.List(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d events\n", len(rows))
	for _, row := range rows {
		e := adapters.MapStoreEventRowToDomainEvent(row)

		var details []string
		if e.Category != "" {
			details = append(details, e.Category)
		}
		if e.Date != nil {
			details = append(details, e.Date.Format(dateLayout))
		}
		if e.Location != "" {
			details = append(details, e.Location)
		}
		marker := " "
		if e.Favorite {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %4d  %-30s %s\n", marker, e.ID, e.Name, strings.Join(details, ", "))
	}
	return nil
}
