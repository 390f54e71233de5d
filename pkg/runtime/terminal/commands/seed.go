package commands

import (
	"fmt"
	"time"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/catalog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	store         storeFlags
	defaultDBPath string
}

func NewSeedCmd(defaultDBPath string) *cobra.Command {
	sc := &SeedCmd{defaultDBPath: defaultDBPath}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the catalog with sample data",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.store.profilePath, "profile", "", "Path to a profile file")
	cmd.Flags().StringVar(&sc.store.dbPath, "db", "", "Path to the catalog database")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	db, err := openDB(&sc.store, sc.defaultDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	categories, err := catalog.NewCategoryStore(db)
	if err != nil {
		return err
	}
	events, err := catalog.NewEventStore(db)
	if err != nil {
		return err
	}
	users, err := catalog.NewUserStore(db)
	if err != nil {
		return err
	}
	favorites, err := catalog.NewFavoriteStore(db)
	if err != nil {
		return err
	}

	confID, err := categories.Add(ctx, "Conferences", "Industry conferences and summits")
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	workshopID, err := categories.Add(ctx, "Workshops", "Hands-on sessions")
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	aliceID, err := users.Create(ctx, "alice", "alice", "alice-demo", "alice@example.com")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	bobID, err := users.Create(ctx, "bob", "bob", "bob-demo", "bob@example.com")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	today := time.Now()
	sample := []domain.Event{
		{Name: "Tech Summit", CategoryID: &confID, Location: "Main hall",
			Date: datePtr(today), Description: "Annual tech summit", Favorite: true},
		{Name: "Go Workshop", CategoryID: &workshopID, Location: "Room 2",
			Date: datePtr(today.AddDate(0, 0, 1)), Description: "Introductory Go session"},
		{Name: "Community Meetup", Location: "Cafe downstairs",
			Description: "Undated and uncategorized get-together"},
	}

	var eventIDs []int64
	for _, e := range sample {
		id, err := events.Add(ctx, e)
		if err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
		eventIDs = append(eventIDs, id)
	}

	if err := favorites.Add(ctx, aliceID, eventIDs[0]); err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}
	if err := favorites.Add(ctx, bobID, eventIDs[0]); err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}
	if err := favorites.Add(ctx, aliceID, eventIDs[1]); err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}

	logger.Info().
		Int("events", len(eventIDs)).
		Msg("sample data created")
	return nil
}

func datePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
