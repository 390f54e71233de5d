package commands

import (
	"fmt"
	"time"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// filterFlags collects the report request flags shared by the report and
// export commands.
type filterFlags struct {
	mode     string
	from     string
	to       string
	category string
	user     string
	sort     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "all", "Report mode: all, category or user")
	cmd.Flags().StringVar(&f.from, "from", "", "Date range lower bound (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "Date range upper bound (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.category, "category", "", "Restrict to one category (empty = all)")
	cmd.Flags().StringVar(&f.user, "user", "", "Restrict to one favoriting user (empty = all)")
	cmd.Flags().StringVar(&f.sort, "sort", "date_desc", "Sort key: date_desc, date_asc, name_asc or name_desc")
}

func (f *filterFlags) parse() (domain.ReportFilter, error) {
	flt := domain.ReportFilter{
		Category: f.category,
		User:     f.user,
	}

	switch domain.ReportMode(f.mode) {
	case domain.ModeAll, domain.ModeByCategory, domain.ModeByUser:
		flt.Mode = domain.ReportMode(f.mode)
	default:
		return flt, fmt.Errorf("unknown report mode %q", f.mode)
	}

	switch domain.SortKey(f.sort) {
	case domain.SortDateDesc, domain.SortDateAsc, domain.SortNameAsc, domain.SortNameDesc:
		flt.Sort = domain.SortKey(f.sort)
	default:
		return flt, fmt.Errorf("unknown sort key %q", f.sort)
	}

	var err error
	if flt.From, err = parseDate(f.from); err != nil {
		return flt, fmt.Errorf("invalid --from: %w", err)
	}
	if flt.To, err = parseDate(f.to); err != nil {
		return flt, fmt.Errorf("invalid --to: %w", err)
	}

	return flt, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
