package report

import (
	"strings"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// Sentinel dates stand in for NULL event dates during ordering, so undated
// events settle predictably to one end instead of being ordered arbitrarily.
const (
	maxDateSentinel = "9999-12-31"
	minDateSentinel = "0000-01-01"
)

// Compose builds the aggregate report query for the given filter and returns
// the statement text plus its bound parameters. Events are joined left with
// categories (to keep uncategorized events), favorites (to keep events nobody
// favorited) and users through favorites, then grouped per event with all
// matched usernames collapsed into one comma-separated string.
//
// Predicates are additive and independent: each filter field contributes zero
// or one condition. Every user-supplied scalar is passed as a bound parameter,
// never interpolated into the text.
func Compose(flt domain.ReportFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			e.event_id,
			e.event_name,
			c.category_name,
			e.location,
			e.event_date,
			e.description,
			e.favorite,
			GROUP_CONCAT(DISTINCT u.user_name) AS user_names
		FROM events e
		LEFT JOIN categories c ON e.category = c.category_id
		LEFT JOIN favorites f ON e.event_id = f.event_id
		LEFT JOIN users u ON f.user_id = u.user_id`)

	var conditions []string
	var args []any

	// Events with no date always survive a date filter.
	if from, to, ok := flt.DateRange(); ok {
		conditions = append(conditions, "(e.event_date BETWEEN ? AND ? OR e.event_date IS NULL)")
		args = append(args, from.Format(dateLayout), to.Format(dateLayout))
	}

	if flt.Category != "" {
		conditions = append(conditions, "c.category_name = ?")
		args = append(args, flt.Category)
	}

	if flt.User != "" {
		switch flt.Mode {
		case domain.ModeByUser:
			conditions = append(conditions, "u.user_name = ?")
			args = append(args, flt.User)
		case domain.ModeAll:
			// The combined view keeps non-favorited events visible even with
			// a user filter active; ByUser stays a strict match.
			conditions = append(conditions, "(u.user_name = ? OR u.user_name IS NULL)")
			args = append(args, flt.User)
		}
	}

	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString("\n\t\tGROUP BY e.event_id, e.event_name, c.category_name, e.location, e.event_date, e.description, e.favorite")
	sb.WriteString("\n\t\tORDER BY ")
	sb.WriteString(orderClause(flt.Sort))

	return sb.String(), args
}

func orderClause(sort domain.SortKey) string {
	switch sort {
	case domain.SortDateAsc:
		return "IFNULL(e.event_date, '" + minDateSentinel + "') ASC"
	case domain.SortNameAsc:
		return "e.event_name ASC"
	case domain.SortNameDesc:
		return "e.event_name DESC"
	default:
		return "IFNULL(e.event_date, '" + maxDateSentinel + "') DESC"
	}
}
