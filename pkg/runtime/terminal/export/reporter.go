package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/export"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
)

type TableConfig struct {
	IDWidth          int
	NameWidth        int
	CategoryWidth    int
	LocationWidth    int
	DateWidth        int
	DescriptionWidth int
	FavoriteWidth    int
	UsersWidth       int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:          4,
		NameWidth:        24,
		CategoryWidth:    16,
		LocationWidth:    18,
		DateWidth:        11,
		DescriptionWidth: 28,
		FavoriteWidth:    8,
		UsersWidth:       24,
	}
}

// Reporter renders the current report as an on-screen table with a status
// line, serving the cached rows exactly as the file renderers do.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *Reporter) Handle(flt domain.ReportFilter, rows []domain.ReportRow) error {
	widths := []int{
		r.config.IDWidth,
		r.config.NameWidth,
		r.config.CategoryWidth,
		r.config.LocationWidth,
		r.config.DateWidth,
		r.config.DescriptionWidth,
		r.config.FavoriteWidth,
		r.config.UsersWidth,
	}

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			var sb strings.Builder
			for i, cell := range cells {
				if len(cell) > widths[i] {
					cell = cell[:widths[i]]
				}
				fmt.Fprintf(&sb, "| %-*s ", widths[i], cell)
			}
			sb.WriteString("|")
			return sb.String()
		},
		"separator": func() string {
			var sb strings.Builder
			for _, w := range widths {
				sb.WriteString("+")
				sb.WriteString(strings.Repeat("-", w+2))
			}
			sb.WriteString("+")
			return sb.String()
		},
	}

	tmpl := `
{{.Title}}

Report contains {{len .Rows}} records{{with .Filters}} ({{.}}){{end}}

{{separator}}
{{formatRow .Headers}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Title   string
		Filters string
		Headers []string
		Rows    [][]string
	}{
		Title:   export.Title(flt),
		Filters: activeFilters(flt),
		Headers: export.Headers(flt.Mode),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, []string{
			fmt.Sprintf("%d", row.EventID),
			row.Name,
			row.Category,
			row.Location,
			row.Date,
			row.Description,
			row.Favorite,
			row.Users,
		})
	}

	return t.Execute(r.writer, data)
}

func activeFilters(flt domain.ReportFilter) string {
	var parts []string
	if flt.Category != "" {
		parts = append(parts, fmt.Sprintf("Category: %s", flt.Category))
	}
	if flt.User != "" {
		parts = append(parts, fmt.Sprintf("User: %s", flt.User))
	}
	return strings.Join(parts, ", ")
}
