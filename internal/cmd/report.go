package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezerfernandes/codefence/internal/docs"
	"github.com/rodaine/table"
)

const (
	formatText  = "text"
	formatTable = "table"

	ruleWidth = 80
)

type renderFunc func(out io.Writer, pal *palette, reports []*docs.Report) error

var errUnknownFormat = errors.New("unknown report format")

func reporter(format string) (renderFunc, error) {
	switch format {
	case formatText, "":
		return renderText, nil
	case formatTable:
		return renderTable, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

func renderText(out io.Writer, pal *palette, reports []*docs.Report) error {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", rule, pal.title("CODE BLOCK FORMATTING SCAN RESULTS"), rule)

	if len(reports) == 0 {
		_, err := fmt.Fprintln(out, pal.ok("✓ No formatting issues found!"))

		return err
	}

	fmt.Fprintf(out, "Found %d code blocks with potential issues:\n\n", len(reports))

	for _, report := range reports {
		fmt.Fprintf(out, "\n%s\n", pal.path("%s:%d", report.Path, report.Line))

		for _, issue := range report.Issues {
			fmt.Fprintf(out, "  - %s\n", pal.issue("%s", issue))
		}

		fmt.Fprintf(out, "  Preview: %s...\n", report.Preview)
	}

	_, err := fmt.Fprintf(out, "\n%s\nTotal issues: %d\n%s\n\n", rule, len(reports), rule)

	return err
}

func renderTable(out io.Writer, pal *palette, reports []*docs.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(out, pal.ok("✓ No formatting issues found!"))

		return err
	}

	tbl := table.New("File", "Line", "Lang", "Check", "Issue").
		WithWriter(out).
		WithHeaderFormatter(pal.title).
		WithFirstColumnFormatter(pal.path)

	var count int

	for _, report := range reports {
		for _, issue := range report.Issues {
			tbl.AddRow(report.Path, strconv.Itoa(report.Line), report.Lang, issue.Kind, issue.String())
			count++
		}
	}

	tbl.Print()

	_, err := fmt.Fprintf(out, "\n%d issues in %d code blocks\n", count, len(reports))

	return err
}
