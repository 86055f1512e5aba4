package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/johnwards/hrdash/internal/client"
	"github.com/johnwards/hrdash/internal/domain"
)

// Output formats for client commands.
const (
	outputAuto  = "auto"
	outputTable = "table"
	outputJSON  = "json"
)

type clientFlags struct {
	server  string
	output  string
	timeout time.Duration
}

func (f *clientFlags) register(cmd *cobra.Command) {
	server := os.Getenv("HRDASH_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	cmd.Flags().StringVar(&f.server, "server", server, "server base URL (env HRDASH_SERVER)")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputAuto, "output format: auto, table or json")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 30*time.Second, "per-request timeout")
}

func (f *clientFlags) client() *client.Client {
	return client.New(f.server, client.WithTimeout(f.timeout), client.WithLogger(nil))
}

// format resolves "auto" to a table on a terminal and JSON otherwise.
func (f *clientFlags) format(w io.Writer) (string, error) {
	switch f.output {
	case outputTable, outputJSON:
		return f.output, nil
	case outputAuto, "":
		if file, ok := w.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
			return outputTable, nil
		}
		return outputJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q", f.output)
}

func newEmployeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "Query and create employees on a running server",
	}
	cmd.AddCommand(newEmployeesListCmd(), newEmployeesCreateCmd())
	return cmd
}

func newEmployeesListCmd() *cobra.Command {
	var (
		cf clientFlags
		s  = domain.EmployeeSearch{Page: 1, Sort: domain.DefaultSort, Direction: domain.DefaultDirection}
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees with filters, sorting and pagination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cf.format(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			page, err := cf.client().ListEmployees(cmd.Context(), s)
			if err != nil {
				return err
			}

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), page)
			}
			renderPage(cmd.OutOrStdout(), page)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&s.Page, "page", "p", s.Page, "page number (1-based)")
	f.StringVar(&s.Sort, "sort", s.Sort, "field to sort by")
	f.StringVar(&s.Direction, "direction", s.Direction, "sort direction: asc or desc")
	f.StringVar(&s.Name, "name", "", "case-insensitive name substring")
	f.StringVar(&s.Department, "department", "", "exact department")
	f.StringVar(&s.Position, "position", "", "exact position")
	f.StringVar(&s.StartDate, "start-date", "", "earliest hire date (YYYY-MM-DD)")
	f.StringVar(&s.EndDate, "end-date", "", "latest hire date (YYYY-MM-DD)")
	cf.register(cmd)
	return cmd
}

func newEmployeesCreateCmd() *cobra.Command {
	var (
		cf     clientFlags
		in     domain.CreateEmployeeInput
		salary float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cf.format(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			// Leave salary unset so the server reports it as required.
			if cmd.Flags().Changed("salary") {
				in.Salary = &salary
			}

			e, err := cf.client().CreateEmployee(cmd.Context(), in)
			if err != nil {
				return err
			}

			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created employee %s (%s)\n", e.ID, e.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Department, "department", "", "department")
	f.StringVar(&in.Position, "position", "", "position")
	f.StringVar(&in.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	f.Float64Var(&salary, "salary", 0, "annual salary")
	cf.register(cmd)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderPage(w io.Writer, page *domain.EmployeePage) {
	rows := make([][]string, 0, len(page.Employees))
	for _, e := range page.Employees {
		rows = append(rows, []string{
			e.ID,
			e.Name,
			e.Department,
			e.Position,
			e.HireDate,
			strconv.FormatFloat(e.Salary, 'f', 2, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "DEPARTMENT", "POSITION", "HIRE DATE", "SALARY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf(
		"Page %d of %d (%d employees)", page.CurrentPage, page.TotalPages, page.TotalEmployees)))
}
