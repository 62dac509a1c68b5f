package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/grid"
	buildWeekGrid "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
)

func gridCmd() *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "grid <classTypeId>",
		Short: "Показать недельную сетку вида занятий",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &buildWeekGrid.Request{ClassTypeID: args[0]}
			if week != "" {
				date, err := domain.ParseDate(week)
				if err != nil {
					return fmt.Errorf("invalid --week %q: expected YYYY-MM-DD", week)
				}
				req.Week = date
			}

			uc := buildWeekGrid.NewUseCase(app.loader(), app.tx, app.log).
				WithTimeProvider(studioClock{loc: app.cfg.Schedule.Location()})

			resp, err := uc.Execute(app.ctx, req)
			if err != nil {
				return err
			}
			if !resp.Known {
				return fmt.Errorf("class type %s not found", args[0])
			}
			return renderGrid(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&week, "week", "w", "", "Любая дата недели (YYYY-MM-DD), по умолчанию текущая")
	return cmd
}

// renderGrid печатает сетку таблицей: строка на момент времени, колонка на день
func renderGrid(out io.Writer, resp *buildWeekGrid.Response) error {
	fmt.Fprintf(out, "%s, week of %s\n\n", resp.ClassTypeName, resp.WeekStart.Format(domain.DateFormat))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := []string{"time"}
	for _, d := range resp.Days {
		label := d.Date.Format("Mon 02/01")
		if d.Holiday != nil {
			label += " (" + d.Holiday.Name + ")"
		}
		header = append(header, label)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range resp.Rows {
		line := []string{row.Time.String()}
		for _, c := range row.Cells {
			line = append(line, cellText(c))
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, "\n+ free  | continues  x linked class  # blocked  - closed  ! full  * linked conflict")
	return nil
}

func cellText(c grid.Cell) string {
	var text string
	switch c.Status {
	case grid.CellScheduled:
		parts := make([]string, 0, len(c.Turmas))
		for _, t := range c.Turmas {
			p := fmt.Sprintf("%d/%d", t.ActiveCount, t.Capacity)
			if t.IsFull {
				p += "!"
			}
			parts = append(parts, p)
		}
		text = strings.Join(parts, " ")
	case grid.CellAvailable:
		text = "+"
	case grid.CellCovered:
		text = "|"
	case grid.CellLinkedOccupied:
		text = "x"
	case grid.CellBlocked:
		text = "#"
	case grid.CellNonOperating:
		text = "-"
	default:
		text = "."
	}
	if c.Conflict != nil && c.Status == grid.CellScheduled {
		text += "*"
	}
	return text
}
