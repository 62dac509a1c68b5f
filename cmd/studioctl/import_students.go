package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	classTypeRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/classtype"
	fixedSlotRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/fixedslot"
	studentRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
	enrollmentsService "github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

func importStudentsCmd() *cobra.Command {
	var (
		assumeYes bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "import-students <file.yaml>",
		Short: "Импортировать учеников из YAML с сопоставлением по имени",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := parseImportFile(f)
			if err != nil {
				return err
			}

			students := studentRepo.NewRepository(app.db)
			enrollments := enrollmentsService.NewService(
				fixedSlotRepo.NewRepository(app.db),
				classTypeRepo.NewRepository(app.db),
				students,
				app.tx,
				(*metrics.Metrics)(nil),
				app.log,
			)
			uc := importStudents.NewUseCase(students, enrollments, app.tx, app.log)

			preview, err := uc.Preview(app.ctx, &importStudents.PreviewRequest{
				Rows: previewRows(entries),
				Role: domain.RoleAdmin,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows, err := askDecisions(out, cmd.InOrStdin(), entries, preview, assumeYes)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(out, "dry run: %d rows decided, nothing written\n", len(rows))
				return nil
			}

			result, err := uc.Commit(app.ctx, &importStudents.CommitRequest{Rows: rows, Role: domain.RoleAdmin})
			if err != nil {
				return err
			}
			printCommitResult(out, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Принять предложенные решения без вопросов")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Только предпросмотр, без записи")
	return cmd
}

// askDecisions спрашивает оператора только по строкам, где нужен выбор
func askDecisions(out io.Writer, in io.Reader, entries []importEntry, preview *importStudents.PreviewResponse, assumeYes bool) ([]importStudents.CommitRow, error) {
	scanner := bufio.NewScanner(in)
	rows := make([]importStudents.CommitRow, 0, len(preview.Items))

	for _, item := range preview.Items {
		entry := entries[item.Line-1]

		if !item.NeedsDecision || assumeYes {
			rows = append(rows, commitRow(item.Line, entry, item.Suggested, nil))
			continue
		}

		fmt.Fprintf(out, "\n#%d %q\n", item.Line, item.Name)
		for i, alt := range item.Alternatives {
			fmt.Fprintf(out, "  %d) %s (%.2f)\n", i+1, alt.Candidate.Name, alt.Score)
		}

		for {
			fmt.Fprint(out, "[Enter]=confirm 1, number=choose, n=new, s=skip: ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("error reading input: %w", err)
				}
				return nil, io.ErrUnexpectedEOF
			}
			decision, chosenID, err := parseAnswer(item, scanner.Text())
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			rows = append(rows, commitRow(item.Line, entry, decision, chosenID))
			break
		}
	}
	return rows, nil
}

func printCommitResult(out io.Writer, result *importStudents.CommitResponse) {
	for _, r := range result.Results {
		switch r.Outcome {
		case importStudents.OutcomeFailed:
			fmt.Fprintf(out, "#%d %s: failed: %s\n", r.Line, r.Name, r.Error)
		case importStudents.OutcomeSkipped:
			fmt.Fprintf(out, "#%d %s: skipped\n", r.Line, r.Name)
		default:
			suffix := ""
			if r.AlreadyEnrolled {
				suffix = " (already enrolled)"
			}
			fmt.Fprintf(out, "#%d %s: %s %s%s\n", r.Line, r.Name, r.Outcome, r.StudentID, suffix)
		}
	}
	fmt.Fprintf(out, "\ncreated=%d matched=%d skipped=%d failed=%d\n",
		result.Created, result.Matched, result.Skipped, result.Failed)
}
