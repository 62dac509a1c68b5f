package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

var errEmptyImport = errors.New("import file has no students")

// importFile формат файла импорта
//
//	students:
//	  - name: Ana Souza
//	    slot: 6f1c...   # необязательно: записать в группу
//	    waitlisted: false
//	    note: перешла из утренней группы
type importFile struct {
	Students []importEntry `yaml:"students"`
}

type importEntry struct {
	Name       string `yaml:"name"`
	Slot       string `yaml:"slot"`
	Waitlisted bool   `yaml:"waitlisted"`
	Note       string `yaml:"note"`
}

// parseImportFile читает YAML. Номер строки импорта равен позиции записи начиная с 1
func parseImportFile(r io.Reader) ([]importEntry, error) {
	var f importFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyImport
		}
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(f.Students) == 0 {
		return nil, errEmptyImport
	}
	return f.Students, nil
}

func previewRows(entries []importEntry) []importStudents.PreviewRow {
	rows := make([]importStudents.PreviewRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, importStudents.PreviewRow{Line: i + 1, Name: e.Name})
	}
	return rows
}

// commitRow строка коммита по решению оператора
func commitRow(line int, e importEntry, decision namematch.Decision, chosenID *string) importStudents.CommitRow {
	row := importStudents.CommitRow{
		Line:       line,
		Name:       e.Name,
		Decision:   decision,
		ChosenID:   chosenID,
		Waitlisted: e.Waitlisted,
	}
	if e.Slot != "" {
		slot := e.Slot
		row.FixedSlotID = &slot
	}
	if e.Note != "" {
		note := e.Note
		row.Note = &note
	}
	return row
}

// parseAnswer разбирает ответ оператора на строку предпросмотра
//
//	""  - принять предложенное решение
//	"n" - завести нового ученика
//	"s" - пропустить строку
//	"2" - выбрать второго кандидата из списка
func parseAnswer(item importStudents.PreviewItem, answer string) (namematch.Decision, *string, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))

	switch answer {
	case "":
		return item.Suggested, nil, nil
	case "n":
		return namematch.DecisionCreate, nil, nil
	case "s":
		return namematch.DecisionSkip, nil, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(item.Alternatives) {
		return "", nil, fmt.Errorf("unknown answer %q", answer)
	}
	id := item.Alternatives[n-1].Candidate.ID
	return namematch.DecisionChoose, &id, nil
}
