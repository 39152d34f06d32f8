package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todoList/internal/models/task"
	repo "todoList/internal/repository"
)

const timeLayout = time.RFC3339Nano

// порядок колонок определяет версию схемы
var columns = []string{"id", "description", "created_at", "completed_at", "due_date"}

const (
	colID = iota
	colDescription
	colCreatedAt
	colCompletedAt
	colDueDate
)

var (
	ErrSchemaMismatch = errors.New("заголовок не совпадает со схемой")
	ErrDuplicateID    = errors.New("повторяющийся id")
)

func encode(w io.Writer, tasks []*task.Task) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for _, t := range tasks {
		record[colID] = strconv.Itoa(t.ID)
		record[colDescription] = t.Description
		record[colCreatedAt] = t.CreatedAt.Format(timeLayout)
		record[colCompletedAt] = formatOptional(t.CompletedAt)
		record[colDueDate] = formatOptional(t.DueDate)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// decode читает весь набор задач. Любая ошибка в данных делает результат
// недействительным: частичный набор не возвращается.
func decode(r io.Reader, path string) ([]*task.Task, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []*task.Task{}, nil
	}
	if err != nil {
		return nil, parseError(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if !equalHeader(header) {
		return nil, &repo.DecodeError{
			Path: path,
			Line: 1,
			Err:  fmt.Errorf("%w: ожидался %q, получен %q", ErrSchemaMismatch, strings.Join(columns, ","), strings.Join(header, ",")),
		}
	}

	tasks := []*task.Task{}
	seen := make(map[int]struct{})
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(path, err)
		}
		line, _ := reader.FieldPos(0)

		t, column, err := decodeRecord(record)
		if err != nil {
			return nil, &repo.DecodeError{Path: path, Line: line, Column: column, Err: err}
		}
		if _, dup := seen[t.ID]; dup {
			return nil, &repo.DecodeError{Path: path, Line: line, Column: columns[colID], Err: fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)}
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeRecord(record []string) (*task.Task, string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[colID]))
	if err != nil {
		return nil, columns[colID], err
	}
	if id <= 0 {
		return nil, columns[colID], fmt.Errorf("id должен быть положительным: %d", id)
	}

	createdAt, err := parseTime(record[colCreatedAt])
	if err != nil {
		return nil, columns[colCreatedAt], err
	}
	if createdAt == nil {
		return nil, columns[colCreatedAt], errors.New("пустое значение")
	}

	completedAt, err := parseTime(record[colCompletedAt])
	if err != nil {
		return nil, columns[colCompletedAt], err
	}

	dueDate, err := parseTime(record[colDueDate])
	if err != nil {
		return nil, columns[colDueDate], err
	}

	return &task.Task{
		ID:          id,
		Description: record[colDescription],
		CreatedAt:   *createdAt,
		CompletedAt: completedAt,
		DueDate:     dueDate,
	}, "", nil
}

func parseTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return nil, err
	}
	t = t.Local()
	return &t, nil
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

func equalHeader(header []string) bool {
	if len(header) != len(columns) {
		return false
	}
	for i, name := range columns {
		if strings.TrimSpace(header[i]) != name {
			return false
		}
	}
	return true
}

func parseError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &repo.DecodeError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &repo.IOError{Op: "чтение", Path: path, Err: err}
}
