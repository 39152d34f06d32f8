package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"todoList/internal/models/task"

	"github.com/dustin/go-humanize"
)

const (
	placeholderNone       = "None"
	placeholderIncomplete = "Incomplete"
	maxDescription        = 50
)

type tableOptions struct {
	showCompleted bool
	now           time.Time
}

func renderTasks(w io.Writer, tasks []*task.Task, opts tableOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"ID", "Task", "Created", "Due"}
	if opts.showCompleted {
		header = append(header, "Completed")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, t := range tasks {
		row := []string{
			strconv.Itoa(t.ID),
			truncate(oneLine(t.Description), maxDescription),
			relative(&t.CreatedAt, opts.now, placeholderNone),
			relative(t.DueDate, opts.now, placeholderNone),
		}
		if opts.showCompleted {
			row = append(row, relative(t.CompletedAt, opts.now, placeholderIncomplete))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func relative(t *time.Time, now time.Time, placeholder string) string {
	if t == nil {
		return placeholder
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
