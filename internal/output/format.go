// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"minimado/internal/service"
)

const (
	day = 24 * time.Hour

	// absoluteDateLayout is the short US date used past one week.
	absoluteDateLayout = "1/2/2006"

	glyphDone = "✅"
	glyphOpen = "⬜"
)

// Empty-state messages for RenderTaskList.
const (
	NoTasksMessage           = "No tasks found."
	NoIncompleteTasksMessage = "No incomplete tasks found. Use --all to include completed tasks."
)

// FormatRelativeDate describes t relative to now in whole days, counting
// any partial day as a full one. One to six days read "N day(s) ago";
// anything else, including zero, is an absolute date in local time.
func FormatRelativeDate(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int((diff + day - 1) / day)
	switch {
	case days == 1:
		return "1 day ago"
	case days > 1 && days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Local().Format(absoluteDateLayout)
	}
}

// FormatTags joins tag display names with ", ". It returns false when
// there are no tags.
func FormatTags(tags []service.Tag) (string, bool) {
	if len(tags) == 0 {
		return "", false
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.DisplayName()
	}
	return strings.Join(names, ", "), true
}

// RenderTaskList writes a numbered list of tasks. Unless showAll is set,
// completed tasks are left out. Source order is kept.
func RenderTaskList(w io.Writer, tasks []service.Task, showAll bool, now time.Time) {
	shown := tasks
	if !showAll {
		shown = make([]service.Task, 0, len(tasks))
		for _, task := range tasks {
			if !task.Completed {
				shown = append(shown, task)
			}
		}
	}

	if len(shown) == 0 {
		if len(tasks) == 0 {
			fmt.Fprintln(w, NoTasksMessage)
		} else {
			fmt.Fprintln(w, NoIncompleteTasksMessage)
		}
		return
	}

	for i, task := range shown {
		FormatTask(w, i+1, task, now)
	}
}

// FormatTask writes one list entry followed by a blank line.
// Format:
//
//	{N}. {GLYPH} {TEXT}
//	   Created: {WHEN}
//	   Completed: {WHEN}   (completed tasks only)
//	   Tags: {TAGS}        (when present)
func FormatTask(w io.Writer, num int, task service.Task, now time.Time) {
	glyph := glyphOpen
	if task.Completed {
		glyph = glyphDone
	}
	fmt.Fprintf(w, "%d. %s %s\n", num, glyph, normalizeTitle(task.Text))
	fmt.Fprintf(w, "   Created: %s\n", FormatRelativeDate(task.CreatedAt, now))
	if task.Completed && task.CompletedAt != nil {
		fmt.Fprintf(w, "   Completed: %s\n", FormatRelativeDate(*task.CompletedAt, now))
	}
	if tags, ok := FormatTags(task.Tags); ok {
		fmt.Fprintf(w, "   Tags: %s\n", tags)
	}
	fmt.Fprintln(w)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
