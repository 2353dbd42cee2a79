// Package report exports one goal's month as a printable PDF: the habit
// matrix, the daily completion counts and the current streak.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/constants"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/utils"
)

const (
	pageMargin  = 10.0
	labelWidth  = 50.0
	rowHeight   = 6.0
	titleHeight = 10.0
)

type Report struct {
	Goal      models.Goal
	Month     calendar.Month
	Matrix    calendar.Matrix
	Overview  calendar.Overview
	Streak    int
	Generated time.Time
}

// Filename returns the default output name, e.g. streaks-fitness-2024-03.pdf
func Filename(goal models.Goal, month calendar.Month) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, strings.TrimSpace(goal.Title))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "goal"
	}
	return fmt.Sprintf("%s-%s-%s.pdf", constants.AppName, slug, month.String())
}

// WriteFile renders r to path
func WriteFile(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Write renders r as a landscape A4 page
func Write(w io.Writer, r Report) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - %s", r.Goal.Title, r.Month.Title()), true)
	pdf.SetCreator(constants.AppName+" "+constants.Version, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, titleHeight, tr(fmt.Sprintf("%s: %s", r.Goal.Title, r.Month.Title())))
	pdf.Ln(titleHeight)

	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, rowHeight, tr(fmt.Sprintf("\"%s\"", r.Goal.DisplayQuote())))
	pdf.Ln(rowHeight)
	pdf.Cell(0, rowHeight, tr(fmt.Sprintf("Scheduled: %s   Current streak: %d day(s)", r.Goal.Weekdays.String(), r.Streak)))
	pdf.Ln(rowHeight * 2)
	pdf.SetTextColor(0, 0, 0)

	if r.Matrix.NoHabits {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, rowHeight, constants.NoHabitsNotice)
		pdf.Ln(rowHeight)
	} else {
		writeMatrix(pdf, tr, r)
	}

	pdf.Ln(rowHeight)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(100, 100, 100)
	generated := r.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.Cell(0, rowHeight, fmt.Sprintf("X = completed, shaded = not scheduled. Generated %s.", generated.Format("2006-01-02 15:04")))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func writeMatrix(pdf *fpdf.Fpdf, tr func(string) string, r Report) {
	pageWidth, _ := pdf.GetPageSize()
	dates := r.Matrix.Dates
	cellWidth := (pageWidth - 2*pageMargin - labelWidth) / float64(len(dates))

	scheduled := make([]bool, len(dates))
	for i, d := range dates {
		if t, err := utils.ParseDay(d, time.UTC); err == nil {
			scheduled[i] = r.Goal.ScheduledOn(t.Weekday())
		}
	}

	// day numbers
	pdf.SetFont("Arial", "B", 7)
	pdf.CellFormat(labelWidth, rowHeight, "Habit", "1", 0, "L", false, 0, "")
	for _, d := range dates {
		pdf.CellFormat(cellWidth, rowHeight, strings.TrimLeft(d[8:], "0"), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range r.Matrix.Rows {
		pdf.CellFormat(labelWidth, rowHeight, tr(truncate(row.Habit.Title, 30)), "1", 0, "L", false, 0, "")
		for i, done := range row.Cells {
			fill := false
			switch {
			case done:
				pdf.SetFillColor(120, 200, 120)
				fill = true
			case !scheduled[i]:
				pdf.SetFillColor(230, 230, 230)
				fill = true
			}
			mark := ""
			if done {
				mark = "X"
			}
			pdf.CellFormat(cellWidth, rowHeight, mark, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// per-day totals from the overview
	pdf.SetFont("Arial", "B", 7)
	pdf.CellFormat(labelWidth, rowHeight, "Done", "1", 0, "L", false, 0, "")
	for _, c := range r.Overview.Cells {
		fill := false
		switch c.State {
		case calendar.StateAll:
			pdf.SetFillColor(120, 200, 120)
			fill = true
		case calendar.StateSome:
			pdf.SetFillColor(250, 200, 120)
			fill = true
		}
		pdf.CellFormat(cellWidth, rowHeight, fmt.Sprintf("%d/%d", c.Completed, c.Total), "1", 0, "C", fill, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
