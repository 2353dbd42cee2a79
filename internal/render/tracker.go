package render

import (
	"fmt"
	"strings"

	"github.com/julianstephens/streaks/internal/constants"
	"github.com/julianstephens/streaks/internal/tracker"
)

// StreakBadge formats a streak count ("🔥 3 days")
func StreakBadge(n int) string {
	unit := "days"
	if n == 1 {
		unit = "day"
	}
	return StreakStyle.Render(fmt.Sprintf("🔥 %d %s", n, unit))
}

// Summary draws the today screen of one goal. cursor is the index of the
// highlighted task, or -1 for none.
func Summary(s tracker.Summary, cursor int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(s.Goal.Title) + "  " + StreakBadge(s.Streak) + "\n")
	b.WriteString(QuoteStyle.Render(`"`+s.Goal.DisplayQuote()+`"`) + "\n\n")

	switch {
	case s.BeforeStart:
		b.WriteString(MutedStyle.Render("Goal was not set for this date.") + "\n")
		return b.String()
	case len(s.Tasks) == 0:
		b.WriteString(MutedStyle.Render(constants.NoHabitsNotice) + "\n")
		return b.String()
	case !s.Scheduled:
		b.WriteString(MutedStyle.Render("Not scheduled today.") + "\n")
	}

	for i, t := range s.Tasks {
		box := "[ ]"
		title := t.Habit.Title
		if t.Completed {
			box = DoneStyle.Render("[" + GlyphDone + "]")
			title = MutedStyle.Render(title)
		}
		line := box + " " + title
		if i == cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("%d/%d done", s.Done, len(s.Tasks))) + "\n")
	return b.String()
}
