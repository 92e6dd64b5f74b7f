package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/padsala/padsala-api/internal/domain"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	dayStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
	examStyle  = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)

	kindStyles = map[domain.BlockKind]lipgloss.Style{
		domain.BlockStudy:     lipgloss.NewStyle().Foreground(cPrimary),
		domain.BlockBreak:     mutedStyle,
		domain.BlockFullBreak: mutedStyle,
		domain.BlockMeal:      lipgloss.NewStyle().Foreground(cGood),
		domain.BlockBuffer:    lipgloss.NewStyle().Foreground(cWarn),
		domain.BlockExam:      examStyle,
	}
)

func renderPlan(plan *domain.StudyPlan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Study plan"))
	b.WriteString("\n")
	b.WriteString(labelValue("Days", plan.Summary.TotalDays))
	b.WriteString("\n")
	b.WriteString(labelValue("Subjects", strings.Join(plan.Summary.SubjectsCovered, ", ")))
	b.WriteString("\n")
	if len(plan.Summary.DroppedExams) > 0 {
		b.WriteString(warnStyle.Render("Skipped: " + strings.Join(plan.Summary.DroppedExams, ", ")))
		b.WriteString("\n")
	}

	for _, day := range plan.Days {
		b.WriteString("\n")
		b.WriteString(dayHeader(day))
		b.WriteString("\n")
		if day.Focus != "" {
			b.WriteString("  " + mutedStyle.Render(day.Focus) + "\n")
		}
		for _, block := range day.Tasks {
			b.WriteString(renderBlock(block))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func labelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(label+":"), value)
}

func dayHeader(day domain.DayPlan) string {
	header := dayStyle.Render(fmt.Sprintf("%s (%s)", day.AltDate, day.Date)) + " " + day.Subject
	switch {
	case day.IsExamDay:
		header += " " + examStyle.Render("EXAM")
	case day.Status == domain.DayToday:
		header += " " + todayStyle.Render("today")
	}
	return header
}

func renderBlock(block domain.TimetableBlock) string {
	style, ok := kindStyles[block.Kind]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return fmt.Sprintf("  %s  %s %s",
		mutedStyle.Render(block.Time),
		style.Render(block.Activity),
		mutedStyle.Render(fmt.Sprintf("(%dm)", block.Minutes)),
	)
}
