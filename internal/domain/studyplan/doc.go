// Package studyplan builds day-by-day study calendars for a set of upcoming
// exams.
//
// The Planner walks every calendar day from today to the last exam. Exam days
// get a fixed routine; every other day asks the priority engine which subject
// and topic deserve the time, then expands that choice into a timetable of
// study sessions, breaks and meals. Generation is a pure function of its
// inputs and the injected Clock.
package studyplan
