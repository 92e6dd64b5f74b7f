// Package domain contains the entities shared by the planner, the stores and
// the HTTP layer: exams, mastery maps, timetable blocks, day plans, users,
// saved schedules and logged study sessions. It has no infrastructure
// dependencies.
package domain
