// Package store declares the persistence contracts for users, the syllabus
// catalogue, saved schedules, mastery scores and study sessions, together
// with the sentinel errors every implementation maps its failures onto.
package store
