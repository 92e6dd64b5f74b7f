package domain

import "strings"

// SyllabusPath locates one subject in the syllabus tree.
type SyllabusPath struct {
	University string `json:"university"`
	Faculty    string `json:"faculty"`
	Course     string `json:"course"`
	Semester   string `json:"semester"`
	Subject    string `json:"subject"`
}

// Trimmed returns a copy with surrounding whitespace removed.
func (p SyllabusPath) Trimmed() SyllabusPath {
	return SyllabusPath{
		University: strings.TrimSpace(p.University),
		Faculty:    strings.TrimSpace(p.Faculty),
		Course:     strings.TrimSpace(p.Course),
		Semester:   strings.TrimSpace(p.Semester),
		Subject:    strings.TrimSpace(p.Subject),
	}
}

// HasProgram reports whether university, faculty, course and semester are
// all set, which is what a chapter lookup needs besides the subject.
func (p SyllabusPath) HasProgram() bool {
	return p.University != "" && p.Faculty != "" && p.Course != "" && p.Semester != ""
}

// WithSubject returns a copy of p pointing at another subject.
func (p SyllabusPath) WithSubject(subject string) SyllabusPath {
	p.Subject = subject
	return p
}

// SyllabusTree nests university, faculty, course, semester and subject
// names. The leaf holds the subject's chapters, which the tree listing
// leaves empty.
type SyllabusTree map[string]map[string]map[string]map[string]map[string][]string

// AddSubject inserts a subject with no chapters, creating parents as needed.
func (t SyllabusTree) AddSubject(p SyllabusPath) {
	faculties, ok := t[p.University]
	if !ok {
		faculties = make(map[string]map[string]map[string]map[string][]string)
		t[p.University] = faculties
	}
	courses, ok := faculties[p.Faculty]
	if !ok {
		courses = make(map[string]map[string]map[string][]string)
		faculties[p.Faculty] = courses
	}
	semesters, ok := courses[p.Course]
	if !ok {
		semesters = make(map[string]map[string][]string)
		courses[p.Course] = semesters
	}
	subjects, ok := semesters[p.Semester]
	if !ok {
		subjects = make(map[string][]string)
		semesters[p.Semester] = subjects
	}
	if _, ok := subjects[p.Subject]; !ok {
		subjects[p.Subject] = []string{}
	}
}

// Subjects returns the subject names under a program, or nil when the
// program is unknown.
func (t SyllabusTree) Subjects(p SyllabusPath) []string {
	subjects := t[p.University][p.Faculty][p.Course][p.Semester]
	if subjects == nil {
		return nil
	}
	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	return names
}
