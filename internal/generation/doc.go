// Package generation defines how the application asks an external language
// model for a subject's study topics when the syllabus has none recorded,
// and provides the keyword fallback used when no model is available.
package generation
