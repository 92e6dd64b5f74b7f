// Package api adapts HTTP requests to the planning, syllabus, schedule,
// session and auth services. It owns request decoding and validation, and
// maps service errors to status codes and safe client messages.
package api
