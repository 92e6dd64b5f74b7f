// Package calendar converts dates between the Bikram Sambat calendar used in
// exam routines and the Gregorian calendar the planner iterates over.
package calendar
