package main

import "strings"

// gender is the normalized single-letter code the rest of the pipeline
// works with. Raw input is case-insensitive ("f", "F" both work).
type gender string

const (
	genderMale   gender = "M"
	genderFemale gender = "F"
)

// parseGender normalizes raw input to a gender code. ok is false for
// anything other than M or F in either case.
func parseGender(raw string) (gender, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M":
		return genderMale, true
	case "F":
		return genderFemale, true
	}
	return "", false
}

// Weight goals as presented in the goal menu.
const (
	goalLose     = 1
	goalMaintain = 2
	goalGain     = 3
)

// profile holds the six validated answers. Built once per invocation,
// immutable after that — every function downstream takes it by value.
type profile struct {
	Gender        gender
	Age           int
	HeightCM      float64
	WeightKG      float64
	ActivityLevel int
	Goal          int
}

/* ─── Field predicates ───────────────────────────────────────────────── */

// The interview and the HTTP handler validate against the same predicates
// so a profile that reaches the pipeline is valid by construction.

func validAge(age int) bool       { return age >= 14 }
func validHeight(cm float64) bool { return cm > 0 }
func validWeight(kg float64) bool { return kg > 0 }
func validGoal(goal int) bool     { return goal >= goalLose && goal <= goalGain }

func validActivityLevel(level int) bool {
	_, ok := activityFactors[level]
	return ok
}
