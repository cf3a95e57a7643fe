package main

import (
	"fmt"
	"strconv"
)

/* ─── Interactive collection ─────────────────────────────────────────── */

// collectProfile walks the user through the six questions, re-prompting on
// every invalid answer until a valid one arrives. There is no retry limit;
// the only way out without a profile is an Input error (closed stdin).
func collectProfile(con Console) (profile, error) {
	con.Say(tagEmphasis, "\nHello! In order to calculate your daily calorie "+
		"intake I will need some information about you. Lets start...")

	g, err := askGender(con)
	if err != nil {
		return profile{}, err
	}

	age, err := askInt(con, "Age: ", validAge,
		"We suggest you consult a nutrition expert if you are under 14 years old.\n"+
			"If you made a mistake while entering your age, try again...")
	if err != nil {
		return profile{}, err
	}

	height, err := askInt(con, "Height (cm): ",
		func(v int) bool { return validHeight(float64(v)) },
		"Oops! That was not a valid height. Try again...")
	if err != nil {
		return profile{}, err
	}

	weight, err := askInt(con, "Weight (kg): ",
		func(v int) bool { return validWeight(float64(v)) },
		"Oops! That was not a valid weight. Try again...")
	if err != nil {
		return profile{}, err
	}

	sayActivityLevels(con)
	level, err := askInt(con, "Choose your activity level (1-4): ",
		validActivityLevel, "Oops! Invalid input. Try again (1-4)...")
	if err != nil {
		return profile{}, err
	}

	sayGoals(con)
	goal, err := askInt(con, "Choose your goal (1-3): ",
		validGoal, "Oops! Invalid input. Try again (1-3)...")
	if err != nil {
		return profile{}, err
	}

	return profile{
		Gender:        g,
		Age:           age,
		HeightCM:      float64(height),
		WeightKG:      float64(weight),
		ActivityLevel: level,
		Goal:          goal,
	}, nil
}

// askGender re-prompts until the answer normalizes to M or F.
func askGender(con Console) (gender, error) {
	for {
		raw, err := con.Input("Gender (M/F): ")
		if err != nil {
			return "", err
		}
		if g, ok := parseGender(raw); ok {
			return g, nil
		}
		con.Say(tagWarning, "Oops! That was not a valid gender. Please try again (M/F)...")
	}
}

// askInt re-prompts until the answer parses as an integer and satisfies
// valid. A parse failure gets the same error message as an out-of-range
// value — the user is told what a good answer looks like either way.
func askInt(con Console, prompt string, valid func(int) bool, errMsg string) (int, error) {
	for {
		raw, err := con.Input(prompt)
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.Atoi(raw)
		if convErr == nil && valid(v) {
			return v, nil
		}
		con.Say(tagWarning, errMsg)
	}
}

func sayActivityLevels(con Console) {
	con.Say(tagEmphasis, "\nActivity levels:")
	con.Say(tagNormal, "[1] Little or no exercise")
	con.Say(tagNormal, "[2] Light exercise 1-3 days a week")
	con.Say(tagNormal, "[3] Moderate exercise 4-5 days a week")
	con.Say(tagNormal, "[4] Hard exercise every day\n")
}

func sayGoals(con Console) {
	con.Say(tagEmphasis, "\nGoals:")
	con.Say(tagNormal, "[1] Lose weight")
	con.Say(tagNormal, "[2] Maintain weight")
	con.Say(tagNormal, "[3] Gain weight\n")
}

/* ─── Command entry point ────────────────────────────────────────────── */

// runCalories executes the calories command once against con: collect,
// compute, report. An error from the pipeline means a validated profile
// failed the factor lookup — a contract violation the caller should treat
// as fatal, not something to re-prompt over.
func runCalories(con Console) error {
	p, err := collectProfile(con)
	if err != nil {
		return fmt.Errorf("collect profile: %w", err)
	}

	rec, err := recommendIntake(p)
	if err != nil {
		return fmt.Errorf("intake pipeline: %w", err)
	}

	tag := tagEmphasis
	if rec.Caution {
		tag = tagWarning
	}
	con.Say(tag, "\n"+resultMessage(p, rec))
	return nil
}
