package main

import (
	"fmt"
	"math"
)

// activityFactors maps the 1-4 activity level to its TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation by the interview and the HTTP handler.
var activityFactors = map[int]float64{
	1: 1.2,   // little or no exercise
	2: 1.375, // light exercise 1-3 days a week
	3: 1.55,  // moderate exercise 4-5 days a week
	4: 1.725, // hard exercise every day
}

const (
	// Fixed ±500 cal/day offset, roughly 0.5 kg/week of weight change.
	dailyCalorieDeficit = 500
	dailyCalorieSurplus = 500

	// Harvard Health's minimum suggested daily intakes. Anything below
	// these gets a consult-an-expert caution instead of a number.
	minMaleIntake   = 1500
	minFemaleIntake = 1200
)

// restingMetabolicRate computes RMR via Mifflin-St Jeor: different constant
// for male vs female. Any gender other than "M" takes the female branch;
// the interview and the HTTP handler only ever pass "M" or "F".
func restingMetabolicRate(p profile) float64 {
	rmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == genderMale {
		rmr += 5
	} else {
		rmr -= 161
	}
	return rmr
}

// dailyEnergyExpenditure scales RMR by the activity factor for level.
// Uses math.Round (half away from zero) to avoid systematic under-reporting
// from truncation. An unknown level is a broken precondition — every caller
// validates against activityFactors first — so it comes back as an error
// rather than a silently coerced factor.
func dailyEnergyExpenditure(rmr float64, level int) (int, error) {
	factor, ok := activityFactors[level]
	if !ok {
		return 0, fmt.Errorf("no activity factor for level %d", level)
	}
	return int(math.Round(rmr * factor)), nil
}

// recommendation is the outcome of the intake pipeline. When Caution is set
// the computed intake fell below the minimum suggested for the gender and
// must not be shown to the user — Intake is kept only for logging.
type recommendation struct {
	Intake  int
	Caution bool
}

// recommendIntake runs the full pipeline: RMR → TDEE → goal adjustment →
// threshold check. Pure; same profile always yields the same result. The
// final value is deliberately not clamped — a pathological profile can in
// principle go negative, but the caution thresholds catch it long before a
// number would be displayed.
func recommendIntake(p profile) (recommendation, error) {
	tdee, err := dailyEnergyExpenditure(restingMetabolicRate(p), p.ActivityLevel)
	if err != nil {
		return recommendation{}, err
	}

	intake := tdee
	switch p.Goal {
	case goalLose:
		intake -= dailyCalorieDeficit
	case goalGain:
		intake += dailyCalorieSurplus
	}

	caution := (p.Gender == genderMale && intake < minMaleIntake) ||
		(p.Gender != genderMale && intake < minFemaleIntake)

	return recommendation{Intake: intake, Caution: caution}, nil
}

// resultMessage builds the user-facing sentence for rec. The caution branch
// names the threshold but never the computed value.
func resultMessage(p profile, rec recommendation) string {
	if rec.Caution {
		minIntake, who := minFemaleIntake, "females"
		if p.Gender == genderMale {
			minIntake, who = minMaleIntake, "males"
		}
		return fmt.Sprintf("The calculated daily calorie intake was below the "+
			"suggested of %d cal for %s. We suggest you consult a nutrition "+
			"expert to help you achieve your goal!", minIntake, who)
	}

	switch p.Goal {
	case goalLose:
		return fmt.Sprintf("The recommended daily calorie intake to achieve a "+
			"weight loss of ~0.5kg/week is: %d", rec.Intake)
	case goalGain:
		return fmt.Sprintf("The recommended daily calorie intake to achieve a "+
			"weight gain of ~0.5kg/week is: %d", rec.Intake)
	default:
		return fmt.Sprintf("The recommended daily calorie intake to maintain "+
			"your current weight is: %d", rec.Intake)
	}
}
