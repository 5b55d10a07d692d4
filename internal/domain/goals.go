package domain

import "math"

// Calories per gram of each macro.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0
)

const defaultWaterMl = 2000

// CalculateBMR computes the basal metabolic rate using the Mifflin-St Jeor
// equation. It returns 0 when weight, height, age, or gender is missing; a
// zero BMR is the "insufficient data" sentinel, not an error.
func CalculateBMR(p Profile) float64 {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return 0
	}
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return base + 5
	case GenderFemale, GenderOther:
		// "other" currently uses the female coefficient. Product decision
		// pending; do not fold the two cases together.
		return base - 161
	default:
		return 0
	}
}

// CalculateTDEE scales the BMR by the profile's activity level. A missing
// activity level counts as sedentary.
func CalculateTDEE(p Profile) float64 {
	return CalculateBMR(p) * activityMultiplier(p.ActivityLevel)
}

func activityMultiplier(l ActivityLevel) float64 {
	switch l {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityAthlete:
		return 1.9
	default:
		return 1.2
	}
}

// macroSplit returns the (protein, fat, carb) calorie-share triple for the
// profile. Keto overrides the goal-based split. The triple always sums to 1.
func macroSplit(p Profile) (protein, fat, carb float64) {
	if p.DietPreference == DietKeto {
		return 0.25, 0.70, 0.05
	}
	switch p.PrimaryGoal {
	case GoalMuscleGain:
		return 0.35, 0.25, 0.40
	case GoalWeightLoss:
		return 0.35, 0.30, 0.35
	default:
		return 0.30, 0.25, 0.45
	}
}

// goalCalorieMultiplier adjusts total calories for the primary goal. Only
// weight loss and muscle gain shift the target.
func goalCalorieMultiplier(g PrimaryGoal) float64 {
	switch g {
	case GoalWeightLoss:
		return 0.8
	case GoalMuscleGain:
		return 1.1
	default:
		return 1.0
	}
}

// CalculateGoals derives the daily calorie, macro, and water targets from a
// profile. An incomplete profile yields all-zero calorie and macro targets
// (water falls back to the default); callers must treat that as missing data.
func CalculateGoals(p Profile) NutritionGoals {
	calories := CalculateTDEE(p) * goalCalorieMultiplier(p.PrimaryGoal)
	protein, fat, carb := macroSplit(p)

	water := defaultWaterMl
	if p.WeightKg > 0 {
		water = int(math.Round(p.WeightKg * 35))
	}

	return NutritionGoals{
		Calories: int(math.Round(calories)),
		Proteins: int(math.Round(calories * protein / kcalPerGramProtein)),
		Carbs:    int(math.Round(calories * carb / kcalPerGramCarb)),
		Fats:     int(math.Round(calories * fat / kcalPerGramFat)),
		Water:    water,
	}
}

// CalculateBMI returns weight / height² with height in meters. Returns 0 for
// a non-positive height rather than dividing by zero.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// BMICategory classifies a BMI value into the standard bands. Intervals are
// half-open: the lower bound belongs to the band above it.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
