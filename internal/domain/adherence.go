package domain

import (
	"fmt"
	"time"
)

// Zone is the green/orange/red classification of a day's consumption
// relative to its calorie target.
type Zone string

// Zones.
const (
	ZoneGreen  Zone = "green"
	ZoneOrange Zone = "orange"
	ZoneRed    Zone = "red"
)

// DefaultCreditRequired is the number of qualifying green days that unlocks
// the weekly reward.
const DefaultCreditRequired = 5

// creditFloorPercent is the anti-abuse floor: a day below this consumption
// percentage never earns credit even if it classifies green.
const creditFloorPercent = 50

// DailyRecord is one scored day in the weekly history.
type DailyRecord struct {
	Day              string  `json:"day"`
	HasData          bool    `json:"hasData"`
	ConsumedCalories float64 `json:"consumedCalories"`
	Percentage       float64 `json:"percentage"`
	Zone             Zone    `json:"zone"`
}

// AdherenceReport is the scored trailing week.
type AdherenceReport struct {
	CurrentCredit    int           `json:"currentCredit"`
	CreditRequired   int           `json:"creditRequired"`
	WeeklyHistory    []DailyRecord `json:"weeklyHistory"`
	IsReady          bool          `json:"isReady"`
	PercentageFilled float64       `json:"percentageFilled"`
}

// ClassifyDayZone maps a consumption percentage to a zone. 90-110 inclusive
// is green; 80-90 and 110-120 (green bounds excluded, outer bounds included)
// are orange; everything else is red.
func ClassifyDayZone(p float64) Zone {
	switch {
	case p >= 90 && p <= 110:
		return ZoneGreen
	case p >= 80 && p < 90, p > 110 && p <= 120:
		return ZoneOrange
	default:
		return ZoneRed
	}
}

// QualifiesForCredit reports whether a scored day counts toward the rolling
// credit: it must have data, be green, and sit at or above the 50% floor.
//
// Known limitation: the floor only blocks very low consumption. A day with a
// handful of logged items can still land in the green band when the personal
// target is low; flagged for product review, intentionally not patched here.
func QualifiesForCredit(r DailyRecord) bool {
	return r.HasData && r.Zone == ZoneGreen && r.Percentage >= creditFloorPercent
}

// BuildAdherenceReport scores the 7-day window ending at today against a
// daily calorie target. The log maps ISO days to intake; days absent from
// the log count as no-data days. today is caller-supplied so the function
// stays pure and replayable. creditRequired <= 0 selects the default.
func BuildAdherenceReport(log map[string]DayIntake, targetCalories int, today time.Time, creditRequired int) AdherenceReport {
	if creditRequired <= 0 {
		creditRequired = DefaultCreditRequired
	}

	history := make([]DailyRecord, 0, 7)
	credit := 0
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(DayLayout)
		intake := log[day]

		rec := DailyRecord{Day: day, HasData: intake.HasData()}
		rec.ConsumedCalories = intake.ConsumedCalories()
		if targetCalories > 0 {
			rec.Percentage = rec.ConsumedCalories / float64(targetCalories) * 100
		}
		if rec.HasData {
			rec.Zone = ClassifyDayZone(rec.Percentage)
		} else {
			rec.Zone = ZoneRed
		}
		if QualifiesForCredit(rec) {
			credit++
		}
		history = append(history, rec)
	}

	filled := float64(credit) / float64(creditRequired) * 100
	if filled > 100 {
		filled = 100
	}

	return AdherenceReport{
		CurrentCredit:    credit,
		CreditRequired:   creditRequired,
		WeeklyHistory:    history,
		IsReady:          credit >= creditRequired,
		PercentageFilled: filled,
	}
}

// AdherenceMessage is the presentation payload for a report tier.
type AdherenceMessage struct {
	Tier     string `json:"tier"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Message  string `json:"message"`
	Badge    string `json:"badge"`
}

// MessageForReport picks the motivational template for a report: "ready" once
// the credit is complete, "almost" at one day short, "building" otherwise.
func MessageForReport(r AdherenceReport) AdherenceMessage {
	remaining := r.CreditRequired - r.CurrentCredit
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case r.IsReady:
		return AdherenceMessage{
			Tier:     "ready",
			Title:    "Série complétée",
			Subtitle: "Récompense débloquée",
			Message:  fmt.Sprintf("%d jours dans la zone verte sur %d requis cette semaine.", r.CurrentCredit, r.CreditRequired),
			Badge:    "🏆",
		}
	case r.CurrentCredit >= r.CreditRequired-1:
		return AdherenceMessage{
			Tier:     "almost",
			Title:    "Presque !",
			Subtitle: fmt.Sprintf("Plus que %s", dayCount(remaining)),
			Message:  fmt.Sprintf("Encore %s dans la zone verte pour débloquer la récompense.", dayCount(remaining)),
			Badge:    "🔥",
		}
	default:
		return AdherenceMessage{
			Tier:     "building",
			Title:    "Construisez votre série",
			Subtitle: fmt.Sprintf("%d/%d jours verts", r.CurrentCredit, r.CreditRequired),
			Message:  fmt.Sprintf("Il vous reste %s à obtenir cette semaine.", dayCount(remaining)),
			Badge:    "💪",
		}
	}
}

func dayCount(n int) string {
	if n == 1 {
		return "1 jour vert"
	}
	return fmt.Sprintf("%d jours verts", n)
}
