package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/KirkDiggler/cirrosis/internal/services/consumption"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	"github.com/KirkDiggler/cirrosis/internal/services/stats"
	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
)

// Discord caps an embed at 25 fields
const maxFields = 25

func liters(d decimal.Decimal) string {
	return d.StringFixed(2) + " L"
}

func euros(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}

func day(t time.Time) string {
	return dates.Key(t)
}

func rangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", day(start), day(end))
}

// renderRecorded describes a freshly logged entry
func renderRecorded(output *consumption.RecordConsumptionOutput, totals *consumption.GetPersonYearTotalsOutput) (string, string) {
	event := output.Event
	title := fmt.Sprintf("%d × %s", event.Quantity, output.DrinkType.Label)

	lines := []string{fmt.Sprintf("Logged for %s", day(event.ConsumedAt))}
	if output.DrinkType.HasLiters() {
		lines = append(lines, fmt.Sprintf("%s, %s", liters(event.Liters()), euros(event.PriceTotal)))
	} else {
		lines = append(lines, euros(event.PriceTotal))
	}

	if totals != nil {
		if totals.IsFirstOfYear {
			lines = append(lines, fmt.Sprintf("First entry of beer year %d", totals.BeerYear))
		} else {
			lines = append(lines, fmt.Sprintf("Beer year %d so far: %s over %d entries", totals.BeerYear, liters(totals.Liters), totals.Events))
		}
	}

	return title, strings.Join(lines, "\n")
}

// renderJoined confirms a roster entry
func renderJoined(output *consumption.JoinRosterOutput) string {
	if !output.Joined {
		return fmt.Sprintf("You're already on the roster as %s.", output.Person.Name)
	}
	return fmt.Sprintf("Welcome, %s! Log drinks with /cirrosis log.", output.Person.Name)
}

// renderUndoOptions lists recent entries as select menu options
func renderUndoOptions(records []*models.ConsumptionRecord) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(records))
	for _, r := range records {
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("%d × %s", r.Quantity, r.DrinkLabel),
			Value:       r.EventID,
			Description: day(r.ConsumedAt),
		})
	}
	return options
}

// renderRangeStats renders the per-person ranking of a range
func renderRangeStats(output *stats.GetRangeStatsOutput) (string, string, []*discordgo.MessageEmbedField) {
	title := "Ranking"
	description := rangeLabel(output.Start, output.End)
	if len(output.Stats) == 0 {
		return title, description + "\nNobody has logged anything yet.", nil
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Stats))
	for n, st := range output.Stats {
		if n == maxFields {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d. %s", n+1, st.Name),
			Value: fmt.Sprintf("%s in %d days (%s per day)\nStrong days: %d\nPeak: %s on %s",
				liters(st.LitersTotal), st.ActiveDays, liters(st.AvgLitersPerActiveDay),
				st.StrongDays, liters(st.PeakLiters), day(st.PeakDay)),
		})
	}

	return title, description, fields
}

// renderGroupMonths renders the months of a year that have data
func renderGroupMonths(output *stats.GetGroupMonthsOutput) (string, string, []*discordgo.MessageEmbedField) {
	title := fmt.Sprintf("Group %d", output.Year)

	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Months))
	for _, m := range output.Months {
		if m.ActiveDays == 0 {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: m.Month.String(),
			Value: fmt.Sprintf("%s\nActive days: %d, dry days: %d, strong days: %d\n%s per active day, %s per day",
				liters(m.LitersTotal), m.ActiveDays, m.ZeroDays, m.StrongDays,
				liters(m.AvgPerActiveDay), liters(m.AvgPerCalendarDay)),
			Inline: true,
		})
	}

	if len(fields) == 0 {
		return title, "No data this year.", nil
	}
	return title, "", fields
}

// renderDrinkRanking renders the ranked drinks of a range
func renderDrinkRanking(start, end time.Time, output *stats.GetDrinkRankingOutput) (string, string, []*discordgo.MessageEmbedField) {
	title := "Drinks"
	description := rangeLabel(start, end)
	if len(output.Drinks) == 0 {
		return title, description + "\nNothing logged yet.", nil
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Drinks))
	for n, d := range output.Drinks {
		if n == maxFields {
			break
		}
		value := fmt.Sprintf("%d units", d.Units)
		if d.HasLiters {
			value = fmt.Sprintf("%s, %d units", liters(d.Liters), d.Units)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%d. %s", n+1, d.Label),
			Value:  value,
			Inline: true,
		})
	}

	return title, description, fields
}

// renderShameReport renders the five findings, or why there are none.
// Quips are appended to the finding they are keyed by.
func renderShameReport(report *stats.ShameReport, quips map[messaging.ShameFinding]string) (string, string, []*discordgo.MessageEmbedField) {
	title := "Shame report"
	description := rangeLabel(report.Start, report.End)
	if !report.Applicable {
		description += "\nNot enough people drank this month for a shame report."
		if quip := quips[messaging.FindingNotApplicable]; quip != "" {
			description += "\n" + quip
		}
		return title, description, nil
	}

	var fields []*discordgo.MessageEmbedField
	add := func(name string, finding messaging.ShameFinding, value string) {
		if quip := quips[finding]; quip != "" {
			value += "\n*" + quip + "*"
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: name, Value: value})
	}

	if fl := report.FalseLeader; fl != nil {
		add("False leader", messaging.FindingFalseLeader, fmt.Sprintf("%s led from %s and ended #%d", fl.Name, day(fl.FirstDay), fl.FinalRank))
	} else {
		add("False leader", messaging.FindingFalseLeader, "Nobody")
	}

	if bd := report.BiggestDrop; bd != nil {
		add("Biggest drop", messaging.FindingBiggestDrop, fmt.Sprintf("%s fell from #%d to #%d", bd.Name, bd.BestRank, bd.FinalRank))
	} else {
		add("Biggest drop", messaging.FindingBiggestDrop, "Nobody")
	}

	if ac := report.AlmostChampion; ac != nil {
		add("Almost champion", messaging.FindingAlmostChampion, fmt.Sprintf("%s was within reach of the lead %d times", ac.Name, ac.Times))
	} else {
		add("Almost champion", messaging.FindingAlmostChampion, "Nobody")
	}

	if g := report.Ghost; g != nil {
		add("Ghost", messaging.FindingGhost, fmt.Sprintf("%s stayed dry %d of %d days", g.Name, g.BlankDays, g.Days))
	}

	if w := report.SaddestWeek; w != nil {
		add("Saddest week", messaging.FindingSaddestWeek, fmt.Sprintf("Week of %s: %s in %d days", day(w.WeekStart), liters(w.Liters), w.Days))
	}

	return title, description, fields
}

// renderBeerYearReport renders everybody's beer year totals
func renderBeerYearReport(report *stats.BeerYearReport, years []int) (string, string, []*discordgo.MessageEmbedField) {
	title := fmt.Sprintf("Beer year %d", report.Year)
	description := rangeLabel(report.Start, report.End)
	if len(years) > 0 {
		labels := make([]string, 0, len(years))
		for _, y := range years {
			labels = append(labels, fmt.Sprint(y))
		}
		description += "\nYears with data: " + strings.Join(labels, ", ")
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(report.Entries))
	for n, e := range report.Entries {
		if n == maxFields {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", n+1, e.Name),
			Value: fmt.Sprintf("%s, %d units, %s", liters(e.Liters), e.Units, euros(e.Price)),
		})
	}

	return title, description, fields
}

// renderPersonDrinks renders one person's drinks over a beer year
func renderPersonDrinks(beerYear int, totals []*stats.DrinkTotal) (string, string, []*discordgo.MessageEmbedField) {
	title := fmt.Sprintf("Your beer year %d", beerYear)
	if len(totals) == 0 {
		return title, "Nothing logged this beer year.", nil
	}

	stats.SortDrinkTotals(totals)

	fields := make([]*discordgo.MessageEmbedField, 0, len(totals))
	for n, d := range totals {
		if n == maxFields {
			break
		}
		value := fmt.Sprintf("%d units, %s", d.Units, euros(d.Price))
		if d.HasLiters {
			value = fmt.Sprintf("%s, %d units, %s", liters(d.Liters), d.Units, euros(d.Price))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   d.Label,
			Value:  value,
			Inline: true,
		})
	}

	return title, "", fields
}

// renderPersonYear renders a person's calendar year and their current month rank.
// A zero rank means the person is not on this month's board.
func renderPersonYear(year int, ys *stats.YearStats, rank, entrants int) (string, string, []*discordgo.MessageEmbedField) {
	title := fmt.Sprintf("Your %d", year)

	description := "Not on this month's board yet."
	if rank > 0 {
		description = fmt.Sprintf("#%d of %d this month", rank, entrants)
	}

	if ys == nil {
		return title, description + "\nNothing logged this year.", nil
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Liters", Value: liters(ys.LitersTotal), Inline: true},
		{Name: "Units", Value: fmt.Sprint(ys.UnitsTotal), Inline: true},
		{Name: "Spent", Value: euros(ys.PriceTotal), Inline: true},
		{Name: "Active days", Value: fmt.Sprintf("%d (%s per day)", ys.ActiveDays, liters(ys.AvgLitersPerActiveDay)), Inline: true},
		{Name: "Strong days", Value: fmt.Sprint(ys.StrongDays), Inline: true},
		{Name: "Peak", Value: fmt.Sprintf("%s on %s", liters(ys.PeakLiters), day(ys.PeakDay)), Inline: true},
		{Name: "Strongest month", Value: ys.StrongestMonth.String(), Inline: true},
		{Name: "Weakest month", Value: ys.WeakestMonth.String(), Inline: true},
	}

	return title, description, fields
}
