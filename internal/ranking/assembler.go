package ranking

import "sort"

// assemble joins categorization with payouts and produces the final sorted
// result. Display order is score descending, creation time ascending (an
// earlier ticket ranks higher), participation id as the last tiebreak so the
// output is byte-identical across runs.
func assemble(entries []Entry, t tiers, p pools, invalidCount, malformedCount int) Result {
	for i := range entries {
		category := t.categoryOf(entries[i].ParticipationID)
		entries[i].Category = category
		entries[i].IsWinner = category != CategoryNone
		entries[i].PrizeValue = p.perWinner(category)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}

		return entries[i].ParticipationID < entries[j].ParticipationID
	})

	maxScore := 0
	for i := range entries {
		entries[i].Position = i + 1
		if entries[i].Score > maxScore {
			maxScore = entries[i].Score
		}
	}

	return Result{
		Entries: entries,
		Summary: Summary{
			TopWinnersCount:              t.topCount,
			SecondWinnersCount:           t.secondCount,
			LowestWinnersCount:           t.lowestCount,
			MaxScore:                     maxScore,
			LowestWinningScore:           t.lowestScore,
			HasAnyWinner:                 t.hasAnyWinner(),
			InvalidParticipationsCount:   invalidCount,
			MalformedParticipationsCount: malformedCount,
		},
	}
}
