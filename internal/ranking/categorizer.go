package ranking

// tiers is the outcome of category resolution: which ticket landed in which
// tier, plus the scores that defined SECOND and LOWEST.
type tiers struct {
	byParticipation map[uint]Category

	topCount    int
	secondCount int
	lowestCount int

	secondScore *int
	lowestScore *int
}

func (t tiers) categoryOf(participationID uint) Category {
	if c, ok := t.byParticipation[participationID]; ok {
		return c
	}

	return CategoryNone
}

func (t tiers) hasAnyWinner() bool {
	return t.topCount > 0 || t.secondCount > 0 || t.lowestCount > 0
}

// categorize resolves the prize tiers in strict priority order.
//
//   - TOP: the ticket accumulated every one of its N numbers.
//   - SECOND: the highest score among non-TOP tickets with score > 0. This
//     cascades: when nobody reaches N-1 the next score present takes the
//     tier, so SECOND is defined by the population, not by a fixed value.
//   - LOWEST: the minimum score among the remaining tickets with score > 0.
//     Zero-score tickets never win LOWEST.
//   - NONE: everyone else.
//
// When no ticket scored at all, no tier has a winner.
func categorize(entries []Entry, numbersPer int) tiers {
	t := tiers{byParticipation: make(map[uint]Category, len(entries))}

	for _, e := range entries {
		if numbersPer > 0 && e.Score == numbersPer {
			t.byParticipation[e.ParticipationID] = CategoryTop
			t.topCount++
		}
	}

	secondScore := 0
	for _, e := range entries {
		if t.categoryOf(e.ParticipationID) != CategoryNone || e.Score <= 0 {
			continue
		}
		if e.Score > secondScore {
			secondScore = e.Score
		}
	}
	if secondScore > 0 {
		t.secondScore = &secondScore
		for _, e := range entries {
			if t.categoryOf(e.ParticipationID) == CategoryNone && e.Score == secondScore {
				t.byParticipation[e.ParticipationID] = CategorySecond
				t.secondCount++
			}
		}
	}

	lowestScore := 0
	for _, e := range entries {
		if t.categoryOf(e.ParticipationID) != CategoryNone || e.Score <= 0 {
			continue
		}
		if lowestScore == 0 || e.Score < lowestScore {
			lowestScore = e.Score
		}
	}
	if lowestScore > 0 {
		t.lowestScore = &lowestScore
		for _, e := range entries {
			if t.categoryOf(e.ParticipationID) == CategoryNone && e.Score == lowestScore {
				t.byParticipation[e.ParticipationID] = CategoryLowest
				t.lowestCount++
			}
		}
	}

	return t
}
