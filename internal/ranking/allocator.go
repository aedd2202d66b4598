package ranking

import (
	"errors"
	"fmt"
	"math"

	"github.com/bolaohub/bolao-api/internal/domain"
)

// ErrInvalidPercentages is returned when the contest's four prize
// percentages do not sum to 100. The engine aborts instead of normalizing:
// a broken split configuration must be fixed, never silently paid out.
var ErrInvalidPercentages = errors.New("prize percentages must sum to 100")

func validatePercentages(c domain.Contest) error {
	sum := c.PercentagesSum()
	if math.Abs(sum-100) > domain.PercentageTolerance {
		return fmt.Errorf("%w: got %.2f", ErrInvalidPercentages, sum)
	}

	return nil
}

// pools carries the per-category prize money. A category with no winners
// gets a zero pool; unclaimed pools are NOT redistributed to other tiers.
// The admin fee is reserved off the top and never paid to a participant.
type pools struct {
	topPool    float64
	secondPool float64
	lowestPool float64
	adminFee   float64

	perTopWinner    float64
	perSecondWinner float64
	perLowestWinner float64
}

func (p pools) perWinner(c Category) float64 {
	switch c {
	case CategoryTop:
		return p.perTopWinner
	case CategorySecond:
		return p.perSecondWinner
	case CategoryLowest:
		return p.perLowestWinner
	default:
		return 0
	}
}

// allocate splits totalRevenue across the winning categories. Each
// percentage applies to the FULL collected total, not to the total minus the
// admin fee.
func allocate(c domain.Contest, totalRevenue float64, t tiers) pools {
	p := pools{
		adminFee: totalRevenue * c.AdminFeePct / 100,
	}

	if t.topCount > 0 {
		p.topPool = totalRevenue * c.TopPct / 100
		p.perTopWinner = p.topPool / float64(t.topCount)
	}
	if t.secondCount > 0 {
		p.secondPool = totalRevenue * c.SecondPct / 100
		p.perSecondWinner = p.secondPool / float64(t.secondCount)
	}
	if t.lowestCount > 0 {
		p.lowestPool = totalRevenue * c.LowestPct / 100
		p.perLowestWinner = p.lowestPool / float64(t.lowestCount)
	}

	return p
}
