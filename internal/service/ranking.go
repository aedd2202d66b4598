package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/ranking"
)

var ErrInvalidPercentages = ranking.ErrInvalidPercentages

type RankingContestRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
}

type RankingDrawRepository interface {
	ListByContestID(ctx context.Context, contestID uint) ([]domain.Draw, error)
}

type RankingParticipationRepository interface {
	ListActiveByContestID(ctx context.Context, contestID uint) ([]domain.Participation, error)
}

type RankingPaymentRepository interface {
	SumPaidByContestID(ctx context.Context, contestID uint) (float64, error)
}

type RankingService struct {
	contestRepo       RankingContestRepository
	drawRepo          RankingDrawRepository
	participationRepo RankingParticipationRepository
	paymentRepo       RankingPaymentRepository
}

func NewRankingService(
	contestRepo RankingContestRepository,
	drawRepo RankingDrawRepository,
	participationRepo RankingParticipationRepository,
	paymentRepo RankingPaymentRepository,
) *RankingService {
	return &RankingService{
		contestRepo:       contestRepo,
		drawRepo:          drawRepo,
		participationRepo: participationRepo,
		paymentRepo:       paymentRepo,
	}
}

// GetRanking assembles the contest snapshot and runs the prize computation.
// A non-zero selectedDrawID narrows the view to draws up to that one.
func (s *RankingService) GetRanking(ctx context.Context, contestID, selectedDrawID uint) (ranking.Result, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	draws, err := s.drawRepo.ListByContestID(ctx, contestID)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("s.drawRepo.ListByContestID -> %w", err)
	}

	participations, err := s.participationRepo.ListActiveByContestID(ctx, contestID)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("s.participationRepo.ListActiveByContestID -> %w", err)
	}

	totalRevenue, err := s.paymentRepo.SumPaidByContestID(ctx, contestID)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("s.paymentRepo.SumPaidByContestID -> %w", err)
	}

	result, err := ranking.Calculate(ranking.Input{
		Contest:        contest,
		Draws:          draws,
		Participations: participations,
		SelectedDrawID: selectedDrawID,
		TotalRevenue:   totalRevenue,
	})
	if err != nil {
		return ranking.Result{}, fmt.Errorf("ranking.Calculate -> %w", err)
	}

	return result, nil
}

// ExportCSV streams the ranking as a spreadsheet-friendly report.
func (s *RankingService) ExportCSV(ctx context.Context, w io.Writer, contestID, selectedDrawID uint) error {
	result, err := s.GetRanking(ctx, contestID, selectedDrawID)
	if err != nil {
		return fmt.Errorf("s.GetRanking -> %w", err)
	}

	writer := csv.NewWriter(w)

	header := []string{"position", "ticket_code", "user_name", "numbers", "hit_numbers", "score", "category", "prize_value"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writer.Write -> %w", err)
	}

	for _, entry := range result.Entries {
		record := []string{
			strconv.Itoa(entry.Position),
			entry.TicketCode,
			entry.UserName,
			joinInts(entry.Numbers),
			joinInts(entry.HitNumbers),
			strconv.Itoa(entry.Score),
			string(entry.Category),
			strconv.FormatFloat(entry.PrizeValue, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writer.Write -> %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Error -> %w", err)
	}

	return nil
}

// CSVFileName builds a timestamped attachment name for the export.
func CSVFileName(contestID uint, now time.Time) string {
	return fmt.Sprintf("ranking-contest-%v-%v.csv", contestID, now.Format("20060102-150405"))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
