// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"math"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Stats recomputes the KPIs on every call. Revenue is rounded to cents
// and satisfaction to one decimal, half away from zero.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	commercial, err := s.repo.Commercial(ctx)
	if err != nil {
		return nil, err
	}

	qualite, err := s.repo.Quality(ctx)
	if err != nil {
		return nil, err
	}

	commercial.CaSigne = round(commercial.CaSigne, 2)
	qualite.ScoreSatisfactionMoyen = round(qualite.ScoreSatisfactionMoyen, 1)

	return &Stats{
		Commercial: commercial,
		Qualite:    qualite,
	}, nil
}

func (s *Service) TableCounts(ctx context.Context) (map[string]int, error) {
	return s.repo.TableCounts(ctx)
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
