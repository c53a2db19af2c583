package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/openspace/internal/core/domain"
	"github.com/srgjo27/openspace/internal/core/ports"
)

var (
	ErrNoNames   = errors.New("no names to seat")
	ErrInvalidID = errors.New("invalid arrangement id")
)

type SeatRequest struct {
	Names         []string `json:"names"`
	Tables        int      `json:"tables"`
	SeatsPerTable int      `json:"seats_per_table"`
}

type SeatingResult struct {
	Arrangement *domain.Arrangement `json:"arrangement"`
	Room        *domain.OpenSpace   `json:"-"`
	Total       int                 `json:"total"`
	Seated      int                 `json:"seated"`
	Unseated    []string            `json:"unseated"`
	Reason      string              `json:"reason,omitempty"`
}

type Option func(*SeatingService)

// WithCache stores every saved arrangement in cache and reads through it.
func WithCache(cache ports.ArrangementCache) Option {
	return func(s *SeatingService) { s.cache = cache }
}

func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *SeatingService) { s.publisher = publisher }
}

func WithShuffler(rng domain.Shuffler) Option {
	return func(s *SeatingService) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *SeatingService) { s.now = now }
}

type SeatingService struct {
	repo      ports.ArrangementRepository
	cache     ports.ArrangementCache
	publisher ports.EventPublisher
	rng       domain.Shuffler
	now       func() time.Time
}

func NewSeatingService(repo ports.ArrangementRepository, opts ...Option) *SeatingService {
	s := &SeatingService{
		repo: repo,
		rng:  domain.NewShuffler(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SeatFrom loads the names from source and seats them.
func (s *SeatingService) SeatFrom(ctx context.Context, source ports.NameSource, tables, seatsPerTable int) (*SeatingResult, error) {
	names, err := source.LoadNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load names: %w", err)
	}

	return s.Seat(ctx, SeatRequest{Names: names, Tables: tables, SeatsPerTable: seatsPerTable})
}

func (s *SeatingService) Seat(ctx context.Context, req SeatRequest) (*SeatingResult, error) {
	names := domain.CleanNames(req.Names)
	if len(names) == 0 {
		return nil, ErrNoNames
	}

	tables, seats := req.Tables, req.SeatsPerTable
	if tables == 0 {
		tables = domain.DefaultTables
	}
	if seats == 0 {
		seats = domain.DefaultSeatsPerTable
	}

	room, err := domain.NewOpenSpace(tables, seats)
	if err != nil {
		return nil, err
	}

	unseated := room.SeatRandomly(names, s.rng)
	arrangement := domain.NewArrangement(room, unseated, s.now())

	if err := s.repo.Save(ctx, arrangement); err != nil {
		return nil, fmt.Errorf("failed to save arrangement: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, arrangement); err != nil {
			log.Printf("Failed to cache arrangement %s: %v", arrangement.ID, err)
		}
	}

	s.publishSaved(ctx, arrangement)

	result := &SeatingResult{
		Arrangement: arrangement,
		Room:        room,
		Total:       len(names),
		Seated:      len(names) - len(arrangement.Unseated),
		Unseated:    arrangement.Unseated,
	}
	if len(result.Unseated) > 0 {
		result.Reason = room.UnseatedReason()
	}

	return result, nil
}

func (s *SeatingService) publishSaved(ctx context.Context, a *domain.Arrangement) {
	if s.publisher == nil {
		return
	}

	event := domain.ArrangementSaved{
		ID:       a.ID,
		Tables:   a.TableCount,
		Seated:   a.Seated(),
		Unseated: len(a.Unseated),
	}

	if err := s.publisher.Publish(ctx, domain.TopicArrangementSaved, event); err != nil {
		log.Printf("Failed to publish %s for %s: %v", domain.TopicArrangementSaved, a.ID, err)
	}
}

// GetArrangement looks the arrangement up in the cache first, then in the
// repository, backfilling the cache on a repository hit.
func (s *SeatingService) GetArrangement(ctx context.Context, rawID string) (*domain.Arrangement, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if s.cache != nil {
		if a, err := s.cache.Get(ctx, id); err == nil {
			return a, nil
		}
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArrangementNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load arrangement %s: %w", id, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, a); err != nil {
			log.Printf("Failed to cache arrangement %s: %v", id, err)
		}
	}

	return a, nil
}
