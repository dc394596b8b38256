package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	apperrors "draw-tool-backend/internal/common/errors"
	"draw-tool-backend/internal/common/validation"
	"draw-tool-backend/internal/features/draw/models"
	"draw-tool-backend/internal/features/draw/models/dto"
	"draw-tool-backend/internal/features/draw/repository"
	"draw-tool-backend/internal/utils/random"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Options struct {
	MaxEntries int
	KeepTrace  bool
}

type service struct {
	repo    repository.DrawRepository
	opts    Options
	logger  zerolog.Logger
	newSeed func() (uint64, error)
	now     func() time.Time
}

func NewService(repo repository.DrawRepository, opts Options, logger zerolog.Logger) Service {
	return &service{
		repo:    repo,
		opts:    opts,
		logger:  logger.With().Str("component", "draw").Logger(),
		newSeed: random.NewSeed,
		now:     time.Now,
	}
}

// Replay shuffles a copy of entries with a source seeded from seed. It
// returns the order and the number of values drawn.
func Replay(entries []string, seed uint64) ([]string, int) {
	counter := random.NewCounter(random.NewSeeded(seed))
	order := random.Shuffle(slices.Clone(entries), counter)
	return order, counter.Count()
}

func (s *service) validate(entries []string, winnersCount int) error {
	if len(entries) > s.opts.MaxEntries {
		return apperrors.New(apperrors.ErrCodeTooManyEntries,
			fmt.Sprintf("Too many entries: %d (max %d)", len(entries), s.opts.MaxEntries)).
			WithDetail("entries", len(entries)).
			WithDetail("max", s.opts.MaxEntries)
	}
	if i, err := validation.ValidateEntries(entries); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("entries[%d]", i), err.Error())
	}
	if winnersCount < 0 || winnersCount > len(entries) {
		return apperrors.New(apperrors.ErrCodeInvalidWinners,
			fmt.Sprintf("Winners count must be between 0 and %d", len(entries))).
			WithDetail("winners_count", winnersCount)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req *dto.CreateDrawRequest) (*models.Draw, error) {
	if err := s.validate(req.Entries, req.WinnersCount); err != nil {
		return nil, err
	}

	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		if seed, err = s.newSeed(); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeRandomSource, "Failed to generate seed")
		}
	}

	var src random.Source = random.NewSeeded(seed)
	var recorder *random.Recorder
	if s.opts.KeepTrace {
		recorder = random.NewRecorder(src)
		src = recorder
	}
	counter := random.NewCounter(src)

	entries := slices.Clone(req.Entries)
	if entries == nil {
		entries = []string{}
	}
	order := random.Shuffle(slices.Clone(entries), counter)

	winners := make([]models.Winner, req.WinnersCount)
	for i := range winners {
		winners[i] = models.Winner{Entry: order[i], Place: i + 1}
	}

	draw := &models.Draw{
		ID:           uuid.New().String(),
		Seed:         seed,
		Entries:      entries,
		Order:        order,
		Winners:      winners,
		WinnersCount: req.WinnersCount,
		Draws:        counter.Count(),
		CreatedAt:    s.now().UTC(),
	}
	if recorder != nil {
		draw.Trace = recorder.Steps()
	}

	if err := s.repo.Save(ctx, draw); err != nil {
		return nil, apperrors.NewStorageError("save draw", err)
	}

	s.logger.Info().
		Str("draw_id", draw.ID).
		Int("entries", len(entries)).
		Int("winners", len(winners)).
		Int("draws", draw.Draws).
		Msg("Draw created")

	return draw, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Draw, error) {
	draw, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("get draw", err)
	}
	if draw == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return draw, nil
}

func (s *service) Verify(ctx context.Context, id string) (*models.Verification, error) {
	draw, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	expected, draws := Replay(draw.Entries, draw.Seed)
	v := &models.Verification{
		DrawID:   draw.ID,
		Expected: expected,
		Actual:   draw.Order,
		Mismatch: firstMismatch(expected, draw.Order),
	}
	switch {
	case v.Mismatch != -1:
		v.Reason = "order"
	case draw.Draws != draws:
		v.Reason = "draws"
	case !winnersMatch(draw, expected):
		v.Reason = "winners"
	}
	v.Valid = v.Reason == ""

	if !v.Valid {
		s.logger.Warn().
			Str("draw_id", draw.ID).
			Int("mismatch", v.Mismatch).
			Str("reason", v.Reason).
			Msg("Draw failed verification")
	}
	return v, nil
}

func (s *service) Preview(_ context.Context, req *dto.PreviewRequest) (*dto.PreviewResponse, error) {
	if req.Seed == nil {
		return nil, apperrors.NewValidationError("seed", "required")
	}
	if err := s.validate(req.Entries, 0); err != nil {
		return nil, err
	}
	order, draws := Replay(req.Entries, *req.Seed)
	if order == nil {
		order = []string{}
	}
	return &dto.PreviewResponse{Order: order, Draws: draws}, nil
}

func firstMismatch(a, b []string) int {
	for i := range max(len(a), len(b)) {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			return i
		}
	}
	return -1
}

// winnersMatch reports whether the stored winners are the first
// WinnersCount entries of order, placed 1..n.
func winnersMatch(draw *models.Draw, order []string) bool {
	if draw.WinnersCount < 0 || draw.WinnersCount > len(order) || len(draw.Winners) != draw.WinnersCount {
		return false
	}
	for i, w := range draw.Winners {
		if w.Entry != order[i] || w.Place != i+1 {
			return false
		}
	}
	return true
}
