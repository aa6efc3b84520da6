package services

import (
	"context"
	"fmt"
	"time"

	"offerboard/internal/domain"
)

type offerService struct {
	offerRepo      domain.OfferRepository
	tagRepo        domain.TagRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewOfferService returns the domain.OfferService backed by the given repositories.
// Every call runs with the given timeout.
func NewOfferService(offerRepo domain.OfferRepository, tagRepo domain.TagRepository, timeout time.Duration) domain.OfferService {
	return &offerService{
		offerRepo:      offerRepo,
		tagRepo:        tagRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *offerService) List(ctx context.Context, page int) (*domain.Page[*domain.Offer], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.offerRepo.FindAllPaginated(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return p, nil
}

func (s *offerService) Get(ctx context.Context, id int64) (*domain.Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	offer, err := s.offerRepo.FindOneByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	return offer, nil
}

func (s *offerService) Create(ctx context.Context, offer *domain.Offer, tagNames []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	offer.ID = 0
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = s.now()
	}
	tags, err := s.ensureTags(ctx, tagNames)
	if err != nil {
		return err
	}
	offer.Tags = tags

	return s.offerRepo.Save(ctx, offer)
}

// Update replaces every field of the stored offer with the given values.
// A zero CreatedAt keeps the stored creation time.
func (s *offerService) Update(ctx context.Context, id int64, offer *domain.Offer, tagNames []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.offerRepo.FindOneByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get offer: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	offer.ID = id
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = existing.CreatedAt
	}
	tags, err := s.ensureTags(ctx, tagNames)
	if err != nil {
		return err
	}
	offer.Tags = tags

	return s.offerRepo.Save(ctx, offer)
}

func (s *offerService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.offerRepo.FindOneByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get offer: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.offerRepo.Delete(ctx, existing)
}

func (s *offerService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *offerService) ensureTags(ctx context.Context, names []string) ([]*domain.Tag, error) {
	tags := make([]*domain.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.EnsureTag(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("ensure tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
