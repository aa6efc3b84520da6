package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"offerboard/internal/domain"
)

const offerColumns = `o.id, o.author_id, o.category_id, o.city_id, o.region_id, o.content, o.event_date, o.created_at, o.modified_at`

type offerRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewOfferRepository returns a domain.OfferRepository implemented with Postgres.
func NewOfferRepository(db *sql.DB) domain.OfferRepository {
	return &offerRepository{
		DB:  db,
		now: time.Now,
	}
}

func (r *offerRepository) FindAll(ctx context.Context) ([]*domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers o
		ORDER BY o.id
	`
	return r.list(ctx, query)
}

func (r *offerRepository) FindAllPaginated(ctx context.Context, page int) (*domain.Page[*domain.Offer], error) {
	return domain.Paginate[*domain.Offer](ctx, offerPageSource{repo: r}, page, domain.OffersPerPage)
}

func (r *offerRepository) FindOneByID(ctx context.Context, id int64) (*domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers o
		WHERE o.id = $1
	`
	o := &domain.Offer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.AuthorID, &o.CategoryID, &o.CityID, &o.RegionID,
		&o.Content, &o.EventDate, &o.CreatedAt, &o.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := loadOfferTags(ctx, r.DB, []*domain.Offer{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// Save writes every column of o. A persisted offer is updated in place by its
// ID; any other offer is inserted and receives the new ID. Tag links are
// replaced in the same transaction. o is only modified after commit.
func (r *offerRepository) Save(ctx context.Context, o *domain.Offer) error {
	modifiedAt := r.now()
	id := o.ID
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if o.IsPersisted() {
			query := `
				UPDATE offers
				SET author_id = $1, category_id = $2, city_id = $3, region_id = $4,
					content = $5, event_date = $6, created_at = $7, modified_at = $8
				WHERE id = $9
			`
			if _, err := tx.ExecContext(ctx, query,
				o.AuthorID, o.CategoryID, o.CityID, o.RegionID,
				o.Content, o.EventDate, o.CreatedAt, modifiedAt, o.ID,
			); err != nil {
				return err
			}
			if err := removeOfferTags(ctx, tx, o.ID); err != nil {
				return err
			}
			return linkOfferTags(ctx, tx, o.ID, o.TagIDs())
		}

		query := `
			INSERT INTO offers (author_id, category_id, city_id, region_id, content, event_date, created_at, modified_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query,
			o.AuthorID, o.CategoryID, o.CityID, o.RegionID,
			o.Content, o.EventDate, o.CreatedAt, modifiedAt,
		).Scan(&id); err != nil {
			return err
		}
		return linkOfferTags(ctx, tx, id, o.TagIDs())
	})
	if err != nil {
		return err
	}
	o.ID = id
	o.ModifiedAt = modifiedAt
	return nil
}

// Delete removes the offer row and its tag links. Deleting a missing ID is a no-op.
func (r *offerRepository) Delete(ctx context.Context, o *domain.Offer) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if err := removeOfferTags(ctx, tx, o.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM offers WHERE id = $1`, o.ID)
		return err
	})
}

func (r *offerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Offer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		o := &domain.Offer{}
		if err := rows.Scan(
			&o.ID, &o.AuthorID, &o.CategoryID, &o.CityID, &o.RegionID,
			&o.Content, &o.EventDate, &o.CreatedAt, &o.ModifiedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := loadOfferTags(ctx, r.DB, offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// offerPageSource adapts the offers projection to domain.PageSource.
type offerPageSource struct {
	repo *offerRepository
}

func (s offerPageSource) Count(ctx context.Context) (int, error) {
	var total int
	err := s.repo.DB.QueryRowContext(ctx, `SELECT COUNT(DISTINCT o.id) AS total_results FROM offers o`).Scan(&total)
	return total, err
}

func (s offerPageSource) Window(ctx context.Context, limit, offset int) ([]*domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers o
		ORDER BY o.id
		LIMIT $1 OFFSET $2
	`
	return s.repo.list(ctx, query, limit, offset)
}
