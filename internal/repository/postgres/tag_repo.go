package postgres

import (
	"context"
	"database/sql"
	"errors"

	"offerboard/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) EnsureTag(ctx context.Context, name string) (*domain.Tag, error) {
	tag := &domain.Tag{Name: name}
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = $1`, name).Scan(&tag.ID)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	err = r.DB.QueryRowContext(ctx, `INSERT INTO tags (name) VALUES ($1) RETURNING id`, name).Scan(&tag.ID)
	if err != nil {
		// Another request created the tag between our select and insert.
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			if err := r.DB.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = $1`, name).Scan(&tag.ID); err != nil {
				return nil, err
			}
			return tag, nil
		}
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

func removeOfferTags(ctx context.Context, q querier, offerID int64) error {
	_, err := q.ExecContext(ctx, `DELETE FROM offers_tags WHERE offer_id = $1`, offerID)
	return err
}

func linkOfferTags(ctx context.Context, q querier, offerID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO offers_tags (offer_id, tag_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT (offer_id, tag_id) DO NOTHING`,
		offerID, pq.Array(tagIDs))
	return err
}

// loadOfferTags fills Tags on every offer with a single query. Offers without
// links get an empty slice.
func loadOfferTags(ctx context.Context, q querier, offers []*domain.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Offer, len(offers))
	ids := make([]int64, 0, len(offers))
	for _, o := range offers {
		o.Tags = []*domain.Tag{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	rows, err := q.QueryContext(ctx,
		`SELECT ot.offer_id, t.id, t.name FROM tags t
		 JOIN offers_tags ot ON ot.tag_id = t.id
		 WHERE ot.offer_id = ANY($1)
		 ORDER BY t.name`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var offerID int64
		var tag domain.Tag
		if err := rows.Scan(&offerID, &tag.ID, &tag.Name); err != nil {
			return err
		}
		if o, ok := byID[offerID]; ok {
			o.Tags = append(o.Tags, &tag)
		}
	}
	return rows.Err()
}
