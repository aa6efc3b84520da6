package domain

import (
	"context"
	"strconv"
	"time"
)

// OffersPerPage is the number of offers on one page of the listing.
const OffersPerPage = 10

// Offer is an announcement posted by an author in a category, city and region.
// swagger:model Offer
type Offer struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	CategoryID int64     `json:"category_id"`
	CityID     int64     `json:"city_id"`
	RegionID   int64     `json:"region_id"`
	Content    string    `json:"content"`
	EventDate  time.Time `json:"event_date"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	Tags       []*Tag    `json:"tags"`
}

// NewOffer returns a new, not yet persisted Offer. ID is set by the repository on save.
func NewOffer(authorID, categoryID, cityID, regionID int64, content string, eventDate time.Time) *Offer {
	return &Offer{
		AuthorID:   authorID,
		CategoryID: categoryID,
		CityID:     cityID,
		RegionID:   regionID,
		Content:    content,
		EventDate:  eventDate,
		Tags:       []*Tag{},
	}
}

// IsPersisted reports whether the offer carries a store-assigned key.
// Zero and negative IDs mean the offer is new.
func (o *Offer) IsPersisted() bool {
	return o != nil && o.ID > 0
}

// TagIDs returns the IDs of the offer's tags, skipping tags without one.
func (o *Offer) TagIDs() []int64 {
	ids := make([]int64, 0, len(o.Tags))
	for _, t := range o.Tags {
		if t != nil && t.ID > 0 {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// ParseOfferID parses a textual offer ID. Only a non-empty run of ASCII digits
// with a positive value is accepted; anything else reports ok=false and must be
// treated as "no ID".
func ParseOfferID(s string) (id int64, ok bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// OfferRepository is the persistence gateway for offers. Save and Delete each
// run in their own transaction.
type OfferRepository interface {
	FindAll(ctx context.Context) ([]*Offer, error)
	FindAllPaginated(ctx context.Context, page int) (*Page[*Offer], error)
	// FindOneByID returns (nil, nil) when no offer has the given ID.
	FindOneByID(ctx context.Context, id int64) (*Offer, error)
	// Save updates the offer when it is persisted and inserts it otherwise.
	Save(ctx context.Context, offer *Offer) error
	Delete(ctx context.Context, offer *Offer) error
}

// OfferService defines the business logic behind the offer endpoints.
type OfferService interface {
	List(ctx context.Context, page int) (*Page[*Offer], error)
	Get(ctx context.Context, id int64) (*Offer, error)
	Create(ctx context.Context, offer *Offer, tagNames []string) error
	Update(ctx context.Context, id int64, offer *Offer, tagNames []string) error
	Delete(ctx context.Context, id int64) error
	ListTags(ctx context.Context) ([]*Tag, error)
}
