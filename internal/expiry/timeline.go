package expiry

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

// TimelineGroup is one section of the expiry timeline: every product sharing
// an urgency bucket, sorted by ascending expiry date. Groups are rebuilt
// fresh on every call and never mutated in place.
type TimelineGroup struct {
	Urgency  Urgency          `json:"urgency"`
	Label    string           `json:"label"`
	Icon     string           `json:"icon"`
	Products []models.Product `json:"products"`
}

// GroupByExpiry partitions products into urgency buckets and returns the
// non-empty ones ordered most urgent first. Every product is classified
// against the same today reference so a grouping pass sees one logical "now"
// even if the wall clock crosses midnight mid-call.
//
// A product with a malformed expiry date aborts the pass with ErrInvalidDate.
// Dates are validated on write, so hitting that here means corrupt data, not
// user input. Grouping never drops or duplicates a product: the counts across
// the returned groups always sum to len(products). An empty input yields an
// empty (non-nil) result.
func GroupByExpiry(products []models.Product, today time.Time) ([]TimelineGroup, error) {
	buckets := make(map[Urgency][]models.Product, len(urgencyOrder))
	for _, p := range products {
		u, err := ClassifyDate(p.ExpiryDate, today)
		if err != nil {
			return nil, err
		}
		buckets[u] = append(buckets[u], p)
	}

	groups := make([]TimelineGroup, 0, len(buckets))
	for _, u := range urgencyOrder {
		members := buckets[u]
		if len(members) == 0 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].ExpiryDate < members[j].ExpiryDate
		})
		groups = append(groups, TimelineGroup{
			Urgency:  u,
			Label:    u.Label(),
			Icon:     u.Icon(),
			Products: members,
		})
	}
	return groups, nil
}
