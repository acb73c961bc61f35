package usecase

import (
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
)

// UniformizeTags assigns each resource's most recent Tags value to every
// row of that resource, so a tag added or corrected mid-period applies to
// the whole batch before extraction. Rows without a resource name are left
// alone; a resource with a single row is trivially uniform. On equal
// dates the first observed row wins; rows without a parseable date rank
// oldest.
func UniformizeTags(items []entity.LineItem) []entity.LineItem {
	type latest struct {
		date time.Time
		tags string
		rows int
	}

	byResource := make(map[string]*latest)
	for _, item := range items {
		if item.ResourceName == "" {
			continue
		}
		l := byResource[item.ResourceName]
		if l == nil {
			byResource[item.ResourceName] = &latest{date: item.ParsedDate, tags: item.Tags, rows: 1}
			continue
		}
		l.rows++
		if item.ParsedDate.After(l.date) {
			l.date = item.ParsedDate
			l.tags = item.Tags
		}
	}

	for i := range items {
		l := byResource[items[i].ResourceName]
		if l == nil || l.rows < 2 {
			continue
		}
		items[i].Tags = l.tags
	}
	return items
}
