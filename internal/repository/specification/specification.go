package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply any number of them
// before executing, so filters, ordering and paging compose freely.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
