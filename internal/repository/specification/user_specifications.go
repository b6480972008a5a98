package specification

import "gorm.io/gorm"

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByTerm filters excluded terms by their lowercase value
type ByTerm struct {
	Term string
}

func (s ByTerm) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("term = ?", s.Term)
}

// ActiveOnly filters prompt contexts on the active flag
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}
