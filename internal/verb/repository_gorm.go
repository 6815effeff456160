package verb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type verbRow struct {
	ID         uint   `gorm:"primaryKey"`
	Infinitive string `gorm:"type:text;not null;uniqueIndex"`
	Ja         string `gorm:"type:text;not null"`

	Forms []formRow `gorm:"foreignKey:VerbID;constraint:OnDelete:CASCADE"`
}

func (verbRow) TableName() string { return "verbs" }

type formRow struct {
	ID       uint    `gorm:"primaryKey"`
	VerbID   uint    `gorm:"not null;index"`
	Position int     `gorm:"not null"`
	Tense    string  `gorm:"type:text;not null"`
	Pronoun  string  `gorm:"type:text;not null"`
	Value    string  `gorm:"type:text;not null"`
	Gender   *string `gorm:"type:text"`
}

func (formRow) TableName() string { return "verb_forms" }

type gormSource struct {
	db *gorm.DB
}

// NewGormSource reads the catalog from the verbs and verb_forms tables.
func NewGormSource(db *gorm.DB) Source {
	return &gormSource{db: db}
}

func (s *gormSource) LoadVerbs(ctx context.Context) ([]Verb, error) {
	var rows []verbRow
	err := s.db.WithContext(ctx).
		Preload("Forms", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Order("infinitive ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query verbs: %w", err)
	}

	verbs := make([]Verb, 0, len(rows))
	for _, row := range rows {
		verbs = append(verbs, row.toVerb())
	}
	return verbs, nil
}

func (r verbRow) toVerb() Verb {
	v := Verb{
		Infinitive: r.Infinitive,
		Ja:         r.Ja,
		Forms:      make([]Form, 0, len(r.Forms)),
	}
	for _, f := range r.Forms {
		form := Form{Tense: f.Tense, Pronoun: f.Pronoun, Value: f.Value}
		if f.Gender != nil {
			form.Gender = *f.Gender
		}
		v.Forms = append(v.Forms, form)
	}
	return v
}
