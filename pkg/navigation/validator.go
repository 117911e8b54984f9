package navigation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mchmarny/navaug/pkg/i18n"
	"github.com/mchmarny/navaug/pkg/links"
	"github.com/mchmarny/navaug/pkg/menu"
)

// Field names of a links row, in column order.
const (
	FieldName = "name"
	FieldID   = "id"
	FieldURL  = "url"
)

var (
	// namePattern is unanchored, so any non-empty line passes.
	namePattern = regexp.MustCompile(`.+`)
	idPattern   = regexp.MustCompile(`^([A-Za-z0-9]+-?)+$`)
	// urlPattern checks scheme and host shape only; path, query and fragment are not inspected.
	urlPattern = regexp.MustCompile(`^https?://[A-Za-z0-9]+(\.[A-Za-z0-9]+)+`)
)

// Record is a links row that passed validation.
type Record struct {
	Name      string `json:"name" validate:"navname"`
	ID        string `json:"id" validate:"navid"`
	URL       string `json:"url" validate:"navurl"`
	HasActive bool   `json:"has_active"`
	IsActive  bool   `json:"is_active"`
}

// Data returns the record as the field map handed to a menu.NodeFactory.
func (r Record) Data() menu.Data {
	return menu.Data{
		FieldName:    r.Name,
		FieldID:      r.ID,
		FieldURL:     r.URL,
		"has_active": r.HasActive,
		"is_active":  r.IsActive,
	}
}

// RowError describes a rejected links row.
type RowError struct {
	// Field is the first field that failed, one of FieldName, FieldID, FieldURL.
	Field string
	// Index is the column of Field.
	Index int
	// Value is the offending field value.
	Value string
	// Row is the complete original row.
	Row links.Row
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid %s %q in navigation row: %s", e.Field, e.Value, e.Row)
}

var fieldIndex = map[string]int{FieldName: 0, FieldID: 1, FieldURL: 2}

// Validator turns links rows into records.
type Validator struct {
	validate   *validator.Validate
	translator i18n.Translator
}

// NewValidator builds a Validator that passes accepted names through tr.
// A nil tr leaves names unchanged.
func NewValidator(tr i18n.Translator) *Validator {
	if tr == nil {
		tr = i18n.Identity
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	mustRegister(v, "navname", namePattern)
	mustRegister(v, "navid", idPattern)
	mustRegister(v, "navurl", urlPattern)

	return &Validator{validate: v, translator: tr}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Build validates row and returns its record. Fields are checked in column order
// and the first failure is reported as a *RowError. Missing columns count as
// empty and columns past the third are ignored.
func (v *Validator) Build(row links.Row) (Record, error) {
	rec := Record{
		Name: row.Field(0),
		ID:   row.Field(1),
		URL:  row.Field(2),
	}

	if err := v.validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return Record{}, fmt.Errorf("validate navigation row: %w", err)
		}

		first := verrs[0]
		for _, fe := range verrs[1:] {
			if fieldIndex[fe.Field()] < fieldIndex[first.Field()] {
				first = fe
			}
		}

		return Record{}, &RowError{
			Field: first.Field(),
			Index: fieldIndex[first.Field()],
			Value: row.Field(fieldIndex[first.Field()]),
			Row:   row,
		}
	}

	rec.Name = v.translator.Translate(rec.Name)
	return rec, nil
}
