// Package navigation injects custom entries from a LINKS.csv file into a menu
// tree before the host renders it.
package navigation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mchmarny/navaug/pkg/i18n"
	"github.com/mchmarny/navaug/pkg/links"
	"github.com/mchmarny/navaug/pkg/menu"
	"github.com/mchmarny/navaug/pkg/metric"
)

const (
	// MsgExecuting is recorded at the start of every pass.
	MsgExecuting = "custom navigation augmenter executing"

	// IDField is the data key holding a node identifier.
	IDField = FieldID
)

// Augmenter appends custom links to a menu tree.
type Augmenter struct {
	path       string
	factory    menu.NodeFactory
	translator i18n.Translator
	diagEnable bool
	log        *slog.Logger
	rows       metric.IncrementalCounter

	validator *Validator
	diag      *Diagnostics
}

// Option is a functional option for configuring the Augmenter.
type Option func(*Augmenter)

// WithInstallDir sets the component install directory; the links file is
// expected two levels above it.
func WithInstallDir(dir string) Option {
	return func(a *Augmenter) { a.path = links.Path(dir) }
}

// WithLinksPath sets the links file location directly.
func WithLinksPath(path string) Option {
	return func(a *Augmenter) { a.path = path }
}

// WithNodeFactory sets the factory used to build nodes. Defaults to menu.ItemFactory.
func WithNodeFactory(f menu.NodeFactory) Option {
	return func(a *Augmenter) { a.factory = f }
}

// WithTranslator sets the display name translator. Defaults to i18n.Identity.
func WithTranslator(t i18n.Translator) Option {
	return func(a *Augmenter) { a.translator = t }
}

// WithDiagnostics turns rejection logging on or off. Defaults to on.
func WithDiagnostics(enabled bool) Option {
	return func(a *Augmenter) { a.diagEnable = enabled }
}

// WithLogger sets the logger diagnostics are written to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Augmenter) { a.log = l }
}

// WithRowCounter counts rows by result and failing field.
func WithRowCounter(c metric.IncrementalCounter) Option {
	return func(a *Augmenter) { a.rows = c }
}

// New creates an Augmenter. Without WithInstallDir or WithLinksPath the links
// file is resolved relative to the working directory.
func New(opts ...Option) *Augmenter {
	a := &Augmenter{
		path:       links.Path("."),
		factory:    menu.ItemFactory,
		translator: i18n.Identity,
		diagEnable: true,
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.validator = NewValidator(a.translator)
	a.diag = NewDiagnostics(a.diagEnable, a.log)

	return a
}

// Path returns the links file location.
func (a *Augmenter) Path() string {
	return a.path
}

// Validator returns the row validator used by the augmenter.
func (a *Augmenter) Validator() *Validator {
	return a.validator
}

// Augment adds one child to tree for every valid row of the links file.
// The render options are accepted so the call matches the render it precedes;
// they are not used. A missing links file adds nothing. Invalid rows are
// recorded and skipped. Only a failure to read an existing file is returned.
func (a *Augmenter) Augment(tree menu.Tree, _ menu.RenderOptions) error {
	diag := a.diag.with("pass_id", uuid.NewString())
	diag.Record(MsgExecuting)

	if !links.Exists(a.path) {
		return nil
	}

	rows, err := links.Read(a.path)
	if err != nil {
		return err
	}

	a.apply(tree, rows, diag)
	return nil
}

// Apply adds the valid rows to tree without touching the filesystem and
// returns how many were added.
func (a *Augmenter) Apply(tree menu.Tree, rows []links.Row) int {
	return a.apply(tree, rows, a.diag)
}

func (a *Augmenter) apply(tree menu.Tree, rows []links.Row, diag *Diagnostics) int {
	added := 0
	for _, row := range rows {
		rec, err := a.validator.Build(row)
		if err != nil {
			a.reject(diag, row, err)
			continue
		}

		node := a.factory.Create(rec.Data(), IDField, tree)
		tree.AddChild(node)
		a.count(metric.ResultAccepted, "")
		added++
	}
	return added
}

func (a *Augmenter) reject(diag *Diagnostics, row links.Row, err error) {
	field := ""
	var rerr *RowError
	if errors.As(err, &rerr) {
		field = rerr.Field
	}

	diag.Record(fmt.Sprintf("error parsing the %s of navigation row: %s", field, row))
	a.count(metric.ResultRejected, field)
}

func (a *Augmenter) count(result, field string) {
	if a.rows != nil {
		a.rows.Increment(result, field)
	}
}

// BeforeRender adapts the augmenter to a menu render hook.
func (a *Augmenter) BeforeRender() menu.BeforeRender {
	return func(m *menu.Menu, opts menu.RenderOptions) error {
		return a.Augment(m, opts)
	}
}
