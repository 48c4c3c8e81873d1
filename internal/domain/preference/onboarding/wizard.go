// Package onboarding holds the two-step notification preference wizard.
//
// The wizard first collects a destination (email address or WhatsApp
// number), then at least one content category, and commits the result
// through a Committer exactly once per successful pass. It carries no
// presentation concerns; a UI observes step changes through the
// transition hook and renders or animates them on its own.
package onboarding

import (
	"context"
	"strings"

	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	preferrors "github.com/Conte777/tubedigest/internal/domain/preference/errors"
	"github.com/Conte777/tubedigest/internal/domain/preference/validation"
)

type Step int

const (
	StepDestination Step = iota
	StepCategories
	StepCommitted
)

func (s Step) String() string {
	switch s {
	case StepDestination:
		return "destination"
	case StepCategories:
		return "categories"
	case StepCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Draft is the preference being edited
type Draft struct {
	Kind        entities.ChannelType
	Destination string
	Categories  []string
}

// Committer persists a finished draft
type Committer interface {
	Commit(ctx context.Context, draft Draft) error
}

type CommitFunc func(ctx context.Context, draft Draft) error

func (f CommitFunc) Commit(ctx context.Context, draft Draft) error {
	return f(ctx, draft)
}

type Option func(*Wizard)

// WithCatalogue restricts categories to the given ids
func WithCatalogue(ids []string) Option {
	return func(w *Wizard) {
		w.catalogue = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			w.catalogue[id] = struct{}{}
		}
	}
}

// WithDraft prefills the wizard, e.g. from a stored preference
func WithDraft(d Draft) Option {
	return func(w *Wizard) {
		if d.Kind.Valid() {
			w.kind = d.Kind
		}
		w.destination = d.Destination
		w.categories = append([]string(nil), d.Categories...)
	}
}

// WithTransitionHook registers fn to run after every step change
func WithTransitionHook(fn func(from, to Step)) Option {
	return func(w *Wizard) {
		w.onTransition = fn
	}
}

// Wizard is not safe for concurrent use; each user session owns one.
type Wizard struct {
	step        Step
	kind        entities.ChannelType
	destination string
	categories  []string
	err         error

	committer    Committer
	catalogue    map[string]struct{}
	onTransition func(from, to Step)
}

func New(committer Committer, opts ...Option) *Wizard {
	w := &Wizard{
		step:      StepDestination,
		kind:      entities.ChannelEmail,
		committer: committer,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() Step                 { return w.step }
func (w *Wizard) Kind() entities.ChannelType { return w.kind }
func (w *Wizard) Destination() string        { return w.destination }
func (w *Wizard) Err() error                 { return w.err }

func (w *Wizard) Categories() []string {
	return append([]string(nil), w.categories...)
}

// Draft returns a copy of the current values
func (w *Wizard) Draft() Draft {
	return Draft{Kind: w.kind, Destination: w.destination, Categories: w.Categories()}
}

// SelectKind switches the destination medium. A different kind clears the
// destination typed so far.
func (w *Wizard) SelectKind(kind entities.ChannelType) error {
	if w.step != StepDestination {
		return preferrors.ErrWrongStep
	}
	if !kind.Valid() {
		w.err = preferrors.ErrUnknownChannelType
		return w.err
	}
	if kind != w.kind {
		w.kind = kind
		w.destination = ""
	}
	w.err = nil
	return nil
}

// SubmitDestination validates value for the selected kind and moves on to
// category selection. Nothing is persisted here.
func (w *Wizard) SubmitDestination(value string) error {
	if w.step != StepDestination {
		return preferrors.ErrWrongStep
	}

	w.destination = value
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		w.err = requiredError(w.kind)
		return w.err
	}
	if !validation.Destination(trimmed, w.kind) {
		w.err = invalidError(w.kind)
		return w.err
	}

	w.destination = validation.Normalize(trimmed, w.kind)
	w.err = nil
	w.transition(StepCategories)
	return nil
}

// Back returns to the destination step keeping everything entered so far
func (w *Wizard) Back() error {
	if w.step != StepCategories {
		return preferrors.ErrWrongStep
	}
	w.err = nil
	w.transition(StepDestination)
	return nil
}

// SubmitCategories commits the draft. When the committer fails the wizard
// stays on the category step and the error is returned unchanged.
func (w *Wizard) SubmitCategories(ctx context.Context, categories []string) error {
	if w.step != StepCategories {
		return preferrors.ErrWrongStep
	}

	normalized := validation.NormalizeCategories(categories)
	w.categories = normalized

	if len(normalized) == 0 {
		w.err = preferrors.ErrCategoriesRequired
		return w.err
	}
	if w.catalogue != nil {
		for _, c := range normalized {
			if _, ok := w.catalogue[c]; !ok {
				w.err = preferrors.UnknownCategory(c)
				return w.err
			}
		}
	}

	if err := w.committer.Commit(ctx, w.Draft()); err != nil {
		w.err = err
		return err
	}

	w.err = nil
	w.transition(StepCommitted)
	return nil
}

// Restart re-enters the destination step after a commit. The stored
// preference is untouched until the next commit.
func (w *Wizard) Restart() error {
	if w.step != StepCommitted {
		return preferrors.ErrWrongStep
	}
	w.err = nil
	w.transition(StepDestination)
	return nil
}

func (w *Wizard) transition(to Step) {
	from := w.step
	w.step = to
	if w.onTransition != nil && from != to {
		w.onTransition(from, to)
	}
}

func requiredError(kind entities.ChannelType) error {
	if kind == entities.ChannelWhatsApp {
		return preferrors.ErrWhatsAppRequired
	}
	return preferrors.ErrEmailRequired
}

func invalidError(kind entities.ChannelType) error {
	if kind == entities.ChannelWhatsApp {
		return preferrors.ErrInvalidWhatsApp
	}
	return preferrors.ErrInvalidEmail
}
