package insights

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/rs/zerolog/log"
)

// Narrator writes texts about the cash flow.
type Narrator struct {
	generator Generator
	money     Money
}

// NewNarrator returns a Narrator. A nil generator makes every call fail with
// ErrNotConfigured.
func NewNarrator(generator Generator, money Money) *Narrator {
	return &Narrator{generator: generator, money: money}
}

// Enabled reports if a generator is configured.
func (n *Narrator) Enabled() bool {
	return n != nil && n.generator != nil
}

// Summary describes the projection.
func (n *Narrator) Summary(ctx context.Context, p cashflow.Projection) (string, error) {
	if !n.Enabled() {
		return "", ErrNotConfigured
	}

	return n.generate(ctx, "summary", summaryPrompt(n.money, p))
}

// Reminder writes a payment reminder for the check or invoice.
func (n *Narrator) Reminder(ctx context.Context, t models.Transaction, today types.Date) (string, error) {
	if !n.Enabled() {
		return "", ErrNotConfigured
	}

	return n.generate(ctx, "reminder", reminderPrompt(n.money, t, today))
}

func (n *Narrator) generate(ctx context.Context, kind, prompt string) (string, error) {
	text, err := n.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("Text generation")
		if !errors.Is(err, ErrUpstream) {
			err = fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		return "", err
	}

	return text, nil
}
