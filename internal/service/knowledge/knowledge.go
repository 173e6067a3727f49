// Package knowledge runs reasoning plans against the reasoning port and
// hands the aggregated outcomes to an assistant for synthesis.
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// Command is a single reasoning step in a plan. The set of commands is
// closed: Ancestors, Descendants, RelatedIndividuals and ShortestPath.
type Command interface {
	isCommand()
}

// AncestorsCommand requests the transitive closure of parent classes.
type AncestorsCommand struct {
	Class domain.IRI
}

func (AncestorsCommand) isCommand() {}

// DescendantsCommand requests the direct subclasses of a class.
type DescendantsCommand struct {
	Class domain.IRI
}

func (DescendantsCommand) isCommand() {}

// RelatedIndividualsCommand requests individuals reachable through one
// object property assertion.
type RelatedIndividualsCommand struct {
	Property   domain.IRI
	Individual domain.IRI
}

func (RelatedIndividualsCommand) isCommand() {}

// ShortestPathCommand requests the shortest assertion path between two
// individuals.
type ShortestPathCommand struct {
	Start domain.IRI
	End   domain.IRI
}

func (ShortestPathCommand) isCommand() {}

// Outcome is the result of one executed Command. Kind returns a stable
// tag for serialization; Describe renders a human readable summary.
type Outcome interface {
	isOutcome()
	Kind() string
	Describe() string
}

// AncestorsOutcome carries the result of an AncestorsCommand.
type AncestorsOutcome struct {
	Class     domain.IRI
	Ancestors []domain.IRI
}

func (AncestorsOutcome) isOutcome() {}

func (AncestorsOutcome) Kind() string { return "ancestors" }

func (o AncestorsOutcome) Describe() string {
	return describeList(
		fmt.Sprintf("Ancestors of class `%s` (%d items):", o.Class, len(o.Ancestors)),
		o.Ancestors,
	)
}

// DescendantsOutcome carries the result of a DescendantsCommand.
type DescendantsOutcome struct {
	Class       domain.IRI
	Descendants []domain.IRI
}

func (DescendantsOutcome) isOutcome() {}

func (DescendantsOutcome) Kind() string { return "descendants" }

func (o DescendantsOutcome) Describe() string {
	return describeList(
		fmt.Sprintf("Descendants of class `%s` (%d items):", o.Class, len(o.Descendants)),
		o.Descendants,
	)
}

// RelatedIndividualsOutcome carries the result of a
// RelatedIndividualsCommand.
type RelatedIndividualsOutcome struct {
	Property   domain.IRI
	Individual domain.IRI
	Related    []domain.IRI
}

func (RelatedIndividualsOutcome) isOutcome() {}

func (RelatedIndividualsOutcome) Kind() string { return "related-individuals" }

func (o RelatedIndividualsOutcome) Describe() string {
	return describeList(
		fmt.Sprintf("Individuals related to `%s` via `%s` (%d items):",
			o.Individual, o.Property, len(o.Related)),
		o.Related,
	)
}

// ShortestPathOutcome carries the result of a ShortestPathCommand. A nil
// Path means no path was discovered.
type ShortestPathOutcome struct {
	Start domain.IRI
	End   domain.IRI
	Path  []domain.IRI
}

func (ShortestPathOutcome) isOutcome() {}

func (ShortestPathOutcome) Kind() string { return "shortest-path" }

func (o ShortestPathOutcome) Describe() string {
	if o.Path == nil {
		return fmt.Sprintf("No path discovered between `%s` and `%s`.", o.Start, o.End)
	}
	return describeList(
		fmt.Sprintf("Shortest path between `%s` and `%s` (%d hops):",
			o.Start, o.End, len(o.Path)),
		o.Path,
	)
}

func describeList(header string, items []domain.IRI) string {
	var b strings.Builder
	b.WriteString(header)
	for _, iri := range items {
		b.WriteString("\n  - ")
		b.WriteString(iri.String())
	}
	return b.String()
}

// Request is the payload handed to an Assistant: the caller's prompt
// anchored to an ontology, with the executed reasoning outcomes.
type Request struct {
	Prompt     string
	Ontology   domain.IRI
	Inferences []Outcome
}

// ContextText renders the reasoning outcomes as one text block.
func (r Request) ContextText() string {
	if len(r.Inferences) == 0 {
		return "No ontology inferences were requested."
	}

	var b strings.Builder
	for i, outcome := range r.Inferences {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(outcome.Describe())
	}
	return b.String()
}

// Response is an assistant's answer.
type Response struct {
	Message string
}

// Synthesis combines the assistant message with the reasoning outcomes
// produced while serving the request.
type Synthesis struct {
	Message    string
	Inferences []Outcome
}

// Orchestrator executes reasoning plans before delegating to an
// assistant.
type Orchestrator struct {
	reasoner  store.Reasoner
	assistant Assistant
}

// NewOrchestrator creates an orchestrator from its dependencies.
func NewOrchestrator(reasoner store.Reasoner, assistant Assistant) *Orchestrator {
	return &Orchestrator{reasoner: reasoner, assistant: assistant}
}

// Run executes the plan in order against the reasoner, then invokes the
// assistant with the prompt and the collected outcomes. A failing step
// aborts the plan.
func (o *Orchestrator) Run(
	ctx context.Context,
	ontology domain.IRI,
	prompt string,
	plan []Command,
) (*Synthesis, error) {
	inferences := make([]Outcome, 0, len(plan))
	for _, command := range plan {
		switch cmd := command.(type) {
		case AncestorsCommand:
			ancestors, err := o.reasoner.AncestorsOf(ctx, ontology, cmd.Class)
			if err != nil {
				return nil, fmt.Errorf("ancestors step: %w", err)
			}
			inferences = append(inferences, AncestorsOutcome{Class: cmd.Class, Ancestors: ancestors})
		case DescendantsCommand:
			descendants, err := o.reasoner.DescendantsOf(ctx, ontology, cmd.Class)
			if err != nil {
				return nil, fmt.Errorf("descendants step: %w", err)
			}
			inferences = append(inferences, DescendantsOutcome{Class: cmd.Class, Descendants: descendants})
		case RelatedIndividualsCommand:
			related, err := o.reasoner.RelatedIndividuals(ctx, ontology, cmd.Property, cmd.Individual)
			if err != nil {
				return nil, fmt.Errorf("related individuals step: %w", err)
			}
			inferences = append(inferences, RelatedIndividualsOutcome{
				Property:   cmd.Property,
				Individual: cmd.Individual,
				Related:    related,
			})
		case ShortestPathCommand:
			path, err := o.reasoner.ShortestPath(ctx, ontology, cmd.Start, cmd.End)
			if err != nil {
				return nil, fmt.Errorf("shortest path step: %w", err)
			}
			inferences = append(inferences, ShortestPathOutcome{Start: cmd.Start, End: cmd.End, Path: path})
		default:
			return nil, fmt.Errorf("unknown reasoning command %T", command)
		}
	}

	response, err := o.assistant.Respond(ctx, Request{
		Prompt:     prompt,
		Ontology:   ontology,
		Inferences: inferences,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}

	return &Synthesis{Message: response.Message, Inferences: inferences}, nil
}
