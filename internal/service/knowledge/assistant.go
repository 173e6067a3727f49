package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmaojo/ontos/internal/config"
)

// ErrUnknownAssistantBackend indicates the configured assistant backend
// has no adapter.
var ErrUnknownAssistantBackend = errors.New("unknown knowledge assistant backend")

// Assistant synthesizes a response from a prompt and its reasoning
// context.
type Assistant interface {
	Respond(ctx context.Context, request Request) (Response, error)
}

// TemplateAssistant renders the request into a deterministic text
// answer. It is the only shipped backend; generative providers plug in
// behind the same interface.
type TemplateAssistant struct{}

// NewTemplateAssistant creates the template renderer.
func NewTemplateAssistant() *TemplateAssistant {
	return &TemplateAssistant{}
}

var _ Assistant = (*TemplateAssistant)(nil)

// Respond renders the ontology, reasoning context and prompt into one
// message.
func (*TemplateAssistant) Respond(_ context.Context, request Request) (Response, error) {
	message := fmt.Sprintf("Ontology context: %s\n\n%s\n\nPrompt:\n%s",
		request.Ontology, request.ContextText(), request.Prompt)
	return Response{Message: message}, nil
}

// NewAssistant builds an assistant from configuration. An empty backend
// returns nil without error; callers treat a nil assistant as the
// knowledge feature being disabled.
func NewAssistant(cfg config.AssistantConfig) (Assistant, error) {
	switch cfg.Backend {
	case "":
		return nil, nil
	case "template":
		return NewTemplateAssistant(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssistantBackend, cfg.Backend)
	}
}
