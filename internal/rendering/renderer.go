package rendering

import "errors"

// Renderer drives the two sequential substitution passes: the block pass
// over the original template, then the inline pass over the intermediate
// archive the block pass produced. Running them separately keeps one
// engine's parser from misreading the other style's brackets.
type Renderer struct {
	block        DirectiveEngine
	inline       DirectiveEngine
	blockDelims  Delimiters
	inlineDelims Delimiters
}

// NewRenderer returns a Renderer with the default directive engines.
func NewRenderer() *Renderer {
	return NewRendererWithEngines(BlockEngine{}, InlineEngine{})
}

// NewRendererWithEngines returns a Renderer with explicit engines. Tests and
// alternative grammars plug in here.
func NewRendererWithEngines(block, inline DirectiveEngine) *Renderer {
	return &Renderer{
		block:        block,
		inline:       inline,
		blockDelims:  BlockDelimiters,
		inlineDelims: InlineDelimiters,
	}
}

// Render produces the final document bytes for a template and field mapping.
// The output is structurally identical to the template except for the
// substituted regions. Errors are *ArchiveError (template not a valid
// container) or *RenderError (a pass could not complete).
func (r *Renderer) Render(template []byte, fields map[string]string) ([]byte, error) {
	intermediate, err := r.block.Apply(template, fields, r.blockDelims)
	if err != nil {
		return nil, err
	}

	final, err := r.inline.Apply(intermediate, fields, r.inlineDelims)
	if err != nil {
		return nil, err
	}
	return final, nil
}

// RenderWithFallback renders with the given template and, when the template
// bytes themselves cannot be opened as an archive, retries the entire render
// with the fallback template instead of surfacing a raw parse error.
func (r *Renderer) RenderWithFallback(template, fallback []byte, fields map[string]string) ([]byte, error) {
	out, err := r.Render(template, fields)
	if err == nil {
		return out, nil
	}

	var archiveErr *ArchiveError
	if errors.As(err, &archiveErr) && len(fallback) > 0 {
		return r.Render(fallback, fields)
	}
	return nil, err
}
