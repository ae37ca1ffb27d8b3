package rendering

import (
	"fmt"
	"strings"
)

// Delimiters is the bracket pair a directive engine recognizes.
type Delimiters struct {
	Open  string
	Close string
}

// The authoring format uses two visually distinct bracket styles so a
// template author editing the document in an ordinary office editor cannot
// confuse block constructs with inline variables.
var (
	BlockDelimiters  = Delimiters{Open: "{", Close: "}"}
	InlineDelimiters = Delimiters{Open: "(", Close: ")"}
)

// DirectiveEngine applies one substitution grammar to an archive: take
// archive bytes plus a field mapping and a delimiter pair, return archive
// bytes or fail. Engines are supplied to the Renderer explicitly so the
// sequencing and fallback logic stays testable without a real grammar.
type DirectiveEngine interface {
	Apply(archive []byte, fields map[string]string, delims Delimiters) ([]byte, error)
}

// BlockEngine handles structural directives: plain {key} insertion and
// {if key}...{/if} conditional regions. Values keep soft line breaks.
type BlockEngine struct{}

// Apply runs the block pass over every directive part of the archive.
func (BlockEngine) Apply(archive []byte, fields map[string]string, delims Delimiters) ([]byte, error) {
	return rewriteParts(archive, func(name, content string) (string, error) {
		out, rest, err := processBlocks(content, fields, delims, 0)
		if err != nil {
			return "", &RenderError{
				Message: fmt.Sprintf("block pass failed in %s", name),
				Cause:   err,
			}
		}
		return out + rest, nil
	})
}

// InlineEngine handles simple inline variable directives. Brackets around
// anything that is not a known field name are ordinary text, so this pass
// never fails on content.
type InlineEngine struct{}

// Apply runs the inline pass over every directive part of the archive.
func (InlineEngine) Apply(archive []byte, fields map[string]string, delims Delimiters) ([]byte, error) {
	return rewriteParts(archive, func(_, content string) (string, error) {
		return substituteInline(content, fields, delims), nil
	})
}

const closeIfTag = "/if"

// processBlocks walks text emitting substituted output. At depth zero it
// consumes the whole input; inside a conditional it returns when the matching
// {/if} is consumed, handing back the unconsumed remainder.
func processBlocks(text string, fields map[string]string, delims Delimiters, depth int) (string, string, error) {
	var out strings.Builder

	for {
		i := strings.Index(text, delims.Open)
		if i < 0 {
			if depth > 0 {
				return "", "", fmt.Errorf("unclosed %sif%s directive", delims.Open, delims.Close)
			}
			out.WriteString(text)
			return out.String(), "", nil
		}
		out.WriteString(text[:i])

		rest := text[i+len(delims.Open):]
		j := strings.Index(rest, delims.Close)
		if j < 0 {
			return "", "", fmt.Errorf("unclosed directive near %q", snippet(text[i:]))
		}
		inner := rest[:j]
		if strings.Contains(inner, delims.Open) {
			return "", "", fmt.Errorf("unsupported directive syntax near %q", snippet(text[i:]))
		}
		after := rest[j+len(delims.Close):]

		switch {
		case inner == closeIfTag:
			if depth == 0 {
				return "", "", fmt.Errorf("unexpected %s%s%s", delims.Open, closeIfTag, delims.Close)
			}
			return out.String(), after, nil

		case strings.HasPrefix(inner, "if ") || inner == "if":
			key := strings.TrimSpace(strings.TrimPrefix(inner, "if"))
			if key == "" {
				return "", "", fmt.Errorf("conditional directive without a field name")
			}
			body, remainder, err := processBlocks(after, fields, delims, depth+1)
			if err != nil {
				return "", "", err
			}
			value, known := fields[key]
			switch {
			case !known:
				// Unknown condition keeps its literal directive text so a
				// mapping bug stays visible in the output.
				out.WriteString(delims.Open + inner + delims.Close)
				out.WriteString(body)
				out.WriteString(delims.Open + closeIfTag + delims.Close)
			case strings.TrimSpace(value) != "":
				out.WriteString(body)
			}
			text = remainder

		default:
			if value, ok := fields[inner]; ok {
				out.WriteString(escapeValue(value))
			} else {
				out.WriteString(delims.Open + inner + delims.Close)
			}
			text = after
		}
	}
}

// substituteInline replaces (key) occurrences whose key exists in fields.
// Everything else, including unbalanced brackets, passes through verbatim.
func substituteInline(text string, fields map[string]string, delims Delimiters) string {
	var out strings.Builder

	for {
		i := strings.Index(text, delims.Open)
		if i < 0 {
			out.WriteString(text)
			return out.String()
		}
		out.WriteString(text[:i])

		rest := text[i+len(delims.Open):]
		j := strings.Index(rest, delims.Close)
		if j < 0 {
			out.WriteString(text[i:])
			return out.String()
		}

		key := rest[:j]
		if value, ok := fields[key]; ok {
			out.WriteString(escapeValue(value))
			text = rest[j+len(delims.Close):]
		} else {
			out.WriteString(delims.Open)
			text = rest
		}
	}
}

// escapeValue makes a field value safe for WordprocessingML text runs.
// Newlines become soft line breaks.
func escapeValue(value string) string {
	var out strings.Builder
	for _, r := range value {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		case '"':
			out.WriteString("&quot;")
		case '\'':
			out.WriteString("&apos;")
		case '\n':
			out.WriteString(`</w:t><w:br/><w:t xml:space="preserve">`)
		case '\r':
			// normalized away; \r\n pairs collapse to the \n break
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func snippet(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
