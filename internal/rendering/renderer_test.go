package rendering

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTemplate assembles a minimal template archive whose document part
// contains the given body text.
func buildTemplate(t *testing.T, body string) []byte {
	t.Helper()
	return buildTemplateParts(t, map[string]string{
		"word/document.xml": body,
		"word/styles.xml":   "<w:styles/>",
		"word/media/logo":   "binarylogo",
	})
}

func buildTemplateParts(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// readPartContent extracts one part from a rendered archive.
func readPartContent(t *testing.T, archive []byte, name string) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRender_InlineSubstitution(t *testing.T) {
	template := buildTemplate(t, "<w:t>Reporter: (name)</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"name": "Alice"})
	require.NoError(t, err)

	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "Reporter: Alice")
	assert.NotContains(t, doc, "(name)")
}

func TestRender_MissingFieldKeepsLiteral(t *testing.T) {
	template := buildTemplate(t, "<w:t>(name) went to (location)</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"name": "Alice"})
	require.NoError(t, err)

	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "Alice went to (location)")
}

func TestRender_BlockConditional(t *testing.T) {
	template := buildTemplate(t, "<w:t>{if notes}Notes: (notes){/if}done</w:t>")

	out, err := NewRenderer().Render(template, map[string]string{"notes": "check valves"})
	require.NoError(t, err)
	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "Notes: check valves")
	assert.NotContains(t, doc, "{")
	assert.NotContains(t, doc, "}")

	out, err = NewRenderer().Render(template, map[string]string{"notes": ""})
	require.NoError(t, err)
	doc = readPartContent(t, out, "word/document.xml")
	assert.NotContains(t, doc, "Notes:")
	assert.Contains(t, doc, "done")
	assert.NotContains(t, doc, "{")
}

func TestRender_NestedConditionals(t *testing.T) {
	template := buildTemplate(t, "<w:t>{if a}A{if b}B{/if}{/if}</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"a": "yes", "b": ""})
	require.NoError(t, err)

	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "A")
	assert.NotContains(t, doc, "B<")
	assert.NotContains(t, doc, "{")
}

func TestRender_BlockInsertion(t *testing.T) {
	template := buildTemplate(t, "<w:t>{title}</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"title": "Pump check"})
	require.NoError(t, err)
	assert.Contains(t, readPartContent(t, out, "word/document.xml"), "Pump check")
}

func TestRender_UnknownBlockDirectiveKeepsLiteral(t *testing.T) {
	template := buildTemplate(t, "<w:t>{mystery}</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"title": "x"})
	require.NoError(t, err)
	assert.Contains(t, readPartContent(t, out, "word/document.xml"), "{mystery}")
}

func TestRender_UnclosedConditionalFails(t *testing.T) {
	template := buildTemplate(t, "<w:t>{if notes}never closed</w:t>")
	_, err := NewRenderer().Render(template, map[string]string{"notes": "x"})
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_StrayCloseTagFails(t *testing.T) {
	template := buildTemplate(t, "<w:t>text{/if}</w:t>")
	_, err := NewRenderer().Render(template, map[string]string{})
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_CorruptArchive(t *testing.T) {
	_, err := NewRenderer().Render([]byte("this is not a zip"), map[string]string{})
	require.Error(t, err)
	var archiveErr *ArchiveError
	assert.ErrorAs(t, err, &archiveErr)
}

func TestRender_EscapesValues(t *testing.T) {
	template := buildTemplate(t, "<w:t>(title)</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"title": `a < b & "c"`})
	require.NoError(t, err)

	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "a &lt; b &amp; &quot;c&quot;")
}

func TestRender_NewlinesBecomeSoftBreaks(t *testing.T) {
	template := buildTemplate(t, "<w:t>(notes)</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"notes": "line one\nline two"})
	require.NoError(t, err)

	doc := readPartContent(t, out, "word/document.xml")
	assert.Contains(t, doc, "line one</w:t><w:br/><w:t xml:space=\"preserve\">line two")
}

func TestRender_OtherPartsPassThrough(t *testing.T) {
	template := buildTemplate(t, "<w:t>(title)</w:t>")
	out, err := NewRenderer().Render(template, map[string]string{"title": "x"})
	require.NoError(t, err)

	assert.Equal(t, "<w:styles/>", readPartContent(t, out, "word/styles.xml"))
	assert.Equal(t, "binarylogo", readPartContent(t, out, "word/media/logo"))
}

func TestRender_HeadersAndFootersAreRewritten(t *testing.T) {
	template := buildTemplateParts(t, map[string]string{
		"word/document.xml": "<w:t>(title)</w:t>",
		"word/header1.xml":  "<w:t>(fullName)</w:t>",
		"word/footer1.xml":  "<w:t>(date)</w:t>",
	})
	fields := map[string]string{"title": "T", "fullName": "Alice", "date": "2024-01-01"}

	out, err := NewRenderer().Render(template, fields)
	require.NoError(t, err)
	assert.Contains(t, readPartContent(t, out, "word/header1.xml"), "Alice")
	assert.Contains(t, readPartContent(t, out, "word/footer1.xml"), "2024-01-01")
}

func TestRender_Idempotent(t *testing.T) {
	template := buildTemplate(t, "<w:t>{if a}yes{/if} (title)</w:t>")
	fields := map[string]string{"a": "1", "title": "Pump check"}

	first, err := NewRenderer().Render(template, fields)
	require.NoError(t, err)
	second, err := NewRenderer().Render(template, fields)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderWithFallback_SelfHeals(t *testing.T) {
	fallback := buildTemplate(t, "<w:t>(title)</w:t>")
	out, err := NewRenderer().RenderWithFallback([]byte("corrupt upload"), fallback, map[string]string{"title": "Pump check"})
	require.NoError(t, err)
	assert.Contains(t, readPartContent(t, out, "word/document.xml"), "Pump check")
}

func TestRenderWithFallback_DirectiveFailureIsNotHealed(t *testing.T) {
	template := buildTemplate(t, "<w:t>{if x}open</w:t>")
	fallback := buildTemplate(t, "<w:t>ok</w:t>")

	_, err := NewRenderer().RenderWithFallback(template, fallback, map[string]string{"x": "1"})
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}
