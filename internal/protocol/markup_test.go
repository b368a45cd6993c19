package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleCall(t *testing.T) {
	p := NewParser(nil)
	text := `Use <tool>
<name>read_file</name>
<parameters>
<param name="path">main.go</param>
</parameters>
</tool> now`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "read_file", calls[0].Name)
	assert.Equal(t, map[string]string{"path": "main.go"}, calls[0].Parameters)
	assert.Contains(t, text, calls[0].SourceSpan)
	assert.Contains(t, calls[0].SourceSpan, "<tool>")
	assert.Contains(t, calls[0].SourceSpan, "</tool>")
}

func TestParse_MultipleCallsInDocumentOrder(t *testing.T) {
	p := NewParser(nil)
	text := `first <tool><name>alpha</name><parameters></parameters></tool>` +
		` then <tool><name>beta</name><parameters><param name="x">1</param></parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 2)
	assert.Equal(t, "alpha", calls[0].Name)
	assert.Equal(t, "beta", calls[1].Name)
	assert.Equal(t, "1", calls[1].Parameters["x"])
}

func TestParse_NoBlocks(t *testing.T) {
	p := NewParser(nil)

	calls := p.Parse("just prose, nothing to run")

	assert.Empty(t, calls)
}

func TestParse_MissingNameSkipsBlock(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><parameters><param name="x">1</param></parameters></tool>`

	calls := p.Parse(text)

	assert.Empty(t, calls)
}

func TestParse_MissingParametersSkipsBlock(t *testing.T) {
	p := NewParser(nil)

	calls := p.Parse(`<tool><name>echo</name></tool>`)

	assert.Empty(t, calls)
}

func TestParse_UnterminatedBlock(t *testing.T) {
	p := NewParser(nil)

	calls := p.Parse(`<tool><name>echo</name><parameters></parameters>`)

	assert.Empty(t, calls)
}

func TestParse_SkippedBlockDoesNotHideLaterCalls(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><name>broken</name></tool> <tool><name>good</name><parameters></parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "good", calls[0].Name)
}

func TestParse_FirstCloseWins(t *testing.T) {
	// No nesting: the first </tool> closes the nearest preceding <tool>.
	p := NewParser(nil)
	text := `<tool><name>outer</name><parameters></parameters></tool></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "outer", calls[0].Name)
	assert.Equal(t, `<tool><name>outer</name><parameters></parameters></tool>`, calls[0].SourceSpan)
}

func TestParse_ValuesTrimmed(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><name>echo</name><parameters><param name="x">  spaced out  </param></parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "spaced out", calls[0].Parameters["x"])
}

func TestParse_DuplicateParamLastWins(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><name>echo</name><parameters>` +
		`<param name="x">first</param><param name="x">second</param>` +
		`</parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, "second", calls[0].Parameters["x"])
}

func TestParse_ParamOrderIndependent(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><name>write_file</name><parameters>` +
		`<param name="content">hi</param><param name="path">a.txt</param>` +
		`</parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"path": "a.txt", "content": "hi"}, calls[0].Parameters)
}

func TestParse_MalformedParamEndsScan(t *testing.T) {
	p := NewParser(nil)
	text := `<tool><name>echo</name><parameters>` +
		`<param name="a">1</param><param name="b">unterminated` +
		`</parameters></tool>`

	calls := p.Parse(text)

	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"a": "1"}, calls[0].Parameters)
}

func TestResultBlock(t *testing.T) {
	got := ResultBlock("echo", "hi")

	assert.Equal(t, "<tool-result name=\"echo\">\nhi\n</tool-result>", got)
}

func TestErrorBlock(t *testing.T) {
	got := ErrorBlock("echo", "boom")

	assert.Equal(t, "<tool-error name=\"echo\">\nError: boom\n</tool-error>", got)
}
