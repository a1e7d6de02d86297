package sheet

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tachui/tachui/dom"
)

func memSheet(t *testing.T) (*StyleSheet, *dom.MemDocument) {
	t.Helper()
	doc := dom.NewMemDocument()
	return NewStyleSheet(doc, zerolog.Nop()), doc
}

func styleElement(t *testing.T, doc *dom.MemDocument) *dom.MemStyleElement {
	t.Helper()
	el, ok := doc.StyleElement(ElementID)
	require.True(t, ok, "style element should have been created lazily")
	return el
}

func TestAppendBatchSingleWriteInOrder(t *testing.T) {
	s, doc := memSheet(t)

	s.AppendBatch([]string{".a{color:red}", ".b{color:blue}", ".c{color:green}"})

	el := styleElement(t, doc)
	assert.Equal(t, 1, el.AppendCalls, "one batch means one DOM append")
	assert.Equal(t, ".a{color:red}\n.b{color:blue}\n.c{color:green}", el.CSSText())
}

func TestAppendBatchDeduplicatesLiteralRules(t *testing.T) {
	s, doc := memSheet(t)

	s.AppendBatch([]string{".a{color:red}"})
	s.AppendBatch([]string{".a{color:red}", ".b{color:blue}"})

	el := styleElement(t, doc)
	assert.Equal(t, 1, strings.Count(el.CSSText(), ".a{color:red}"),
		"byte-identical rule must not be inserted twice")
	assert.Contains(t, el.CSSText(), ".b{color:blue}")
}

func TestReplaceScopeEvictsStaleRules(t *testing.T) {
	s, doc := memSheet(t)

	s.ReplaceScope("tachui-r-1", []string{
		".tachui-r-1{color:red}",
		"@media (min-width: 768px){.tachui-r-1{color:blue}}",
	})
	s.ReplaceScope("tachui-r-1", []string{".tachui-r-1{color:green}"})

	el := styleElement(t, doc)
	assert.Equal(t, 1, el.RuleCount(), "regeneration must not accumulate stale rules")
	assert.NotContains(t, el.CSSText(), "red")
	assert.Contains(t, el.CSSText(), "green")
}

func TestReplaceScopeIsolatesScopes(t *testing.T) {
	s, doc := memSheet(t)

	s.ReplaceScope("tachui-r-1", []string{".tachui-r-1{color:red}"})
	s.ReplaceScope("tachui-r-2", []string{".tachui-r-2{color:blue}"})
	s.ReplaceScope("tachui-r-1", []string{".tachui-r-1{color:green}"})

	el := styleElement(t, doc)
	assert.Contains(t, el.CSSText(), ".tachui-r-2{color:blue}", "other scopes stay untouched")
	assert.NotContains(t, el.CSSText(), "red")
}

func TestMalformedRuleIsSkippedNotFatal(t *testing.T) {
	s, doc := memSheet(t)

	s.ReplaceScope("tachui-r-1", []string{
		".tachui-r-1{color:red}",
		"not a rule at all",
		".tachui-r-1:hover{color:blue}",
	})

	el := styleElement(t, doc)
	assert.Equal(t, 2, el.RuleCount(), "rules after the bad one must still inject")
	assert.Contains(t, el.CSSText(), "hover")
}

func TestNilDocumentIsSilentNoop(t *testing.T) {
	s := NewStyleSheet(nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		s.AppendBatch([]string{".a{color:red}"})
		s.ReplaceScope("x", []string{".x{color:red}"})
	})
	assert.Equal(t, 0, s.RulesWritten())
}

func TestBatcherFlushSingleAppend(t *testing.T) {
	s, doc := memSheet(t)
	b := NewBatcher(s, 50, time.Hour) // timer never fires in this test
	defer b.Close()

	b.Enqueue(".a{color:red}")
	b.Enqueue("")
	b.Enqueue(".b{color:blue}")
	require.Equal(t, 2, b.Depth())

	b.Flush()

	el := styleElement(t, doc)
	assert.Equal(t, 1, el.AppendCalls)
	assert.Equal(t, ".a{color:red}\n.b{color:blue}", el.CSSText())
	assert.Equal(t, 0, b.Depth())
}

func TestBatcherFlushesAtBatchSize(t *testing.T) {
	s, doc := memSheet(t)
	b := NewBatcher(s, 3, time.Hour)
	defer b.Close()

	b.Enqueue(".a{width:1px}")
	b.Enqueue(".b{width:2px}")
	assert.Equal(t, 2, b.Depth(), "below threshold nothing flushes")

	b.Enqueue(".c{width:3px}")
	assert.Equal(t, 0, b.Depth(), "reaching the batch size flushes immediately")
	assert.Equal(t, 1, styleElement(t, doc).AppendCalls)
}

func TestBatcherTimerFlush(t *testing.T) {
	s, doc := memSheet(t)
	b := NewBatcher(s, 50, 5*time.Millisecond)
	defer b.Close()

	b.Enqueue(".a{width:1px}")

	deadline := time.Now().Add(2 * time.Second)
	for {
		if el, ok := doc.StyleElement(ElementID); ok && el.AppendCalls == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("frame timer never flushed the queue")
		}
		time.Sleep(2 * time.Millisecond)
	}
	assert.Equal(t, 0, b.Depth())
}

func TestBatcherCloseCancelsPendingWork(t *testing.T) {
	s, doc := memSheet(t)
	b := NewBatcher(s, 50, 5*time.Millisecond)

	b.Enqueue(".a{width:1px}")
	b.Close()

	time.Sleep(20 * time.Millisecond)
	_, created := doc.StyleElement(ElementID)
	assert.False(t, created, "closed batcher must not write")

	b.Enqueue(".b{width:2px}")
	assert.Equal(t, 0, b.Depth(), "closed batcher rejects enqueues")
}
