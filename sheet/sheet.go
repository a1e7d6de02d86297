package sheet

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tachui/tachui/dom"
)

// ElementID is the fixed id of the style element all generated CSS is
// written into. No other stylesheet is touched.
const ElementID = "tachui-responsive-styles"

// StyleSheet is the single write target for generated CSS. The underlying
// style element is created lazily on first write; with no document the
// sheet is a silent no-op, tolerating headless invocation.
type StyleSheet struct {
	mu   sync.Mutex
	doc  dom.Document
	elem dom.StyleElement
	log  zerolog.Logger

	// injected tracks literal rule blocks already written via the batch
	// path, so two call sites producing identical CSS insert it once.
	injected map[string]struct{}

	// scopes maps a scope class to the handles of its current rules so
	// regeneration replaces them instead of accumulating stale blocks.
	scopes map[string][]int

	rulesWritten int
}

// NewStyleSheet creates a sheet over doc. doc may be nil.
func NewStyleSheet(doc dom.Document, log zerolog.Logger) *StyleSheet {
	return &StyleSheet{
		doc:      doc,
		log:      log,
		injected: make(map[string]struct{}),
		scopes:   make(map[string][]int),
	}
}

func (s *StyleSheet) ensure() dom.StyleElement {
	if s.elem == nil && s.doc != nil {
		s.elem = s.doc.CreateStyleElement(ElementID)
	}
	return s.elem
}

// AppendBatch writes not-yet-injected blocks as a single text append, in
// insertion order. Byte-identical blocks seen before are skipped.
func (s *StyleSheet) AppendBatch(blocks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.ensure()
	if elem == nil {
		return
	}

	text := ""
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if _, seen := s.injected[b]; seen {
			continue
		}
		s.injected[b] = struct{}{}
		if text != "" {
			text += "\n"
		}
		text += b
		s.rulesWritten++
	}
	if text != "" {
		elem.AppendText(text)
	}
}

// ReplaceScope swaps the rules previously written for scope with the given
// blocks. Each block is inserted individually; a block the rule parser
// rejects is logged as a warning and skipped, the rest still inject.
func (s *StyleSheet) ReplaceScope(scope string, blocks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.ensure()
	if elem == nil {
		return
	}

	for _, handle := range s.scopes[scope] {
		if err := elem.DeleteRule(handle); err != nil {
			s.log.Warn().Err(err).Str("scope", scope).Msg("failed to remove stale rule")
		}
	}
	s.scopes[scope] = s.scopes[scope][:0]

	for _, b := range blocks {
		if b == "" {
			continue
		}
		handle, err := elem.InsertRule(b)
		if err != nil {
			s.log.Warn().Err(err).Str("scope", scope).Str("css", b).Msg("failed to inject rule")
			continue
		}
		s.scopes[scope] = append(s.scopes[scope], handle)
		s.rulesWritten++
	}
}

// RulesWritten reports how many rule blocks have been written since
// creation or the last Reset.
func (s *StyleSheet) RulesWritten() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rulesWritten
}

// Reset forgets dedup and scope tracking and the written-rule counter. The
// style element itself is left in place.
func (s *StyleSheet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.injected = make(map[string]struct{})
	s.scopes = make(map[string][]int)
	s.rulesWritten = 0
}
