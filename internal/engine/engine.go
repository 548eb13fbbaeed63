package engine

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/phonetic"
	"github.com/roach88/sandhi/internal/rules"
)

// DefaultSuggestionLimit is the number of suggestions attached per unknown word.
const DefaultSuggestionLimit = 3

// Outcome messages.
const (
	MsgNoRule      = "No Sandhi rule found"
	msgUnknownWord = "Unknown word: %s"
)

// Suggester proposes vocabulary words close to an unrecognized input.
// Implementations must be safe for concurrent use.
type Suggester interface {
	Suggest(input string, limit int) []ir.Suggestion
}

// Engine joins word pairs against an immutable rule Snapshot.
type Engine struct {
	snap       *rules.Snapshot
	classifier *phonetic.Classifier
	samasa     *SamasaResolver
	combiner   *Combiner

	samasaMode       SamasaMode
	strictValidation bool
	suggester        Suggester
	suggestLimit     int
	logger           *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSamasaMode selects permissive (default) or strict samasa resolution.
func WithSamasaMode(mode SamasaMode) Option {
	return func(e *Engine) {
		e.samasaMode = mode
	}
}

// WithStrictValidation rejects words that are neither root words nor markers
// with an error outcome instead of falling back.
func WithStrictValidation(strict bool) Option {
	return func(e *Engine) {
		e.strictValidation = strict
	}
}

// WithSuggester attaches suggestions for unknown words to warning and
// error outcomes. limit <= 0 uses DefaultSuggestionLimit.
func WithSuggester(s Suggester, limit int) Option {
	return func(e *Engine) {
		e.suggester = s
		if limit > 0 {
			e.suggestLimit = limit
		}
	}
}

// WithLogger sets the logger used for per-join debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine over snap. The snapshot is shared, never copied.
func New(snap *rules.Snapshot, opts ...Option) *Engine {
	e := &Engine{
		snap:         snap,
		classifier:   phonetic.NewClassifier(snap),
		suggestLimit: DefaultSuggestionLimit,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.samasa = NewSamasaResolver(snap, e.samasaMode)
	e.combiner = NewCombiner(snap, e.classifier)
	return e
}

// Snapshot returns the rule store the engine reads from.
func (e *Engine) Snapshot() *rules.Snapshot {
	return e.snap
}

// SamasaMode returns the configured samasa mode.
func (e *Engine) SamasaMode() SamasaMode {
	return e.samasaMode
}

// JoinWords combines word1 and word2 and explains which rule fired.
func (e *Engine) JoinWords(word1, word2 string) ir.Outcome {
	word1, word2 = norm.NFC.String(word1), norm.NFC.String(word2)

	out, extra := e.join(word1, word2)
	e.logger.Debug("join", append([]zap.Field{
		zap.String("word1", word1),
		zap.String("word2", word2),
		zap.String("result", out.Result),
		zap.String("stage", string(out.Stage)),
		zap.String("rule", out.Rule),
	}, extra...)...)
	return out
}

// join also returns stage-specific fields for the join debug entry.
func (e *Engine) join(word1, word2 string) (ir.Outcome, []zap.Field) {
	if e.strictValidation {
		if out, bad := e.validateInputs(word1, word2); bad {
			return out, nil
		}
	}

	// 1. Case marker
	if isVibhaktiInput(e.snap.IsMarker, word2) {
		result, kind := applyVibhakti(word1, e.classifier.EndingSound(word1), word2)
		return ir.Outcome{
			Result: result,
			Status: ir.StatusSuccess,
			Rule:   "Vibhakti: " + word2,
			Stage:  ir.StageVibhakti,
		}, []zap.Field{zap.Stringer("case", kind)}
	}

	// 2. Compound pre-processing
	finalWord1 := word1
	root, samasaRule, resolved := e.samasa.Resolve(word1)
	if resolved {
		finalWord1 = root
	}

	// 3. Curated example pair
	if rule, ok := e.combiner.DirectMatch(finalWord1, word2); ok {
		return ir.Outcome{
			Result: rule.ExampleCombined,
			Status: ir.StatusSuccess,
			Rule:   directRuleText(rule),
			Stage:  ir.StageDirect,
			Samasa: samasaRule,
		}, nil
	}

	// 4. Sound-class rule
	if rule, s1, s2, ok := e.combiner.Match(finalWord1, word2); ok {
		text := phoneticRuleText(s1, s2, rule.Result)
		if resolved {
			text = fmt.Sprintf("Samasa (%s) + %s", samasaRule, text)
		}
		return ir.Outcome{
			Result: Apply(rule, finalWord1, word2, s2),
			Status: ir.StatusSuccess,
			Rule:   text,
			Stage:  ir.StagePhonetic,
			Samasa: samasaRule,
		}, nil
	}

	// 5. Nothing matched
	return ir.Outcome{
		Result:      word1 + word2,
		Status:      ir.StatusWarning,
		Message:     MsgNoRule,
		Stage:       ir.StageFallback,
		Suggestions: e.suggestFor(e.unknownInputs(word1, word2)...),
	}, nil
}

// validateInputs rejects a word that is neither a root word (directly or
// through samasa) nor, for word2, a case marker.
func (e *Engine) validateInputs(word1, word2 string) (ir.Outcome, bool) {
	unknown := e.unknownInputs(word1, word2)
	if len(unknown) == 0 {
		return ir.Outcome{}, false
	}
	return ir.Outcome{
		Status:      ir.StatusError,
		Message:     fmt.Sprintf(msgUnknownWord, unknown[0]),
		Stage:       ir.StageInvalid,
		Suggestions: e.suggestFor(unknown[0]),
	}, true
}

func (e *Engine) unknownInputs(word1, word2 string) []string {
	var unknown []string
	if !e.knownFirstWord(word1) {
		unknown = append(unknown, word1)
	}
	if !e.snap.IsKnownWord(word2) && !isVibhaktiInput(e.snap.IsMarker, word2) {
		unknown = append(unknown, word2)
	}
	return unknown
}

func (e *Engine) knownFirstWord(word1 string) bool {
	if e.snap.IsKnownWord(word1) {
		return true
	}
	root, _, ok := e.samasa.Resolve(word1)
	return ok && e.snap.IsKnownWord(root)
}

// suggestFor collects suggestions for each word, dropping duplicates.
func (e *Engine) suggestFor(words ...string) []ir.Suggestion {
	if e.suggester == nil {
		return nil
	}
	var out []ir.Suggestion
	seen := make(map[string]bool)
	for _, w := range words {
		if w == "" {
			continue
		}
		for _, s := range e.suggester.Suggest(w, e.suggestLimit) {
			if seen[s.Word] {
				continue
			}
			seen[s.Word] = true
			out = append(out, s)
		}
	}
	return out
}

// Hints returns known compounds that start with word1.
func (e *Engine) Hints(word1 string) []ir.Hint {
	return e.snap.Hints(norm.NFC.String(word1))
}

// Suggest returns approximate vocabulary matches for input.
// It returns nil when no suggester is configured.
func (e *Engine) Suggest(input string, limit int) []ir.Suggestion {
	if e.suggester == nil {
		return nil
	}
	if limit <= 0 {
		limit = e.suggestLimit
	}
	return e.suggester.Suggest(norm.NFC.String(input), limit)
}

// Stats returns the sizes of the loaded tables.
func (e *Engine) Stats() ir.Stats {
	return e.snap.Stats()
}
