package matching

import (
	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"go.uber.org/zap"
)

type EngineConfig struct {
	Weights    Weights
	Vocabulary Vocabulary
	Taxonomy   *Taxonomy
	Stager     Stager
	Logger     *zap.Logger
}

// Engine bundles the read-only matching configuration built once at startup
// with both scoring strategies and the assembler.
type Engine struct {
	weights      Weights
	taxonomy     *Taxonomy
	lexical      *LexicalScorer
	hierarchical *HierarchicalScorer
	assembler    *Assembler
}

func NewEngine(cfg EngineConfig) *Engine {
	tax := cfg.Taxonomy
	if tax == nil {
		tax = DefaultTaxonomy()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("matching")

	return &Engine{
		weights:      cfg.Weights,
		taxonomy:     tax,
		lexical:      NewLexicalScorer(cfg.Vocabulary, cfg.Weights.Lexical, log),
		hierarchical: NewHierarchicalScorer(tax, cfg.Weights.Hierarchical, log),
		assembler:    NewAssembler(cfg.Stager, log),
	}
}

func (e *Engine) Scorer(alg Algorithm) (Scorer, error) {
	switch alg {
	case AlgorithmLexical:
		return e.lexical, nil
	case AlgorithmHierarchical:
		return e.hierarchical, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

func (e *Engine) Rank(c candidate.Candidate, alg Algorithm, postings []posting.Posting) ([]posting.Scored, error) {
	s, err := e.Scorer(alg)
	if err != nil {
		return nil, err
	}
	return e.assembler.Rank(c, s, postings), nil
}

func (e *Engine) Taxonomy() *Taxonomy { return e.taxonomy }

func (e *Engine) Weights() Weights { return e.weights }
