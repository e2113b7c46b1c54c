package model

// DecisionRule identifies which step of the decision chain produced a guess
type DecisionRule string

const (
	RuleSingleCandidate   DecisionRule = "single_candidate"   // Only one word fits; reveal its next letter
	RuleScored            DecisionRule = "scored"             // Best frequency/position score over candidates
	RuleFrequencyFallback DecisionRule = "frequency_fallback" // Static English letter order
	RuleAlphabetFallback  DecisionRule = "alphabet_fallback"  // Any unguessed letter a-z
	RuleRandom            DecisionRule = "random"             // Uniformly random unguessed letter
)

// MaxSampleCandidates caps how many candidate words a decision carries
const MaxSampleCandidates = 10

// GuessRequest is the input to a single guess decision
type GuessRequest struct {
	// Pattern is the whitespace-separated word state, e.g. "f __ i __ h t"
	Pattern string
	// GuessedLetters are the letters already tried, right or wrong
	GuessedLetters []string
	// GuessesRemaining is recorded but does not influence the decision
	GuessesRemaining int
}

// Decision is the outcome of a guess decision
type Decision struct {
	Letter         rune
	Rule           DecisionRule
	CandidateCount int
	// Score is the winning letter score, zero for fallback rules
	Score float64
	// Candidates holds up to MaxSampleCandidates of the remaining words
	Candidates []string
	// Ranking lists every scored letter, best first, when Rule is RuleScored
	Ranking []LetterScore
}

// LetterScore pairs a letter with its score
type LetterScore struct {
	Letter rune
	Score  float64
}
