package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/hangman-solver/internal/services/simulator"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Decision:
		o.printDecision(v)
	case Session:
		o.printSession(v)
	case SessionGuess:
		o.printDecision(v.Decision)
		fmt.Fprintln(o.w)
		o.printSession(v.Session)
	case HealthResult:
		o.printHealthResult(v)
	case PlayResult:
		o.printPlayResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LetterScore response type
type LetterScore struct {
	Letter string  `json:"letter"`
	Score  float64 `json:"score"`
}

// Decision response type (matches API)
type Decision struct {
	NextGuess      string        `json:"next_guess"`
	Strategy       string        `json:"strategy"`
	Rule           string        `json:"rule"`
	CandidateCount int           `json:"candidate_count"`
	Score          float64       `json:"score"`
	Candidates     []string      `json:"candidates"`
	Ranking        []LetterScore `json:"ranking,omitempty"`
}

// Turn response type
type Turn struct {
	Pattern          string    `json:"pattern"`
	GuessedLetters   string    `json:"guessed_letters"`
	GuessesRemaining int       `json:"guesses_remaining"`
	Letter           string    `json:"letter"`
	Rule             string    `json:"rule"`
	CandidateCount   int       `json:"candidate_count"`
	DecidedAt        time.Time `json:"decided_at"`
}

// Session response type
type Session struct {
	ID               string    `json:"id"`
	Strategy         string    `json:"strategy"`
	State            string    `json:"state"`
	WordLength       int       `json:"word_length"`
	Pattern          string    `json:"pattern"`
	GuessedLetters   []string  `json:"guessed_letters"`
	GuessesRemaining int       `json:"guesses_remaining"`
	History          []Turn    `json:"history"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SessionGuess response type
type SessionGuess struct {
	Decision Decision `json:"decision"`
	Session  Session  `json:"session"`
}

// HealthResult response type
type HealthResult struct {
	Status           string `json:"status"`
	DictionaryLoaded bool   `json:"dictionary_loaded"`
	WordCount        int    `json:"word_count"`
	DictionarySource string `json:"dictionary_source"`
	Fingerprint      string `json:"fingerprint,omitempty"`
}

// PlayTurn is one guess of a locally played game
type PlayTurn struct {
	Letter         string `json:"letter"`
	Hit            bool   `json:"hit"`
	Pattern        string `json:"pattern"`
	Rule           string `json:"rule"`
	CandidateCount int    `json:"candidate_count"`
}

// PlayResult summarises a locally played game
type PlayResult struct {
	Secret       string     `json:"secret"`
	Strategy     string     `json:"strategy"`
	Won          bool       `json:"won"`
	WrongGuesses int        `json:"wrong_guesses"`
	MaxWrong     int        `json:"max_wrong"`
	FinalPattern string     `json:"final_pattern"`
	Turns        []PlayTurn `json:"turns"`
}

// PlayResultFromSimulator converts a simulator result for output
func PlayResultFromSimulator(r *simulator.Result) PlayResult {
	turns := make([]PlayTurn, 0, len(r.Turns))
	for _, t := range r.Turns {
		turns = append(turns, PlayTurn{
			Letter:         string(t.Letter),
			Hit:            t.Hit,
			Pattern:        t.Pattern,
			Rule:           string(t.Rule),
			CandidateCount: t.CandidateCount,
		})
	}
	return PlayResult{
		Secret:       r.Secret,
		Strategy:     r.Strategy,
		Won:          r.Won,
		WrongGuesses: r.WrongGuesses,
		MaxWrong:     r.MaxWrong,
		FinalPattern: r.FinalPattern,
		Turns:        turns,
	}
}

func (o *Output) printDecision(d Decision) {
	fmt.Fprintf(o.w, "Next guess: %s\n", d.NextGuess)
	fmt.Fprintf(o.w, "Strategy: %s (%s)\n", d.Strategy, d.Rule)
	fmt.Fprintf(o.w, "Candidates: %d\n", d.CandidateCount)
	if len(d.Candidates) > 0 {
		more := ""
		if d.CandidateCount > len(d.Candidates) {
			more = ", ..."
		}
		fmt.Fprintf(o.w, "  %s%s\n", strings.Join(d.Candidates, ", "), more)
	}
	if len(d.Ranking) > 0 {
		fmt.Fprintln(o.w, "Top letters:")
		for _, ls := range d.Ranking[:min(5, len(d.Ranking))] {
			fmt.Fprintf(o.w, "  %s  %.3f\n", ls.Letter, ls.Score)
		}
	}
}

func (o *Output) printSession(s Session) {
	fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	fmt.Fprintf(o.w, "Strategy: %s\n", s.Strategy)
	fmt.Fprintf(o.w, "State: %s\n", s.State)
	if s.Pattern != "" {
		fmt.Fprintf(o.w, "Word: %s\n", s.Pattern)
	}
	if len(s.GuessedLetters) > 0 {
		fmt.Fprintf(o.w, "Guessed: %s\n", strings.Join(s.GuessedLetters, ", "))
	}
	if len(s.History) > 0 {
		fmt.Fprintf(o.w, "History (%d):\n", len(s.History))
		for i, t := range s.History {
			fmt.Fprintf(o.w, "  %d. %s -> %s (%s, %d candidates)\n", i+1, t.Pattern, t.Letter, t.Rule, t.CandidateCount)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Dictionary: %d words (%s)\n", h.WordCount, h.DictionarySource)
}

func (o *Output) printPlayResult(r PlayResult) {
	for i, t := range r.Turns {
		mark := "miss"
		if t.Hit {
			mark = "hit"
		}
		fmt.Fprintf(o.w, "%2d. %s  %-4s  %s\n", i+1, t.Letter, mark, t.Pattern)
	}

	outcome := "Lost"
	if r.Won {
		outcome = "Won"
	}
	fmt.Fprintf(o.w, "%s in %d guesses (%d/%d wrong) with %s\n",
		outcome, len(r.Turns), r.WrongGuesses, r.MaxWrong, r.Strategy)
}
