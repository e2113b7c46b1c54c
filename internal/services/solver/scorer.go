package solver

import (
	"sort"

	"github.com/mcoot/hangman-solver/internal/model"
)

// PositionBonus is added to a letter's score for each distinct slot it occupies
// across the candidates
const PositionBonus = 0.1

// Scores holds a score per letter a-z for one candidate snapshot
type Scores struct {
	values [26]float64
	scored model.LetterSet
}

// Score rates every unguessed letter appearing in the candidates. A letter's
// score is its occurrence count divided by the number of candidates, plus
// PositionBonus for each distinct position it appears in.
func Score(candidates []string, guessed model.LetterSet) Scores {
	var sc Scores
	if len(candidates) == 0 {
		return sc
	}

	var counts [26]int
	// positions[l] is the set of slot indexes letter l occupies
	positions := make([]map[int]struct{}, 26)

	for _, word := range candidates {
		for pos, r := range word {
			if !model.IsLetter(r) || guessed.Contains(r) {
				continue
			}
			i := r - 'a'
			counts[i]++
			if positions[i] == nil {
				positions[i] = make(map[int]struct{})
			}
			positions[i][pos] = struct{}{}
		}
	}

	n := float64(len(candidates))
	for i, count := range counts {
		if count == 0 {
			continue
		}
		letter := rune('a' + i)
		sc.values[i] = float64(count)/n + PositionBonus*float64(len(positions[i]))
		sc.scored = sc.scored.Add(letter)
	}
	return sc
}

// Len returns how many letters received a score
func (sc Scores) Len() int {
	return sc.scored.Len()
}

// Get returns the score for a letter and whether it was scored
func (sc Scores) Get(letter rune) (float64, bool) {
	if !sc.scored.Contains(letter) {
		return 0, false
	}
	return sc.values[letter-'a'], true
}

// Best returns the highest scoring letter. Ties go to the letter earliest in
// the alphabet so the result does not depend on iteration order.
func (sc Scores) Best() (rune, float64, bool) {
	var best rune
	var bestScore float64
	for _, letter := range sc.scored.Letters() {
		score := sc.values[letter-'a']
		if best == 0 || score > bestScore {
			best, bestScore = letter, score
		}
	}
	return best, bestScore, best != 0
}

// Ranked returns every scored letter, best first, ties in alphabetical order
func (sc Scores) Ranked() []model.LetterScore {
	ranked := make([]model.LetterScore, 0, sc.Len())
	for _, letter := range sc.scored.Letters() {
		ranked = append(ranked, model.LetterScore{Letter: letter, Score: sc.values[letter-'a']})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
