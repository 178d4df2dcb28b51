package compare

import (
	"fmt"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/prodweekly/prodweekly/internal/records"
)

// Thresholds are the fuzzy-score cut lines for run-to-run matching. A
// score strictly above Confident means the same production; scores from
// RenameFloor through Confident inclusive flag a likely rename.
type Thresholds struct {
	Confident   int
	RenameFloor int
}

// DefaultThresholds returns the production cut lines.
func DefaultThresholds() Thresholds {
	return Thresholds{Confident: 90, RenameFloor: 50}
}

// runToRunFields are compared between matched records, in note order.
var runToRunFields = []string{
	records.ColProductionName,
	records.ColShootingDates,
	records.ColStartMonth,
	records.ColCity,
	records.ColProvinceState,
	records.ColCountry,
	records.ColType,
	records.ColFormatLabel,
	records.ColDirectorProd,
	records.ColAllLocations,
	records.ColProductionOff,
	records.ColProductionCo,
}

// changedFields lists the compared fields whose values differ.
func changedFields(old, new records.Record) []string {
	var diffs []string
	for _, f := range runToRunFields {
		if !records.Equiv(old.Get(f), new.Get(f)) {
			diffs = append(diffs, f)
		}
	}
	return diffs
}

// BaselineIndex numbers baseline titles 1-based by normalized key.
// Excluded titles stay on the list, so every ordinal is stable across the
// exclusion filter.
func BaselineIndex(titles []string) map[string]int {
	idx := make(map[string]int, len(titles))
	for i, t := range titles {
		idx[records.NormKey(t)] = i + 1
	}
	return idx
}

// Assignment records where one new record landed during matching: the
// index of the old record it claimed, or -1, with the winning score.
type Assignment struct {
	New   int
	Old   int
	Score int
}

// RunSummary counts the emitted categories.
type RunSummary struct {
	New     int
	Updated int
	Removed int
}

// RunResult is a finished run-to-run comparison.
type RunResult struct {
	// Rows are the emitted difference records, NA-filled: updates in new
	// issue order, then removals in old issue order.
	Rows        []records.Record
	Assignments []Assignment
	// OldDupes and NewDupes report title-key collisions collapsed on each
	// side before matching.
	OldDupes []records.DuplicatePair
	NewDupes []records.DuplicatePair
	Summary  RunSummary
}

// Engine matches two issues' records by fuzzy title similarity.
type Engine struct {
	th    Thresholds
	score func(a, b string) int
}

// NewEngine returns an Engine with the given thresholds. Zero thresholds
// fall back to the defaults.
func NewEngine(th Thresholds) *Engine {
	def := DefaultThresholds()
	if th.Confident == 0 {
		th.Confident = def.Confident
	}
	if th.RenameFloor == 0 {
		th.RenameFloor = def.RenameFloor
	}
	return &Engine{th: th, score: func(a, b string) int { return fuzzy.TokenSetRatio(a, b) }}
}

// Run compares the new issue's records against the old issue's. Each new
// record greedily claims its best-scoring unclaimed old record; the
// baseline titles of the new issue number the ordinals in note text.
func (e *Engine) Run(oldRows, newRows []records.Record, oldLabel, newLabel string, baseline []string) *RunResult {
	oldKeys, oldByKey, oldDupes := records.CollapseDuplicates(oldRows)
	newKeys, newByKey, newDupes := records.CollapseDuplicates(newRows)
	ordinals := BaselineIndex(baseline)

	res := &RunResult{OldDupes: oldDupes, NewDupes: newDupes}
	claimed := make(map[int]bool, len(oldKeys))

	oldNorms := make([]string, len(oldKeys))
	for i, k := range oldKeys {
		oldNorms[i] = records.NormText(oldByKey[k].Get(records.ColProductionName))
	}

	for ni, nk := range newKeys {
		nRow := newByKey[nk]
		nNorm := records.NormText(nRow.Get(records.ColProductionName))

		best, bestScore := -1, 0
		for oi := range oldKeys {
			if claimed[oi] {
				continue
			}
			if s := e.score(nNorm, oldNorms[oi]); s > bestScore {
				best, bestScore = oi, s
			}
		}

		switch {
		case bestScore > e.th.Confident:
			claimed[best] = true
			res.Assignments = append(res.Assignments, Assignment{New: ni, Old: best, Score: bestScore})

			oRow := oldByKey[oldKeys[best]]
			if diffs := changedFields(oRow, nRow); len(diffs) > 0 {
				out := nRow.Clone()
				out[records.ColCategory] = records.CategoryUpdated
				out[records.ColNotes] = fmt.Sprintf("UPDATED (%s) – Prod. #%03d (%s)",
					strings.Join(diffs, ", "), ordinals[nk], newLabel)
				res.Rows = append(res.Rows, out.FillNA(records.Schema))
			}

		case best >= 0 && bestScore >= e.th.RenameFloor:
			claimed[best] = true
			res.Assignments = append(res.Assignments, Assignment{New: ni, Old: best, Score: bestScore})

			oRow := oldByKey[oldKeys[best]]
			out := nRow.Clone()
			out[records.ColCategory] = records.CategoryUpdated
			out[records.ColNotes] = fmt.Sprintf("UPDATED (Name changed from '%s' to '%s') – Prod. #%03d (%s)",
				oRow.Get(records.ColProductionName), nRow.Get(records.ColProductionName),
				ordinals[nk], newLabel)
			res.Rows = append(res.Rows, out.FillNA(records.Schema))

		default:
			res.Assignments = append(res.Assignments, Assignment{New: ni, Old: -1, Score: bestScore})
			out := nRow.Clone()
			out[records.ColCategory] = records.CategoryNew
			out[records.ColNotes] = "NEW – from " + newLabel
			res.Rows = append(res.Rows, out.FillNA(records.Schema))
		}
	}

	for oi, k := range oldKeys {
		if claimed[oi] {
			continue
		}
		out := oldByKey[k].Clone()
		out[records.ColCategory] = records.CategoryRemoved
		out[records.ColNotes] = "REMOVED – from " + oldLabel
		res.Rows = append(res.Rows, out.FillNA(records.Schema))
	}

	for _, r := range res.Rows {
		switch r.Get(records.ColCategory) {
		case records.CategoryNew:
			res.Summary.New++
		case records.CategoryUpdated:
			res.Summary.Updated++
		case records.CategoryRemoved:
			res.Summary.Removed++
		}
	}
	return res
}
