package compare

import (
	"fmt"
	"strings"
	"time"

	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

// masterFields are checked between a weekly record and its master-table
// row. Issue Link and Description change every week and are deliberately
// left out.
var masterFields = []string{
	records.ColProductionName,
	records.ColShootingDates,
	records.ColStartMonth,
	records.ColCity,
	records.ColProvinceState,
	records.ColCountry,
	records.ColType,
	records.ColDirectorProd,
	records.ColProductionCo,
}

// ChangedVsMaster lists the fields where the weekly record genuinely
// diverges from the master row. A blank weekly value against a filled
// master value is a parsing miss, not a change, and is skipped; the
// reverse direction still counts.
func ChangedVsMaster(master, weekly records.Record) []string {
	var diffs []string
	for _, f := range masterFields {
		ov := master.Get(f)
		nv := weekly.Get(f)

		if records.IsNA(nv) && !records.IsNA(ov) {
			continue
		}

		changed := false
		switch f {
		case records.ColProductionName:
			changed = records.NormKey(ov) != records.NormKey(nv)
		case records.ColShootingDates:
			changed = !EquivDates(ov, nv)
		case records.ColType:
			changed = NormType(ov) != NormType(nv)
		case records.ColStartMonth:
			changed = StartMonthFromSpan(master.Get(records.ColShootingDates)) !=
				StartMonthFromSpan(weekly.Get(records.ColShootingDates))
		case records.ColPhone:
			changed = NormPhone(ov) != NormPhone(nv)
		case records.ColEmail:
			changed = NormEmail(ov) != NormEmail(nv)
		default:
			changed = !records.Equiv(ov, nv)
		}
		if changed {
			diffs = append(diffs, f)
		}
	}
	return diffs
}

// MasterOptions shape one weekly-vs-master comparison.
type MasterOptions struct {
	// Label is the weekly issue label carried into note text.
	Label string
	// Region restricts the weekly side to records bucketing into this
	// region; empty compares every weekly record.
	Region string
	// Baseline is the weekly issue's full title list, the ordinal source.
	Baseline []string
}

// MasterResult is a finished weekly-vs-master comparison.
type MasterResult struct {
	// Rows are weekly-shaped difference records in weekly order, with
	// Category, Notes, and the pushed-back flag filled in. Unchanged
	// productions emit nothing.
	Rows []records.Record
	// WeeklyDupes and MasterDupes report title-key collisions collapsed
	// on each side.
	WeeklyDupes []records.DuplicatePair
	MasterDupes []records.DuplicatePair
	Updated     int
	New         int
	Pushed      int
}

// startFor pins a comparison date for pushed-back detection: concrete
// shooting dates when they parse, else the first of the start month.
func startFor(r records.Record) (time.Time, bool) {
	if d, ok := StartDateFromShootingDates(r.Get(records.ColShootingDates)); ok {
		return d, true
	}
	return ApproxStartFromStartMonth(r.Get(records.ColStartMonth))
}

// Master compares a weekly issue against the curated master table. The
// master side matches by exact normalized key only; fuzzy matching never
// touches the master.
func Master(weekly, master []records.Record, tables *location.Tables, opts MasterOptions) *MasterResult {
	res := &MasterResult{}

	var kept []records.Record
	for _, r := range weekly {
		if opts.Region != "" {
			bucket := tables.Bucket(
				r.Get(records.ColCity),
				r.Get(records.ColProvinceState),
				r.Get(records.ColCountry),
			)
			if bucket != opts.Region {
				continue
			}
		}
		kept = append(kept, r)
	}

	wKeys, wByKey, wDupes := records.CollapseDuplicates(kept)
	_, mByKey, mDupes := records.CollapseDuplicates(master)
	res.WeeklyDupes = wDupes
	res.MasterDupes = mDupes

	ordinals := BaselineIndex(opts.Baseline)

	for _, k := range wKeys {
		w := wByKey[k]

		m, found := mByKey[k]
		if !found {
			out := w.Clone()
			out[records.ColCategory] = records.CategoryNewToMaster
			out[records.ColNotes] = fmt.Sprintf("NEW to Master – Prod. #%03d (%s)", ordinals[k], opts.Label)
			res.Rows = append(res.Rows, out)
			res.New++
			continue
		}

		diffs := ChangedVsMaster(m, w)
		if len(diffs) == 0 {
			continue
		}

		ms, okM := startFor(m)
		ws, okW := startFor(w)
		pushed := okM && okW && ws.After(ms)

		note := fmt.Sprintf("UPDATED vs Master (%s) – Prod. #%03d (%s)",
			strings.Join(diffs, ", "), ordinals[k], opts.Label)
		if pushed {
			note += " | Date pushed back"
		}

		out := w.Clone()
		out[records.ColCategory] = records.CategoryUpdatedVsM
		out[records.ColNotes] = note
		if pushed {
			out[records.ColPushed] = "Yes"
			res.Pushed++
		}
		res.Rows = append(res.Rows, out)
		res.Updated++
	}
	return res
}
