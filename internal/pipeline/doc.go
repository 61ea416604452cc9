// Package pipeline resolves the input list, converts every item on a pool
// of workers, and reports the per-item outcomes.
//
// [Run] never fails as a whole: each item ends in exactly one
// convert.Outcome, at the index the item had in the input list. Run itself
// prints nothing; [Report] is the single step that turns outcomes into
// log lines and a summary.
package pipeline
