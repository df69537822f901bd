// Package reconcile computes the edit script that turns one list of sections
// into another.
//
// Sections and items are matched by identifier. [DiffSections] runs five
// scans in a fixed order and concatenates their output:
//
//  1. Insert for every current section whose identifier is new.
//  2. Delete for every previous section whose identifier is gone.
//  3. For every previous section, the first current section with the same
//     identifier and different content becomes an Update carrying item edits
//     (both sides have child items), an Update with no item edits (neither
//     side has child items and the cell counts match) or a Reload.
//  4. One Focus, if the current state requests it.
//  5. Header for every matched pair whose headers differ. A header that
//     appears or disappears is not reported.
//
// All indexes refer to the input lists. Consumers apply a script as one
// batch: deletes against the previous list, inserts against the current one.
//
// Duplicate identifiers within one list make matching ambiguous; the first
// match wins. [Duplicates] finds them so callers can log the hazard.
package reconcile
