// Package rule defines the fixed scholarship catalog.
//
// A [Rule] is an ordered list of [Check]s. Each check pairs a CEL condition
// (see package expr) with the reason reported when it holds and when it
// does not. An applicant is eligible for a rule when every check holds, and
// every check is always reported, in order, whatever the verdict.
package rule
