// Package report renders an [evaluate.Report].
//
// The default [FormatText] output is:
//
//	<blank line>Applicant: <name>
//	  <scholarship>: ELIGIBLE|NOT eligible
//	    - <reason>
//
// repeated for each scholarship, then for each applicant.
package report
