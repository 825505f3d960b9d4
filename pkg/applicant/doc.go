// Package applicant defines the immutable scholarship candidate record.
//
// Applicants are built with [New], which normalizes extracurricular names,
// or loaded from a YAML document of [Record]s with [Load]. Construction never
// fails: out-of-range GPA or income values are accepted as given.
package applicant
