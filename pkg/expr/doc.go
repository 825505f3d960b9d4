// Package expr provides the CEL (Common Expression Language) environment
// used to express scholarship rule conditions.
//
// CEL expressions have access to variables:
//   - `name` (string): The applicant's display name
//   - `gpa` (double): Grade point average
//   - `income` (double): Household income
//   - `awards` (int): Number of awards
//   - `extracurriculars` (list<string>): Normalized activity names
//
// And to the member function:
//   - list<string>.hasExtracurricular(string): Exact, case-insensitive
//     activity match, e.g. extracurriculars.hasExtracurricular("volunteer")
package expr
