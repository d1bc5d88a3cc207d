// SPDX-License-Identifier: MIT

// Package arff reads ARFF ("Attribute-Relation File Format") data sets into
// a *matrix.Table.
//
// Supported subset:
//
//	% comment
//	@relation iris
//	@attribute sepallength real
//	@attribute 'class name' {Iris-setosa, Iris-versicolor}
//	@data
//	5.1, Iris-setosa
//	?,   Iris-versicolor
//
// Nominal attributes become nominal columns whose codes follow declaration
// order. real, numeric, integer and continuous attributes become continuous
// columns. "?" becomes matrix.MissingValue. Keywords are case-insensitive;
// names and values may be single- or double-quoted. Sparse rows and string or
// date attributes are rejected.
package arff
