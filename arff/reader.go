// SPDX-License-Identifier: MIT

package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	kwRelation  = "@relation"
	kwAttribute = "@attribute"
	kwData      = "@data"

	commentPrefix = "%"
	missingToken  = "?"
)

// continuousTypes lists the attribute types read as real numbers.
var continuousTypes = map[string]bool{
	"real":       true,
	"numeric":    true,
	"integer":    true,
	"continuous": true,
}

// Load opens path and reads it with Read.
func Load(path string) (*matrix.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open arff: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Read parses an ARFF stream into a table.
//
// Implementation:
//   - Stage 1: header lines (@relation, @attribute) build the column metadata.
//   - Stage 2: after @data, each non-blank line becomes one row; nominal
//     values are replaced by their codes and "?" by matrix.MissingValue.
//   - Stage 3: the rows are handed to matrix.NewTableFromRows.
//
// Errors:
//   - ErrSyntax, ErrUnknownType, ErrUnknownNominal, ErrColumnCount (all
//     prefixed with "line N"), or a wrapped matrix error.
func Read(r io.Reader) (*matrix.Table, error) {
	var (
		relation string
		cols     []matrix.Column
		codes    []map[string]int // per column; nil for continuous
		rows     [][]float64
		inData   bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if inData {
			row, err := parseRow(line, cols, codes)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			rows = append(rows, row)
			continue
		}

		keyword, rest := splitKeyword(line)
		switch keyword {
		case kwRelation:
			name, _, err := nextToken(rest)
			if err != nil || name == "" {
				return nil, fmt.Errorf("line %d: @relation needs a name: %w", lineNo, ErrSyntax)
			}
			relation = name
		case kwAttribute:
			col, index, err := parseAttribute(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cols = append(cols, col)
			codes = append(codes, index)
		case kwData:
			if len(cols) == 0 {
				return nil, fmt.Errorf("line %d: @data before any @attribute: %w", lineNo, ErrSyntax)
			}
			inData = true
		default:
			return nil, fmt.Errorf("line %d: unexpected %q: %w", lineNo, keyword, ErrSyntax)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read arff: %w", err)
	}
	if !inData {
		return nil, fmt.Errorf("missing @data section: %w", ErrSyntax)
	}

	opts := []matrix.Option{matrix.WithColumns(cols...)}
	if relation != "" {
		opts = append(opts, matrix.WithRelation(relation))
	}
	t, err := matrix.NewTableFromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}

	return t, nil
}

// splitKeyword returns the lower-cased first word and the remainder.
func splitKeyword(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return strings.ToLower(line), ""
	}

	return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
}

// parseAttribute reads "<name> <type>" where type is {v1,...} or a continuous keyword.
func parseAttribute(rest string) (matrix.Column, map[string]int, error) {
	name, typ, err := nextToken(rest)
	if err != nil {
		return matrix.Column{}, nil, err
	}
	if name == "" || typ == "" {
		return matrix.Column{}, nil, fmt.Errorf("@attribute needs a name and a type: %w", ErrSyntax)
	}

	if strings.HasPrefix(typ, "{") {
		if !strings.HasSuffix(typ, "}") {
			return matrix.Column{}, nil, fmt.Errorf("attribute %q: unterminated enumeration: %w", name, ErrSyntax)
		}
		values, err := splitFields(typ[1 : len(typ)-1])
		if err != nil {
			return matrix.Column{}, nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		index := make(map[string]int, len(values))
		for k, v := range values {
			if v == "" {
				return matrix.Column{}, nil, fmt.Errorf("attribute %q: empty nominal value: %w", name, ErrSyntax)
			}
			if _, dup := index[v]; dup {
				return matrix.Column{}, nil, fmt.Errorf("attribute %q: duplicate value %q: %w", name, v, ErrSyntax)
			}
			index[v] = k
		}

		return matrix.Column{Name: name, Values: values}, index, nil
	}

	if !continuousTypes[strings.ToLower(typ)] {
		return matrix.Column{}, nil, fmt.Errorf("attribute %q type %q: %w", name, typ, ErrUnknownType)
	}

	return matrix.Column{Name: name}, nil, nil
}

// parseRow converts one data line into codes and reals.
func parseRow(line string, cols []matrix.Column, codes []map[string]int) ([]float64, error) {
	if strings.HasPrefix(line, "{") {
		return nil, fmt.Errorf("sparse rows are not supported: %w", ErrSyntax)
	}
	fields, err := splitFields(line)
	if err != nil {
		return nil, err
	}
	if len(fields) != len(cols) {
		return nil, fmt.Errorf("%d values for %d attributes: %w", len(fields), len(cols), ErrColumnCount)
	}

	row := make([]float64, len(fields))
	for j, f := range fields {
		switch {
		case f == missingToken:
			row[j] = matrix.MissingValue
		case codes[j] != nil:
			code, ok := codes[j][f]
			if !ok {
				return nil, fmt.Errorf("attribute %q value %q: %w", cols[j].Name, f, ErrUnknownNominal)
			}
			row[j] = float64(code)
		default:
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("attribute %q value %q: %w", cols[j].Name, f, ErrSyntax)
			}
			row[j] = v
		}
	}

	return row, nil
}

// nextToken reads one possibly-quoted word from s and returns it with the
// trimmed remainder.
func nextToken(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", nil
	}
	if q := s[0]; q == '\'' || q == '"' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated quote: %w", ErrSyntax)
		}

		return s[1 : end+1], strings.TrimSpace(s[end+2:]), nil
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", nil
	}

	return s[:i], strings.TrimSpace(s[i+1:]), nil
}

// splitFields splits a comma-separated list, honoring single and double
// quotes, and trims the surrounding blanks of every field.
func splitFields(s string) ([]string, error) {
	var (
		out   []string
		cur   strings.Builder
		quote byte
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
				continue
			}
			cur.WriteByte(ch)
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ',':
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote: %w", ErrSyntax)
	}

	return append(out, strings.TrimSpace(cur.String())), nil
}
