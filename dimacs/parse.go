// Package dimacs is the thin, out-of-core-scope DIMACS CNF reader that
// lets cmd/satcore exercise the decision procedures end to end. Grounded
// on solver/parser.go's readInt/parseHeader byte scanner, trimmed to
// CNF-only (no PB/OPB extensions) and wrapped with github.com/pkg/errors
// instead of ad hoc fmt.Errorf chains.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cnflab/satcore/clause"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a signed int from r. b holds the last byte read (a space,
// '-' or digit); leading spaces are skipped. May return io.EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, errors.Wrap(err, "could not read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "cannot read int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, errors.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbvars not an int: %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "nbclauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Parse reads a DIMACS CNF stream and returns the equivalent clause.Set
// plus the declared variable count from the header.
func Parse(r io.Reader) (clause.Set, int, error) {
	br := bufio.NewReader(r)
	var (
		nbVars, nbClauses int
		clauses           []*clause.Clause
	)
	b, err := br.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = br.ReadByte()
			}
		case b == 'p':
			nbVars, nbClauses, err = parseHeader(br)
			if err != nil {
				return clause.Set{}, 0, errors.Wrap(err, "cannot parse CNF header")
			}
			clauses = make([]*clause.Clause, 0, nbClauses)
			b, err = br.ReadByte()
		case isSpace(b):
			b, err = br.ReadByte()
		default:
			var lits []clause.Lit
			for {
				val, rerr := readInt(&b, br)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return clause.Set{}, 0, errors.New("unfinished clause at EOF")
					}
					err = io.EOF
					break
				}
				if rerr != nil {
					return clause.Set{}, 0, errors.Wrap(rerr, "cannot parse clause")
				}
				if val == 0 {
					clauses = append(clauses, clause.New(lits))
					break
				}
				lits = append(lits, clause.IntToLit(val))
			}
			if err != io.EOF {
				b, err = br.ReadByte()
			}
		}
	}
	if err != io.EOF {
		return clause.Set{}, 0, errors.Wrap(err, "cannot read CNF stream")
	}
	return clause.Set{Clauses: clauses, MaxVar: nbVars}, nbVars, nil
}
