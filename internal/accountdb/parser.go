package accountdb

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/padre/internal/common"
	"github.com/dmitrijs2005/padre/internal/logging"
)

// Parser turns a raw database buffer into a sequence of validated accounts.
// Skipped records are reported through the logger; they never abort the
// parse.
type Parser struct {
	log logging.Logger
}

func NewParser(log logging.Logger) *Parser {
	return &Parser{log: log}
}

// partial accumulates one record while its line is being scanned. The bools
// track which fields have been closed by a separator; a closed-but-empty
// field is distinct from a field never seen.
type partial struct {
	acc          Account
	hasDomain    bool
	hasUsername  bool
	hasIteration bool
	hasLength    bool
}

// valid reports whether the record may enter the result: domain and username
// must have been seen and must contain something other than whitespace.
func (r *partial) valid() bool {
	return r.hasDomain && strings.TrimSpace(r.acc.Domain) != "" &&
		r.hasUsername && strings.TrimSpace(r.acc.Username) != ""
}

// Parse scans buf and returns the accounts it holds, in line order, without
// deduplication.
//
// A comma closes the next unset field in order {domain, username, iteration,
// length}; once all four are set, commas belong to the charset-spec field. A
// newline finalizes the record: if domain or username is missing the record
// is skipped with a diagnostic naming its 1-based line, otherwise it is
// appended. A final record without a trailing newline is still finalized.
//
// A length that parses to zero or negative (non-numeric text counts as zero)
// is fatal: Parse stops immediately and returns common.ErrInvalidLength with
// no accounts, discarding everything accumulated so far.
//
// Fields are copied out of buf, so the buffer may be reused or mutated by
// the caller afterwards.
func (p *Parser) Parse(ctx context.Context, buf []byte) ([]Account, error) {
	accounts := make([]Account, 0, bytes.Count(buf, []byte{'\n'})+1)

	var rec partial
	cur := 0  // start of the field being scanned
	line := 1 // 1-based line of the record being scanned

	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\n':
			rec.acc.CharsetSpec = string(buf[cur:i])
			if rec.valid() {
				accounts = append(accounts, rec.acc)
				p.log.Debug(ctx, "parsed entry", "line", line, "domain", rec.acc.Domain, "username", rec.acc.Username)
			} else {
				p.log.Warn(ctx, "skipping invalid entry", "line", line)
			}
			rec = partial{}
			cur = i + 1
			line++

		case ',':
			switch {
			case !rec.hasDomain:
				rec.acc.Domain = string(buf[cur:i])
				rec.hasDomain = true
				cur = i + 1
			case !rec.hasUsername:
				rec.acc.Username = string(buf[cur:i])
				rec.hasUsername = true
				cur = i + 1
			case !rec.hasIteration:
				rec.acc.Iteration = string(buf[cur:i])
				rec.hasIteration = true
				cur = i + 1
			case !rec.hasLength:
				n, err := strconv.Atoi(strings.TrimSpace(string(buf[cur:i])))
				if err != nil {
					n = 0
				}
				if n <= 0 {
					p.log.Error(ctx, "invalid password length, aborting", "line", line)
					return nil, fmt.Errorf("line %d: %w", line, common.ErrInvalidLength)
				}
				rec.acc.Length = n
				rec.hasLength = true
				cur = i + 1
			default:
				// Part of the charset spec; commas are literal here.
			}
		}
	}

	// Missing newline at the end of the buffer.
	if cur < len(buf) {
		rec.acc.CharsetSpec = string(buf[cur:])
		if rec.valid() {
			accounts = append(accounts, rec.acc)
			p.log.Debug(ctx, "parsed entry", "line", line, "domain", rec.acc.Domain, "username", rec.acc.Username)
		} else {
			p.log.Warn(ctx, "skipping invalid entry", "line", line)
		}
	}

	return accounts, nil
}
