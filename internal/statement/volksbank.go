package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/locale"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

// VolksbankParser parses Volksbank Mittelhessen statement text.
//
// Transaction rows look like:
//
//	01.10. 01.10. ALDI SE + Co. KG PN:931 2,60 S
//
// Lines between one row start and the next extend the current row's
// description (multi-line merchant names).
type VolksbankParser struct {
	// FallbackYear supplies the year for DD.MM. dates when the statement
	// carries no "NN/YYYY" statement number. Zero means the current year.
	FallbackYear int
}

var (
	rowStartRe   = regexp.MustCompile(`^(\d{2}\.\d{2}\.)\s+(\d{2}\.\d{2}\.)\s+`)
	amountTailRe = regexp.MustCompile(`([\d.,]+)\s+([SH])$`)

	ibanRe       = regexp.MustCompile(`IBAN:\s*(DE\d{2}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{2})`)
	stmtNoRe     = regexp.MustCompile(`(\d+)/(\d{4})`)
	oldBalRe     = regexp.MustCompile(`alter Kontostand vom (\d{2}\.\d{2}\.\d{4})\s+([\d,.]+)\s+([SH])`)
	newBalRe     = regexp.MustCompile(`neuer Kontostand vom (\d{2}\.\d{2}\.\d{4})\s+([\d,.]+)\s+([SH])`)
	refTokenRe   = regexp.MustCompile(`\bPN:\d+\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Format returns the parser name.
func (p *VolksbankParser) Format() string { return "volksbank" }

// Parse extracts metadata and the ordered transaction sequence from one
// statement document. Metadata extraction is tolerant; a malformed
// transaction row aborts the whole document with a ParseError.
func (p *VolksbankParser) Parse(text string) (model.Statement, error) {
	meta := p.extractMetadata(text)

	year := meta.Year
	if year == 0 {
		year = p.FallbackYear
	}
	if year == 0 {
		year = time.Now().Year()
	}

	txns, err := extractTransactions(text, year)
	if err != nil {
		return model.Statement{}, err
	}

	return model.Statement{Metadata: meta, Transactions: txns}, nil
}

func (p *VolksbankParser) extractMetadata(text string) model.Metadata {
	var meta model.Metadata

	if m := ibanRe.FindStringSubmatch(text); m != nil {
		meta.IBAN = strings.ReplaceAll(m[1], " ", "")
	}

	if m := stmtNoRe.FindStringSubmatch(text); m != nil {
		meta.StatementNumber = m[1]
		meta.Year, _ = strconv.Atoi(m[2])
	}

	// Balance lines are informational; a token that fails to parse leaves
	// the field unset rather than failing the document.
	if m := oldBalRe.FindStringSubmatch(text); m != nil {
		if date, amount, err := parseBalance(m[1], m[2], m[3]); err == nil {
			meta.OpeningBalanceDate = date
			meta.OpeningBalance = decimal.NewNullDecimal(amount)
		}
	}
	if m := newBalRe.FindStringSubmatch(text); m != nil {
		if date, amount, err := parseBalance(m[1], m[2], m[3]); err == nil {
			meta.ClosingBalanceDate = date
			meta.ClosingBalance = decimal.NewNullDecimal(amount)
		}
	}

	return meta
}

func parseBalance(dateTok, amountTok, indicator string) (time.Time, decimal.Decimal, error) {
	date, err := locale.ParseFullDate(dateTok)
	if err != nil {
		return time.Time{}, decimal.Zero, err
	}
	amount, err := locale.ParseAmount(amountTok)
	if err != nil {
		return time.Time{}, decimal.Zero, err
	}
	if indicator == "S" {
		amount = amount.Neg()
	}
	return date, amount, nil
}

func extractTransactions(text string, year int) ([]model.Transaction, error) {
	var txns []model.Transaction
	var current *model.Transaction
	var descLines, rawLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.RawDescription = strings.Join(rawLines, " ")
		current.Description = cleanDescription(strings.Join(descLines, " "))
		txns = append(txns, *current)
		current = nil
		descLines = nil
		rawLines = nil
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		startMatch := rowStartRe.FindStringSubmatch(line)
		if startMatch == nil {
			// Continuation lines extend the open row's description.
			// Digit-prefixed lines are page footers and totals, not text;
			// metadata lines belong to the document, not to a row.
			if current != nil && line != "" && !startsWithDigit(line) && !isMetadataLine(line) {
				descLines = append(descLines, line)
				rawLines = append(rawLines, line)
			}
			continue
		}

		flush()

		txn, firstDesc, err := parseRowStart(line, startMatch, year)
		if err != nil {
			return nil, &ParseError{Line: line, Index: i, Err: err}
		}
		current = &txn
		descLines = []string{firstDesc}
		rawLines = []string{line}
	}
	flush()

	return txns, nil
}

// parseRowStart parses the fixed parts of a transaction-start line: the two
// DD.MM. dates, the trailing amount, and the S/H indicator. It also returns
// the free text between the dates and the amount, the first description line.
func parseRowStart(line string, startMatch []string, year int) (model.Transaction, string, error) {
	amtLoc := amountTailRe.FindStringSubmatchIndex(line)
	if amtLoc == nil {
		return model.Transaction{}, "", fmt.Errorf("no trailing amount and S/H indicator")
	}

	valueDate, err := locale.ParseDate(startMatch[1], year)
	if err != nil {
		return model.Transaction{}, "", err
	}
	bookingDate, err := locale.ParseDate(startMatch[2], year)
	if err != nil {
		return model.Transaction{}, "", err
	}
	amount, err := locale.ParseAmount(line[amtLoc[2]:amtLoc[3]])
	if err != nil {
		return model.Transaction{}, "", err
	}

	txnType := model.TypeCredit
	if line[amtLoc[4]:amtLoc[5]] == "S" {
		txnType = model.TypeDebit
		amount = amount.Neg()
	}

	firstDesc := strings.TrimSpace(line[len(startMatch[0]):amtLoc[0]])

	return model.Transaction{
		ValueDate:   valueDate,
		BookingDate: bookingDate,
		Amount:      amount,
		Type:        txnType,
	}, firstDesc, nil
}

// cleanDescription drops bank reference tokens and collapses whitespace
// into a single line.
func cleanDescription(s string) string {
	s = refTokenRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func isMetadataLine(s string) bool {
	return strings.Contains(s, "Kontostand") || ibanRe.MatchString(s)
}
