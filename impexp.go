package xirr

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// They should remain human readable, single file, and easy to merge.
// Parsing is strict: a bad line fails the import with a line-numbered error,
// nothing half-parsed ever reaches the solvers.

// ImportCashFlows imports cash flows from 'r' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object with a 'date'
// property (ISO-8601 day), an 'amount' property (JSON number or decimal
// string), and optional 'currency' and 'label' properties.
func ImportCashFlows(r io.Reader) (CashFlowSequence, error) {
	type jflow struct {
		Date     Date            `json:"date"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency,omitempty"`
		Label    string          `json:"label,omitempty"`
	}

	var flows CashFlowSequence
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var jf jflow
		if err := json.Unmarshal([]byte(text), &jf); err != nil {
			return nil, fmt.Errorf("cannot parse line %d for cash flow import format: %q: %w", line, text, err)
		}
		flows = append(flows, CashFlow{Date: jf.Date, Amount: M(jf.Amount, jf.Currency), Label: jf.Label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read cash flow import: %w", err)
	}
	if err := flows.checkCurrency(); err != nil {
		return nil, err
	}
	return flows, nil
}

// ExportCashFlows exports the flows to 'w' in the import/export format, one
// JSON object per line.
func ExportCashFlows(w io.Writer, flows CashFlowSequence) error {
	type jflow struct {
		Date     Date            `json:"date"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency,omitempty"`
		Label    string          `json:"label,omitempty"`
	}

	for _, f := range flows {
		jf := jflow{Date: f.Date, Amount: f.Amount.Decimal(), Currency: f.Amount.Currency(), Label: f.Label}
		data, err := json.Marshal(jf)
		if err != nil {
			return fmt.Errorf("cannot marshal cash flow on %s: %w", f.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write cash flow format: %w", err)
		}
	}
	return nil
}

// ImportPeriods imports period definitions from 'r' in the import/export
// format: a JSONL file where each line carries 'label', 'start', 'end', and
// optional 'startValue', 'endValue' and 'currency' properties. A missing
// value stays absent; the window builder reports it as insufficient data.
func ImportPeriods(r io.Reader) ([]Period, error) {
	type jperiod struct {
		Label      string           `json:"label"`
		Start      Date             `json:"start"`
		End        Date             `json:"end"`
		StartValue *decimal.Decimal `json:"startValue,omitempty"`
		EndValue   *decimal.Decimal `json:"endValue,omitempty"`
		Currency   string           `json:"currency,omitempty"`
	}

	var periods []Period
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var jp jperiod
		if err := json.Unmarshal([]byte(text), &jp); err != nil {
			return nil, fmt.Errorf("cannot parse line %d for period import format: %q: %w", line, text, err)
		}
		p := Period{Label: jp.Label, Start: jp.Start, End: jp.End}
		if jp.StartValue != nil {
			v := M(*jp.StartValue, jp.Currency)
			p.StartValue = &v
		}
		if jp.EndValue != nil {
			v := M(*jp.EndValue, jp.Currency)
			p.EndValue = &v
		}
		periods = append(periods, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read period import: %w", err)
	}
	return periods, nil
}

// ExportPeriods exports the periods to 'w' in the import/export format.
func ExportPeriods(w io.Writer, periods []Period) error {
	type jperiod struct {
		Label      string           `json:"label"`
		Start      Date             `json:"start"`
		End        Date             `json:"end"`
		StartValue *decimal.Decimal `json:"startValue,omitempty"`
		EndValue   *decimal.Decimal `json:"endValue,omitempty"`
		Currency   string           `json:"currency,omitempty"`
	}

	for _, p := range periods {
		jp := jperiod{Label: p.Label, Start: p.Start, End: p.End}
		if p.StartValue != nil {
			v := p.StartValue.Decimal()
			jp.StartValue = &v
			jp.Currency = p.StartValue.Currency()
		}
		if p.EndValue != nil {
			v := p.EndValue.Decimal()
			jp.EndValue = &v
			jp.Currency = p.EndValue.Currency()
		}
		data, err := json.Marshal(jp)
		if err != nil {
			return fmt.Errorf("cannot marshal period %q: %w", p.Label, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write period format: %w", err)
		}
	}
	return nil
}

// ImportDelimited imports cash flows from a delimited text file. The comma
// rune selects the dialect: ',' for CSV, '\t' for tab-delimited paste.
// Each record is "date,amount[,label]". A first record that does not parse
// as a date is treated as a header and skipped. All amounts are tagged with
// the given currency ("" for none).
func ImportDelimited(r io.Reader, comma rune, currency string) (CashFlowSequence, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var flows CashFlowSequence
	record := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read delimited record %d: %w", record+1, err)
		}
		record++
		if len(fields) < 2 {
			return nil, fmt.Errorf("delimited record %d: want at least date and amount, got %d fields", record, len(fields))
		}
		day, err := ParseDate(fields[0])
		if err != nil {
			if record == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("delimited record %d: %w", record, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("delimited record %d: invalid amount %q: %w", record, fields[1], err)
		}
		var label string
		if len(fields) > 2 {
			label = strings.TrimSpace(fields[2])
		}
		flows = append(flows, CashFlow{Date: day, Amount: M(amount, currency), Label: label})
	}
	return flows, nil
}

// VendorQuery names the JSONPath expressions locating the parallel arrays of
// dates and amounts (and optionally labels) inside a vendor API payload.
type VendorQuery struct {
	Dates   string
	Amounts string
	Labels  string // optional
}

// ImportVendorCashFlows extracts cash flows from an arbitrary vendor JSON
// payload using the query's JSONPath expressions. Dates must be strings in
// the standard format, amounts numbers or decimal strings. The two arrays
// must be the same length; labels, when queried, too.
func ImportVendorCashFlows(payload []byte, q VendorQuery, currency string) (CashFlowSequence, error) {
	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse vendor payload: %w", err)
	}

	dates, err := jsonList(jobj, q.Dates)
	if err != nil {
		return nil, fmt.Errorf("vendor dates: %w", err)
	}
	amounts, err := jsonList(jobj, q.Amounts)
	if err != nil {
		return nil, fmt.Errorf("vendor amounts: %w", err)
	}
	if len(dates) != len(amounts) {
		return nil, fmt.Errorf("vendor payload: %d dates but %d amounts", len(dates), len(amounts))
	}
	var labels []any
	if q.Labels != "" {
		labels, err = jsonList(jobj, q.Labels)
		if err != nil {
			return nil, fmt.Errorf("vendor labels: %w", err)
		}
		if len(labels) != len(dates) {
			return nil, fmt.Errorf("vendor payload: %d dates but %d labels", len(dates), len(labels))
		}
	}

	flows := make(CashFlowSequence, 0, len(dates))
	for i := range dates {
		str, ok := dates[i].(string)
		if !ok {
			return nil, fmt.Errorf("vendor payload: date %v is not a string", dates[i])
		}
		day, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("vendor payload: %w", err)
		}
		var amount decimal.Decimal
		switch v := amounts[i].(type) {
		case float64:
			amount = decimal.NewFromFloat(v)
		case string:
			amount, err = decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("vendor payload: invalid amount %q: %w", v, err)
			}
		default:
			return nil, fmt.Errorf("vendor payload: amount %v is neither number nor string", amounts[i])
		}
		var label string
		if labels != nil {
			label, _ = labels[i].(string)
		}
		flows = append(flows, CashFlow{Date: day, Amount: M(amount, currency), Label: label})
	}
	return flows, nil
}

// jsonList evaluates a JSONPath expression and normalizes the answer to a
// list, because jsonpath is never clear about whether it returns a list of
// answers or a single one.
func jsonList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}
