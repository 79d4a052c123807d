package tradepulse

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/tradepulse/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Position, keeping
// the document's canonical field order.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("shares", p.Shares)
	w.Append("avg_cost", p.AvgCost)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position.
func (p *Position) UnmarshalJSON(data []byte) error {
	// to parse a json, we use a dedicated local struct with tag annotation.
	var temp struct {
		Shares  decimal.Decimal `json:"shares"`
		AvgCost decimal.Decimal `json:"avg_cost"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.Shares = Q(temp.Shares)
	p.AvgCost = USD(temp.AvgCost)
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Portfolio. Fields
// keep the document's canonical order and positions their lexical ticker
// order, so re-saving an untouched portfolio is byte-stable.
func (p *Portfolio) MarshalJSON() ([]byte, error) {
	var positions jsonObjectWriter
	for ticker := range p.Tickers() {
		positions.Append(ticker, p.Positions[ticker])
	}

	var w jsonObjectWriter
	w.Append("cash", p.Cash)
	w.Append("positions", &positions)
	w.Append("start_date", p.StartDate)
	w.Append("total_invested", p.TotalInvested)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Portfolio.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Cash          decimal.Decimal     `json:"cash"`
		Positions     map[string]Position `json:"positions"`
		StartDate     date.Date           `json:"start_date"`
		TotalInvested decimal.Decimal     `json:"total_invested"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.Cash = USD(temp.Cash)
	p.Positions = temp.Positions
	if p.Positions == nil {
		p.Positions = make(map[string]Position)
	}
	p.StartDate = temp.StartDate
	p.TotalInvested = USD(temp.TotalInvested)
	return nil
}

// EncodePortfolio writes the portfolio document to w, indented so that the
// state file stays reviewable by hand.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent portfolio: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a portfolio document from r.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return &p, nil
}

// MarshalJSON implements the json.Marshaler interface for
// RecommendationRecord, keeping the document's canonical field order.
func (r RecommendationRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("generated_at", r.GeneratedAt)
	w.Append("content", r.Content)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for
// RecommendationRecord. Both fields tolerate explicit nulls, the empty
// state older files recorded.
func (r *RecommendationRecord) UnmarshalJSON(data []byte) error {
	var temp struct {
		GeneratedAt string `json:"generated_at"`
		Content     string `json:"content"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	r.GeneratedAt = temp.GeneratedAt
	r.Content = temp.Content
	return nil
}

// EncodeBrief writes the single-slot brief document to w, indented like the
// portfolio document.
func EncodeBrief(w io.Writer, rec RecommendationRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent brief: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write brief: %w", err)
	}
	return nil
}

// DecodeBrief reads a brief document from r.
func DecodeBrief(r io.Reader) (RecommendationRecord, error) {
	var rec RecommendationRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return RecommendationRecord{}, fmt.Errorf("failed to decode brief: %w", err)
	}
	return rec, nil
}

// EncodeRecord marshals a single recommendation record and writes it to w
// followed by a newline, the JSONL format of the research history log.
func EncodeRecord(w io.Writer, rec RecommendationRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// DecodeHistory reads the research history log, one record per JSONL line,
// oldest first.
func DecodeHistory(r io.Reader) ([]RecommendationRecord, error) {
	var records []RecommendationRecord
	scanner := bufio.NewScanner(r)
	// A research brief easily exceeds the default scanner buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue // Skip empty lines
		}
		var rec RecommendationRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return records, nil
}
