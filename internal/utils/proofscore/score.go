// Package proofscore computes the completeness score of impact-report
// evidence. Scoring is a pure function over the closed Proof/Metric shapes:
// identical inputs always produce identical results.
package proofscore

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Weighted, capped contributions per evidence category.
const (
	MediaPoints    = 15
	MediaCap       = 4
	MetricPoints   = 20
	MetricCap      = 4
	ReceiptsPoints = 40
	InvoicesPoints = 40
	QuotePoints    = 10
	QuoteCap       = 5

	// FinalThreshold is the minimum aggregate score required to mark a
	// scope's impact reporting as final.
	FinalThreshold = 80
)

// Missing-requirement identifiers returned in Result.MissingElements.
const (
	MissingMedia         = "at least 3 photos or videos"
	MissingMetrics       = "at least 1 measurable impact metric"
	MissingSpendEvidence = "a receipt or invoice covering the reported spend"
)

// Result is the outcome of scoring one set of evidence.
type Result struct {
	Score           int      `json:"score"`
	MissingElements []string `json:"missingElements"`
}

// Complete reports whether the evidence meets the finalization bar.
func (r Result) Complete() bool {
	return len(r.MissingElements) == 0 && r.Score >= FinalThreshold
}

// ValidMetricCount counts metrics with a strictly positive value.
func ValidMetricCount(metrics []domain.ImpactMetric) int {
	n := 0
	for _, m := range metrics {
		if m.Value.IsPositive() {
			n++
		}
	}
	return n
}

// Score evaluates a single record's proof, metrics and reported spend.
func Score(proof domain.Proof, metrics []domain.ImpactMetric, amountSpent decimal.Decimal) Result {
	score := 0

	mediaCount := len(proof.Media)
	score += MediaPoints * capped(mediaCount, MediaCap)

	metricCount := ValidMetricCount(metrics)
	score += MetricPoints * capped(metricCount, MetricCap)

	hasReceipts := len(proof.Receipts) > 0
	if hasReceipts {
		score += ReceiptsPoints
	}
	hasInvoices := len(proof.Invoices) > 0
	if hasInvoices {
		score += InvoicesPoints
	}

	score += QuotePoints * capped(len(proof.Quotes), QuoteCap)

	var missing []string
	if mediaCount < 3 {
		missing = append(missing, MissingMedia)
	}
	if metricCount < 1 {
		missing = append(missing, MissingMetrics)
	}
	if amountSpent.IsPositive() && !hasReceipts && !hasInvoices {
		missing = append(missing, MissingSpendEvidence)
	}

	return Result{Score: score, MissingElements: missing}
}

// Aggregate scores the combined evidence of all given records, used to gate
// the final marking of a scope. Proof artifacts and metrics are pooled and
// reported spends summed before scoring, so the caps apply to the pool.
func Aggregate(records []domain.ImpactRecord) Result {
	var pooled domain.Proof
	var metrics []domain.ImpactMetric
	spent := decimal.Zero

	for i := range records {
		r := &records[i]
		pooled.Receipts = append(pooled.Receipts, r.Proof.Receipts...)
		pooled.Invoices = append(pooled.Invoices, r.Proof.Invoices...)
		pooled.Quotes = append(pooled.Quotes, r.Proof.Quotes...)
		pooled.Media = append(pooled.Media, r.Proof.Media...)
		metrics = append(metrics, r.Metrics...)
		spent = spent.Add(r.SpentAmount())
	}

	return Score(pooled, metrics, spent)
}

func capped(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}
