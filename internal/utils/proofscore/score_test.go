package proofscore_test

import (
	"testing"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/utils/proofscore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func media(n int) []domain.MediaItem {
	items := make([]domain.MediaItem, n)
	for i := range items {
		items[i] = domain.MediaItem{URL: "https://example.org/p.jpg"}
	}
	return items
}

func metrics(n int) []domain.ImpactMetric {
	ms := make([]domain.ImpactMetric, n)
	for i := range ms {
		ms[i] = domain.ImpactMetric{Milestone: "meals served", Value: decimal.NewFromInt(10)}
	}
	return ms
}

func TestScore_EmptyEvidence(t *testing.T) {
	result := proofscore.Score(domain.Proof{}, nil, decimal.Zero)

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.MissingElements, proofscore.MissingMedia)
	assert.Contains(t, result.MissingElements, proofscore.MissingMetrics)
	assert.NotContains(t, result.MissingElements, proofscore.MissingSpendEvidence)
	assert.False(t, result.Complete())
}

func TestScore_FullEvidence(t *testing.T) {
	proof := domain.Proof{
		Media:    media(3),
		Receipts: []string{"receipt-1"},
	}
	result := proofscore.Score(proof, metrics(2), decimal.NewFromInt(150))

	// 3 media * 15 + 2 metrics * 20 + receipts 40 = 125
	assert.Equal(t, 125, result.Score)
	assert.Empty(t, result.MissingElements)
	assert.True(t, result.Complete())
}

func TestScore_CapsApply(t *testing.T) {
	proof := domain.Proof{
		Media: media(10),
		Quotes: []domain.Quote{
			{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"}, {Text: "f"}, {Text: "g"},
		},
	}
	result := proofscore.Score(proof, metrics(9), decimal.Zero)

	// Media capped at 4, metrics at 4, quotes at 5.
	expected := proofscore.MediaPoints*proofscore.MediaCap +
		proofscore.MetricPoints*proofscore.MetricCap +
		proofscore.QuotePoints*proofscore.QuoteCap
	assert.Equal(t, expected, result.Score)
}

func TestScore_SpendWithoutEvidence(t *testing.T) {
	proof := domain.Proof{Media: media(3)}
	result := proofscore.Score(proof, metrics(1), decimal.NewFromInt(50))

	assert.Contains(t, result.MissingElements, proofscore.MissingSpendEvidence)
	assert.False(t, result.Complete())
}

func TestScore_NonPositiveMetricsDoNotCount(t *testing.T) {
	ms := []domain.ImpactMetric{
		{Milestone: "zero", Value: decimal.Zero},
		{Milestone: "negative", Value: decimal.NewFromInt(-3)},
		{Milestone: "real", Value: decimal.NewFromInt(1)},
	}
	assert.Equal(t, 1, proofscore.ValidMetricCount(ms))

	result := proofscore.Score(domain.Proof{}, ms[:2], decimal.Zero)
	assert.Contains(t, result.MissingElements, proofscore.MissingMetrics)
}

func TestScore_BelowThresholdIsIncomplete(t *testing.T) {
	// 3 media, 1 metric, nothing else: 45 + 20 = 65 < 80 with no missing
	// elements, so the score alone blocks completion.
	result := proofscore.Score(domain.Proof{Media: media(3)}, metrics(1), decimal.Zero)

	assert.Equal(t, 65, result.Score)
	assert.Empty(t, result.MissingElements)
	assert.False(t, result.Complete())
}

func TestScore_Deterministic(t *testing.T) {
	proof := domain.Proof{Media: media(2), Invoices: []string{"inv-9"}}
	ms := metrics(3)
	spent := decimal.NewFromInt(20)

	first := proofscore.Score(proof, ms, spent)
	second := proofscore.Score(proof, ms, spent)
	assert.Equal(t, first, second)
}

func TestAggregate_PoolsAcrossRecords(t *testing.T) {
	spent := decimal.NewFromInt(30)
	records := []domain.ImpactRecord{
		{Proof: domain.Proof{Media: media(2)}, Metrics: metrics(1)},
		{Proof: domain.Proof{Media: media(1), Receipts: []string{"r1"}}, AmountSpent: &spent},
	}

	result := proofscore.Aggregate(records)

	// Pooled: 3 media (45) + 1 metric (20) + receipts (40) = 105, spend covered.
	assert.Equal(t, 105, result.Score)
	assert.Empty(t, result.MissingElements)
	assert.True(t, result.Complete())
}

func TestAggregate_CapsApplyToPool(t *testing.T) {
	records := []domain.ImpactRecord{
		{Proof: domain.Proof{Media: media(3)}},
		{Proof: domain.Proof{Media: media(3)}},
	}
	result := proofscore.Aggregate(records)

	// 6 media pooled, capped at 4.
	assert.Equal(t, proofscore.MediaPoints*proofscore.MediaCap, result.Score)
}

func TestAggregate_Empty(t *testing.T) {
	result := proofscore.Aggregate(nil)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Complete())
}
