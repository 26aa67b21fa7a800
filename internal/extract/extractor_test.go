package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"term_harvester/internal/domain"
)

func testExtractor(minFrequency int) *Extractor {
	return New(Config{
		MinFrequency: minFrequency,
		SampleLimit:  3,
		Workers:      2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doc(id, en, et string, subjects ...string) *domain.DocumentRecord {
	return &domain.DocumentRecord{
		Identifier: id,
		Titles:     []string{"Thesis " + id},
		AbstractEN: en,
		AbstractET: et,
		Subjects:   subjects,
		URL:        "https://example.ee/" + id,
		Endpoint:   "ut",
	}
}

func TestFrequencyCountsDistinctDocuments(t *testing.T) {
	abstract := strings.Repeat("We evaluate machine learning here. ", 5)

	candidates, err := testExtractor(3).Extract(context.Background(), []*domain.DocumentRecord{
		doc("1", abstract, ""),
	})
	require.NoError(t, err)

	ml := candidates["machine learning"]
	require.NotNil(t, ml)
	assert.Equal(t, 1, ml.Frequency)
	assert.Equal(t, domain.TierHigh, ml.Tier)
}

func TestCuratedTermStaysHighWhenAlsoFoundStatistically(t *testing.T) {
	docs := []*domain.DocumentRecord{
		doc("1", "We design a data warehouse for retail analytics.", ""),
		doc("2", "The data warehouse stores historical sales.", ""),
		doc("3", "Loading the data warehouse takes hours.", ""),
	}

	candidates, err := testExtractor(3).Extract(context.Background(), docs)
	require.NoError(t, err)

	dw := candidates["data warehouse"]
	require.NotNil(t, dw)
	assert.Equal(t, domain.TierHigh, dw.Tier)
	assert.Equal(t, 3, dw.Frequency)
	assert.Equal(t, domain.SourceBoth, dw.Source)
}

func TestStatisticalPhrasesNeedMinimumDocumentFrequency(t *testing.T) {
	below := []*domain.DocumentRecord{
		doc("1", "", "töös kasutatakse tunnuste konstrueerimine meetodeid"),
		doc("2", "", "peatükis kirjeldatakse tunnuste konstrueerimine protsessi"),
	}

	candidates, err := testExtractor(3).Extract(context.Background(), below)
	require.NoError(t, err)
	assert.NotContains(t, candidates, "tunnuste konstrueerimine")

	atThreshold := append(below,
		doc("3", "", "lõpuks hinnatakse tunnuste konstrueerimine mõju täpsusele"))

	candidates, err = testExtractor(3).Extract(context.Background(), atThreshold)
	require.NoError(t, err)

	fe := candidates["tunnuste konstrueerimine"]
	require.NotNil(t, fe)
	assert.Equal(t, domain.TierMedium, fe.Tier)
	assert.Equal(t, domain.SourceStatistical, fe.Source)
	assert.Equal(t, 3, fe.Frequency)
}

func TestEstonianHintsAreNotNewDiscoveries(t *testing.T) {
	docs := []*domain.DocumentRecord{
		doc("1", "", "mudel põhineb juhendatud õpe lähenemisel andmete analüüsiks"),
		doc("2", "", "võrdleme juhendatud õpe tulemusi teiste meetoditega siin"),
		doc("3", "", "kasutame juhendatud õpe võtteid piltide liigitamiseks töös"),
	}

	candidates, err := testExtractor(3).Extract(context.Background(), docs)
	require.NoError(t, err)

	sl := candidates["supervised learning"]
	require.NotNil(t, sl)
	assert.Equal(t, domain.TierHigh, sl.Tier)
	assert.Equal(t, 3, sl.Frequency)

	assert.NotContains(t, candidates, "juhendatud õpe")
}

func TestSubjectsMatchCuratedTerms(t *testing.T) {
	d := doc("1", "", "see kokkuvõte räägib millestki muust hoopis", "Data Mining", "andmebaasid")

	candidates, err := testExtractor(3).Extract(context.Background(), []*domain.DocumentRecord{d})
	require.NoError(t, err)

	dm := candidates["data mining"]
	require.NotNil(t, dm)
	assert.Equal(t, domain.TierHigh, dm.Tier)
	assert.Equal(t, 1, dm.Frequency)
}

func TestSamplesCappedAtLimit(t *testing.T) {
	var docs []*domain.DocumentRecord
	for i := 0; i < 5; i++ {
		docs = append(docs, doc(fmt.Sprintf("%d", i),
			"This explores machine learning for robotics.", ""))
	}

	candidates, err := testExtractor(3).Extract(context.Background(), docs)
	require.NoError(t, err)

	ml := candidates["machine learning"]
	require.NotNil(t, ml)
	assert.Equal(t, 5, ml.Frequency)
	assert.Len(t, ml.Samples, 3)
}

func TestFilterPhrase(t *testing.T) {
	cases := []struct {
		words []string
		want  string
		ok    bool
	}{
		{[]string{"graph", "embedding"}, "graph embedding", true},
		{[]string{"the", "graph", "embedding"}, "graph embedding", true},
		{[]string{"this", "thesis"}, "", false},
		{[]string{"related", "work"}, "", false},
		{[]string{"graph"}, "", false},
		{[]string{"a", "b", "c", "d", "e"}, "", false},
		{[]string{"the", "most"}, "", false},
	}

	for _, tc := range cases {
		got, ok := filterPhrase(tc.words)
		assert.Equal(t, tc.ok, ok, "words %v", tc.words)
		if tc.ok {
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestEstonianPhrases(t *testing.T) {
	found := estonianPhrases("Masinõppe meetodid on täpsed")

	assert.Contains(t, found, "masinõppe meetodid")
	// "on" is under three characters, so n-grams crossing it are dropped.
	assert.NotContains(t, found, "meetodid on")
	assert.NotContains(t, found, "meetodid on täpsed")
	assert.NotContains(t, found, "masinõppe meetodid on")
}
