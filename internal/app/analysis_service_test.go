package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"paperlens/internal/model"
)

func newAnalysisFixture(t *testing.T) (*AnalysisService, *fakeStore, *fakeGenerator, *fakeBiasCache, *fakePublisher) {
	t.Helper()
	store := newFakeStore()
	store.papers[1] = model.Paper{ID: 1, Title: "p", FullText: "paper text", Summary: "s"}
	store.nextID = 2
	gen := &fakeGenerator{bias: "bias report", answer: "the answer"}
	cache := newFakeBiasCache()
	pub := &fakePublisher{}
	svc := NewAnalysisService(store, gen, cache, pub, newFakeAuditStore(), nil)
	return svc, store, gen, cache, pub
}

func TestDetectBiasRunsOnceThenCaches(t *testing.T) {
	svc, _, gen, cache, _ := newAnalysisFixture(t)

	first, err := svc.DetectBias(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "bias report", first.Analysis)
	require.False(t, first.Cached)
	require.Equal(t, 1, gen.biasCalls)
	require.Equal(t, "bias report", cache.entries[1])

	second, err := svc.DetectBias(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "bias report", second.Analysis)
	require.True(t, second.Cached)
	require.Equal(t, 1, gen.biasCalls)
}

func TestDetectBiasCacheReadFailureFallsThrough(t *testing.T) {
	svc, _, gen, cache, _ := newAnalysisFixture(t)
	cache.getErr = errBoom

	result, err := svc.DetectBias(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, result.Cached)
	require.Equal(t, 1, gen.biasCalls)
}

func TestDetectBiasGeneratorFailureCachesNothing(t *testing.T) {
	svc, _, gen, cache, pub := newAnalysisFixture(t)
	gen.biasErr = errBoom

	_, err := svc.DetectBias(context.Background(), 1)
	require.Error(t, err)
	require.Empty(t, cache.entries)
	require.Empty(t, pub.records)
}

func TestDetectBiasUnknownPaper(t *testing.T) {
	svc, _, gen, _, _ := newAnalysisFixture(t)

	_, err := svc.DetectBias(context.Background(), 99)
	require.ErrorIs(t, err, ErrPaperNotFound)
	require.Zero(t, gen.biasCalls)
}

func TestAskEmptyQuestionMakesNoAICall(t *testing.T) {
	svc, _, gen, _, _ := newAnalysisFixture(t)

	_, err := svc.Ask(context.Background(), 1, "   ")
	require.ErrorIs(t, err, ErrQuestionEmpty)
	require.Zero(t, gen.answerCalls)
}

func TestAskReturnsAnswerAndPublishesAudit(t *testing.T) {
	svc, _, gen, _, pub := newAnalysisFixture(t)

	result, err := svc.Ask(context.Background(), 1, " What is the sample size? ")
	require.NoError(t, err)
	require.Equal(t, "the answer", result.Answer)
	require.Equal(t, "What is the sample size?", result.Question)
	require.Equal(t, 1, gen.answerCalls)

	require.Len(t, pub.records, 1)
	require.Equal(t, model.AnalysisKindAnswer, pub.records[0].Kind)
	require.Equal(t, "What is the sample size?", pub.records[0].Question)
	require.Equal(t, "the answer", pub.records[0].Output)
	require.Equal(t, "fake-model", pub.records[0].Model)
}

func TestAskUnknownPaper(t *testing.T) {
	svc, _, gen, _, _ := newAnalysisFixture(t)

	_, err := svc.Ask(context.Background(), 99, "why?")
	require.ErrorIs(t, err, ErrPaperNotFound)
	require.Zero(t, gen.answerCalls)
}

func TestAskGeneratorFailure(t *testing.T) {
	svc, _, gen, _, pub := newAnalysisFixture(t)
	gen.answerErr = errBoom

	_, err := svc.Ask(context.Background(), 1, "why?")
	require.Error(t, err)
	require.Empty(t, pub.records)
}
