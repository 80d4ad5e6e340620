package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"paperlens/internal/model"
)

func newPaperService(store *fakeStore, gen *fakeGenerator, pub *fakePublisher, audit *fakeAuditStore, cache *fakeBiasCache) *PaperService {
	return NewPaperService(store, gen, pub, audit, cache, nil)
}

func TestUploadStoresSummarizedPaper(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{summary: "A summary."}
	pub := &fakePublisher{}
	svc := newPaperService(store, gen, pub, newFakeAuditStore(), newFakeBiasCache())

	paper, err := svc.Upload(context.Background(), UploadInput{
		Title:    "study.pdf",
		FullText: "Full paper text.",
	})
	require.NoError(t, err)
	require.NotZero(t, paper.ID)
	require.Equal(t, "study.pdf", paper.Title)
	require.Equal(t, "Full paper text.", paper.FullText)
	require.Equal(t, "A summary.", paper.Summary)
	require.Equal(t, 1, gen.summarizeCalls)

	stored := store.papers[paper.ID]
	require.Equal(t, "A summary.", stored.Summary)

	require.Len(t, pub.records, 1)
	require.Equal(t, paper.ID, pub.records[0].PaperID)
	require.Equal(t, "summary", pub.records[0].Kind)
}

func TestUploadNewestFirst(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{summary: "s"}
	svc := newPaperService(store, gen, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	first, err := svc.Upload(context.Background(), UploadInput{Title: "a", FullText: "text a"})
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), UploadInput{Title: "b", FullText: "text b"})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestUploadEmptyTextRejectedWithoutAICall(t *testing.T) {
	gen := &fakeGenerator{summary: "s"}
	svc := newPaperService(newFakeStore(), gen, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	_, err := svc.Upload(context.Background(), UploadInput{Title: "t", FullText: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, gen.summarizeCalls)
}

func TestUploadDefaultsTitle(t *testing.T) {
	store := newFakeStore()
	svc := newPaperService(store, &fakeGenerator{summary: "s"}, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	paper, err := svc.Upload(context.Background(), UploadInput{FullText: "text"})
	require.NoError(t, err)
	require.Equal(t, "Untitled", paper.Title)
}

func TestUploadSummarizeFailurePersistsNothing(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{summarizeErr: errBoom}
	svc := newPaperService(store, gen, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	_, err := svc.Upload(context.Background(), UploadInput{Title: "t", FullText: "text"})
	require.Error(t, err)
	require.Empty(t, store.papers)
}

func TestUploadInsertFailureReturnsError(t *testing.T) {
	store := newFakeStore()
	store.createErr = errBoom
	pub := &fakePublisher{}
	svc := newPaperService(store, &fakeGenerator{summary: "s"}, pub, newFakeAuditStore(), newFakeBiasCache())

	_, err := svc.Upload(context.Background(), UploadInput{Title: "t", FullText: "text"})
	require.Error(t, err)
	require.Empty(t, store.papers)
	require.Empty(t, pub.records)
}

func TestGetUnknownPaper(t *testing.T) {
	svc := newPaperService(newFakeStore(), &fakeGenerator{}, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrPaperNotFound)
}

func TestDeleteRemovesPaperAndScratch(t *testing.T) {
	store := newFakeStore()
	cache := newFakeBiasCache()
	audit := newFakeAuditStore()
	svc := newPaperService(store, &fakeGenerator{summary: "s"}, &fakePublisher{}, audit, cache)

	paper, err := svc.Upload(context.Background(), UploadInput{Title: "t", FullText: "text"})
	require.NoError(t, err)
	cache.entries[paper.ID] = "cached bias"
	audit.records[paper.ID] = append(audit.records[paper.ID], model.AnalysisRecord{PaperID: paper.ID, Kind: model.AnalysisKindBias})

	require.NoError(t, svc.Delete(context.Background(), paper.ID))
	require.Empty(t, store.papers)
	require.NotContains(t, cache.entries, paper.ID)
	require.NotContains(t, audit.records, paper.ID)
}

func TestDeleteUnknownPaper(t *testing.T) {
	svc := newPaperService(newFakeStore(), &fakeGenerator{}, &fakePublisher{}, newFakeAuditStore(), newFakeBiasCache())

	err := svc.Delete(context.Background(), 7)
	require.ErrorIs(t, err, ErrPaperNotFound)
}

func TestUploadSurvivesPublishFailure(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{publishErr: errBoom}
	svc := newPaperService(store, &fakeGenerator{summary: "s"}, pub, newFakeAuditStore(), newFakeBiasCache())

	paper, err := svc.Upload(context.Background(), UploadInput{Title: "t", FullText: "text"})
	require.NoError(t, err)
	require.Contains(t, store.papers, paper.ID)
}
