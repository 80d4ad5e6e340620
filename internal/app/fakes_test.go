package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"paperlens/internal/model"
)

type fakeStore struct {
	papers    map[uint]model.Paper
	nextID    uint
	createErr error
	listErr   error
	getErr    error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{papers: map[uint]model.Paper{}, nextID: 1}
}

func (f *fakeStore) Create(paper *model.Paper) error {
	if f.createErr != nil {
		return f.createErr
	}
	paper.ID = f.nextID
	paper.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	f.nextID++
	f.papers[paper.ID] = *paper
	return nil
}

func (f *fakeStore) List() ([]model.Paper, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	list := make([]model.Paper, 0, len(f.papers))
	for _, p := range f.papers {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (f *fakeStore) GetByID(id uint) (*model.Paper, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.papers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) DeleteByID(id uint) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.papers[id]; !ok {
		return false, nil
	}
	delete(f.papers, id)
	return true, nil
}

type fakeGenerator struct {
	summary      string
	bias         string
	answer       string
	summarizeErr error
	biasErr      error
	answerErr    error

	summarizeCalls int
	biasCalls      int
	answerCalls    int
}

func (f *fakeGenerator) Model() string { return "fake-model" }

func (f *fakeGenerator) Summarize(ctx context.Context, text string) (string, error) {
	f.summarizeCalls++
	if f.summarizeErr != nil {
		return "", f.summarizeErr
	}
	return f.summary, nil
}

func (f *fakeGenerator) DetectBias(ctx context.Context, text string) (string, error) {
	f.biasCalls++
	if f.biasErr != nil {
		return "", f.biasErr
	}
	return f.bias, nil
}

func (f *fakeGenerator) AnswerQuestion(ctx context.Context, text, question string) (string, error) {
	f.answerCalls++
	if f.answerErr != nil {
		return "", f.answerErr
	}
	return f.answer, nil
}

type fakeBiasCache struct {
	entries map[uint]string
	getErr  error
	setErr  error
}

func newFakeBiasCache() *fakeBiasCache {
	return &fakeBiasCache{entries: map[uint]string{}}
}

func (f *fakeBiasCache) Get(ctx context.Context, paperID uint) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.entries[paperID]
	return v, ok, nil
}

func (f *fakeBiasCache) Set(ctx context.Context, paperID uint, analysis string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[paperID] = analysis
	return nil
}

func (f *fakeBiasCache) Delete(ctx context.Context, paperID uint) error {
	delete(f.entries, paperID)
	return nil
}

type fakePublisher struct {
	records    []model.AnalysisRecord
	publishErr error
}

func (f *fakePublisher) Publish(ctx context.Context, record model.AnalysisRecord) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.records = append(f.records, record)
	return nil
}

type fakeAuditStore struct {
	records map[uint][]model.AnalysisRecord
}

func newFakeAuditStore() *fakeAuditStore {
	return &fakeAuditStore{records: map[uint][]model.AnalysisRecord{}}
}

func (f *fakeAuditStore) ListByPaperID(paperID uint) ([]model.AnalysisRecord, error) {
	return f.records[paperID], nil
}

func (f *fakeAuditStore) DeleteByPaperID(paperID uint) error {
	delete(f.records, paperID)
	return nil
}

var errBoom = errors.New("boom")
