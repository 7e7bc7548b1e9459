package monitor

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/quantlark/oi-sentinel/internal/entity"
)

// fakeMarket serves scripted market data. Successive BulkPrices calls pop
// the next price map, OpenInterest answers from the batch matching the
// latest BulkPrices call (the assembler always fetches prices first).
type fakeMarket struct {
	mu sync.Mutex

	prices    []map[string]float64
	pricesErr error
	priceIdx  int

	oi []map[string]float64

	funding    map[string]float64
	fundingErr error
}

func (m *fakeMarket) BulkPrices(ctx context.Context) (map[string]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pricesErr != nil {
		return nil, m.pricesErr
	}
	if m.priceIdx >= len(m.prices) {
		return map[string]float64{}, nil
	}
	res := m.prices[m.priceIdx]
	m.priceIdx++
	return res, nil
}

func (m *fakeMarket) FundingRates(ctx context.Context) (map[string]float64, error) {
	if m.fundingErr != nil {
		return nil, m.fundingErr
	}
	return m.funding, nil
}

func (m *fakeMarket) OpenInterest(ctx context.Context, symbol string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.priceIdx - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.oi) {
		return 0, fmt.Errorf("no open interest scripted for batch %d", idx)
	}
	oi, ok := m.oi[idx][symbol]
	if !ok {
		return 0, fmt.Errorf("open interest unavailable for %s", symbol)
	}
	return oi, nil
}

type fakeSymbols struct {
	symbols []string
	err     error
}

func (s *fakeSymbols) EligibleSymbols(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.symbols, nil
}

type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Send(ctx context.Context, url string, data map[string]any) error {
	args := m.Called(ctx, url, data)
	return args.Error(0)
}

type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Append(ctx context.Context, rows []entity.SnapshotRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}
