package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billscan/internal/domain"
	"billscan/internal/port"
)

// MockBillExtractor is a mock implementation of port.BillExtractor.
type MockBillExtractor struct {
	mock.Mock
}

func (m *MockBillExtractor) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockBillExtractor) Extract(ctx context.Context, doc domain.EncodedDocument) (*port.ExtractOutput, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}
