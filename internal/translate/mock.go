package translate

import "context"

// MockService for testing
type MockService struct {
	Result      *Result
	Err         error
	Calls       int
	LastRequest Request
}

func (m *MockService) Translate(ctx context.Context, req Request) (*Result, error) {
	m.Calls++
	m.LastRequest = req
	return m.Result, m.Err
}
