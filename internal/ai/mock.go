package ai

import "context"

// MockClient permite tests sin llamar al proveedor real.
type MockClient struct {
	Response string
	Err      error
	// LastRequest guarda la ultima invocacion para inspeccion en tests.
	LastRequest GenerateRequest
	Calls       int
}

func (m *MockClient) Generate(_ context.Context, req GenerateRequest) (string, error) {
	m.LastRequest = req
	m.Calls++
	return m.Response, m.Err
}
