package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}

// MockImageClient devuelve siempre los mismos bytes o error.
type MockImageClient struct {
	Data []byte
	Err  error
}

func (m *MockImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	return m.Data, m.Err
}
