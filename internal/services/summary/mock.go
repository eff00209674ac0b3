package summary

import (
	"context"
)

// MockSummary is the canned response of the mock provider.
const MockSummary = `## 📋 Key Findings Summary
This is a sample summary produced without contacting a model endpoint.

## 📌 Main Test Results
- Sample result: set LLM_PROVIDER to a real provider to summarize reports

## 🩺 What This Means for You
Nothing; this text is for local development.

## 📅 Recommended Next Steps
- Discuss your real results with your doctor

## ⚠️ Important Disclaimer
This is an AI-generated summary for informational purposes only. It is NOT a substitute for professional medical advice.
`

// MockBackend answers every prompt with MockSummary.
type MockBackend struct{}

// NewMockBackend returns the development backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Generate implements Backend.
func (m *MockBackend) Generate(_ context.Context, _ string, _ string) (string, error) {
	return MockSummary, nil
}

// ListModels implements ModelLister.
func (m *MockBackend) ListModels(_ context.Context) ([]ModelInfo, error) {
	return []ModelInfo{{Name: DefaultModels[ProviderMock], Description: "Canned local responses"}}, nil
}
