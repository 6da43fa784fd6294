package analyst

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicAnalyst(t *testing.T) {
	a := NewAnthropicAnalyst("test-key")

	assert.NotEqual(t, nil, a.client)
	assert.Equal(t, anthropic.ModelClaudeHaiku4_5, a.model)
}
