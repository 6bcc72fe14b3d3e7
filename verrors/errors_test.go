package verrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsupportedEntityMessageIncludesNameAndNumber(t *testing.T) {
	err := UnsupportedEntity{Name: "tree-01", EntityNumber: 7}
	msg := err.Error()
	require.Contains(t, msg, "tree-01")
	require.Contains(t, msg, "7")
}

func TestStructuralErrorUnwrapsToItself(t *testing.T) {
	err := NewStructuralError("flowgraph", "dangling edge reference")
	var target *StructuralError
	require.True(t, errors.As(err, &target))
	require.Equal(t, "flowgraph", target.Component)
	require.Equal(t, "dangling edge reference", target.Detail)
}
