package assert

import (
	"testing"

	"github.com/oomph-ac/traverse/oerror"
	"github.com/stretchr/testify/require"
)

func TestIsTrue(t *testing.T) {
	require.NotPanics(t, func() { IsTrue(true, "unused") })

	defer func() {
		err, ok := recover().(*oerror.TraverseError)
		require.True(t, ok)
		require.Equal(t, "bad layout 2x3", err.Error())
	}()
	IsTrue(false, "bad layout %dx%d", 2, 3)
}
