package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/manningwu07/regression/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultFormula = `Z = randn(500, 30)
X = Z
X[:,0] = 2000*Z[:,0] + 5000
X[:,1] = 100*Z[:,1] - 20
X[:,7] = 50*Z[:,7] + 120 - 10*Z[:,3]
y = 2*X[:,0] - 3*X[:,1] + X[:,7] + 20*randn(500)`

func TestFormulaDefault(t *testing.T) {
	assert.Equal(t, defaultFormula, Formula())
}

func TestFormulaFollowsConfig(t *testing.T) {
	saved := params.Config
	t.Cleanup(func() { params.Config = saved })

	params.Config.Rows = 10
	params.Config.Transforms = []params.ColumnTransform{{Col: 2, Scale: 1, Offset: 0, HasRef: true, Ref: 4, RefCoef: 0.5}}
	params.Config.Target = []params.TargetTerm{{Col: 2, Coef: -1}, {Col: 5, Coef: 0}}
	params.Config.NoiseScale = 0

	want := `Z = randn(10, 30)
X = Z
X[:,2] = Z[:,2] + 0.5*Z[:,4]
y = -X[:,2]`
	assert.Equal(t, want, Formula())
}

func TestJoinTermsEmpty(t *testing.T) {
	assert.Equal(t, "0", joinTerms(nil))
	assert.Equal(t, "0", joinTerms([]term{{0, "Z[:,1]"}, {0, ""}}))
	assert.Equal(t, "-1.5 + 1e+06*a", joinTerms([]term{{-1.5, ""}, {1e6, "a"}}))
}

func TestDescribe(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Describe(&b))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, describeHeader, lines[0])
	for i, want := range strings.Split(defaultFormula, "\n") {
		assert.Equal(t, "    "+want, lines[i+1])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDescribePropagatesWriteError(t *testing.T) {
	assert.EqualError(t, Describe(failingWriter{}), "closed")
}
