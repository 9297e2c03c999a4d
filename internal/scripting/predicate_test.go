package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/soren-hale/charforge/internal/scripting"
)

func TestEvalAvailability_LevelGlobal(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	ok, err := eval.EvalAvailability("level >= 5", 7, "wizard")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eval.EvalAvailability("level >= 5", 3, "wizard")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvalAvailability_ClassGlobal(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	ok, err := eval.EvalAvailability(`class == "bard"`, 1, "bard")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eval.EvalAvailability(`class == "bard"`, 1, "wizard")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvalAvailability_CompoundExpression(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	ok, err := eval.EvalAvailability(`level % 2 == 0 and class ~= "monk"`, 4, "bard")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvalAvailability_ParseError(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	_, err := eval.EvalAvailability("level >=", 1, "wizard")
	assert.Error(t, err)
}

func TestEvalAvailability_NonBooleanResult(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	_, err := eval.EvalAvailability("level + 1", 1, "wizard")
	assert.Error(t, err)
}

func TestEvalAvailability_InstructionLimit(t *testing.T) {
	eval := scripting.NewEvaluator(25, zap.NewNop())

	_, err := eval.EvalAvailability("(function() while true do end end)()", 1, "wizard")
	assert.Error(t, err)
}

func TestAvailable_ErrorMeansUnavailable(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())

	assert.False(t, eval.Available("this is not lua", 1, "wizard"))
	assert.True(t, eval.Available("true", 1, "wizard"))
}

func TestProperty_EvalAvailability_Deterministic(t *testing.T) {
	eval := scripting.NewEvaluator(0, zap.NewNop())
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 20).Draw(t, "level")
		first, err := eval.EvalAvailability("level >= 10", level, "wizard")
		require.NoError(t, err)
		second, err := eval.EvalAvailability("level >= 10", level, "wizard")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, level >= 10, first)
	})
}
