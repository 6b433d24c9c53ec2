package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParallelTasksPreservesOrder(t *testing.T) {
	tasks := []ParallelTask{
		func() (interface{}, error) { return "first", nil },
		func() (interface{}, error) { return "second", nil },
		func() (interface{}, error) { return nil, errors.New("third failed") },
	}

	results, errs := RunParallelTasks(tasks)

	require.Len(t, results, 3)
	require.Len(t, errs, 3)
	assert.Equal(t, "first", results[0])
	assert.Equal(t, "second", results[1])
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.EqualError(t, errs[2], "third failed")
}

func TestRunParallelTasksEmpty(t *testing.T) {
	results, errs := RunParallelTasks(nil)
	assert.Empty(t, results)
	assert.Empty(t, errs)
}
