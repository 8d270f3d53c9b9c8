package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/internal/gui/guitest"
	"github.com/Faultbox/sceneview/pkg/taskqueue"
)

func taskRows(rec *guitest.Recorder) []string {
	var rows []string
	for _, text := range rec.Texts() {
		if strings.HasPrefix(text, "[") {
			rows = append(rows, text)
		}
	}
	return rows
}

func TestRenderTaskQueueEmpty(t *testing.T) {
	q := taskqueue.New(4)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(taskqueue.Task{Name: "warmup"}))
		q.Pop()
	}
	head, tail := q.Cursors()
	snap := q.Snapshot()

	rec := guitest.New()
	RenderTaskQueue(rec, &snap)

	assert.Empty(t, taskRows(rec))
	assert.Contains(t, rec.Texts(), "Queued: 0")

	h, tl := q.Cursors()
	assert.Equal(t, head, h)
	assert.Equal(t, tail, tl)
	assert.Equal(t, head, snap.Head)
	assert.Equal(t, tail, snap.Tail)
}

func TestRenderTaskQueueWrapped(t *testing.T) {
	q := taskqueue.New(4)
	for _, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, q.Push(taskqueue.Task{Name: n}))
	}
	q.Pop()
	q.Pop()
	for _, n := range []string{"e", "f"} {
		require.NoError(t, q.Push(taskqueue.Task{Name: n}))
	}
	head, tail := q.Cursors()
	snap := q.Snapshot()

	rec := guitest.New()
	RenderTaskQueue(rec, &snap)

	assert.Equal(t, []string{"[2] c", "[3] d", "[4] e", "[0] f"}, taskRows(rec))
	assert.Contains(t, rec.Texts(), "Capacity: 4")
	assert.Contains(t, rec.Texts(), "Head: 1  Tail: 2")

	// Drawing twice gives the same rows and moves no cursor.
	first := taskRows(rec)
	rec.NewFrame()
	RenderTaskQueue(rec, &snap)
	assert.Equal(t, first, taskRows(rec))

	h, tl := q.Cursors()
	assert.Equal(t, head, h)
	assert.Equal(t, tail, tl)
}

func TestRenderTaskQueueNil(t *testing.T) {
	rec := guitest.New()
	RenderTaskQueue(rec, nil)
	assert.Equal(t, []string{"No task queue"}, rec.Texts())
}

func TestShowTaskInspectorZeroSnapshot(t *testing.T) {
	var snap taskqueue.Snapshot
	open := true

	rec := guitest.New()
	ShowTaskInspector(rec, &open, &snap)

	assert.True(t, open)
	assert.True(t, rec.Balanced())
	assert.Contains(t, rec.Texts(), "Capacity: 0")
	assert.Empty(t, taskRows(rec))
}
