package overlay

import (
	"fmt"

	"github.com/Faultbox/sceneview/internal/gui"
	"github.com/Faultbox/sceneview/pkg/taskqueue"
)

// ShowTaskInspector draws the task queue window.
func ShowTaskInspector(v gui.View, open *bool, snap *taskqueue.Snapshot) {
	if v.BeginWindow(titleTasks, open) {
		RenderTaskQueue(v, snap)
	}
	v.EndWindow()
}

// RenderTaskQueue lists the live tasks of a snapshot from tail to head.
// It only reads the snapshot; the queue's own cursors are never touched.
func RenderTaskQueue(v gui.View, snap *taskqueue.Snapshot) {
	if snap == nil {
		v.TextDisabled("No task queue")
		return
	}

	v.Text(fmt.Sprintf("Capacity: %d", snap.Capacity()))
	v.Text(fmt.Sprintf("Head: %d  Tail: %d", snap.Head, snap.Tail))
	v.Text(fmt.Sprintf("Stride: %d bytes", snap.Stride))
	v.Text(fmt.Sprintf("Queued: %d", snap.Len()))
	v.Separator()

	snap.Walk(func(slot int, t taskqueue.Task) {
		v.Text(fmt.Sprintf("[%d] %s", slot, t.Name))
	})
}
