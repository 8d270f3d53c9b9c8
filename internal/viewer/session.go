package viewer

import "github.com/Faultbox/sceneview/pkg/scene"

// session remembers the editable document state as of the last load or
// save, so unsaved edits can be detected.
type session struct {
	path    string
	cameras []scene.Camera
}

func newSession(doc *scene.Document) *session {
	return &session{
		path:    doc.Path,
		cameras: append([]scene.Camera(nil), doc.Cameras...),
	}
}

// dirty reports whether doc changed since the session was taken. A document
// without a path always counts as unsaved.
func (s *session) dirty(doc *scene.Document) bool {
	if doc.Path == "" || doc.Path != s.path {
		return true
	}
	if len(doc.Cameras) != len(s.cameras) {
		return true
	}
	for i := range doc.Cameras {
		if !sameCameraSettings(&doc.Cameras[i], &s.cameras[i]) {
			return true
		}
	}
	return false
}

// sameCameraSettings compares the fields a user can edit. Derived vectors
// and matrices are ignored.
func sameCameraSettings(a, b *scene.Camera) bool {
	return a.Name == b.Name &&
		a.Sensitivity == b.Sensitivity &&
		a.Position == b.Position &&
		a.Pitch == b.Pitch &&
		a.Roll == b.Roll &&
		a.Yaw == b.Yaw &&
		a.FOV == b.FOV
}
