package overlay

import "github.com/Faultbox/sceneview/internal/gui"

// closePopupID is the title and ID of the save confirmation modal.
const closePopupID = "Save before exiting?"

// errorPopupID is the title and ID of the modal reporting a failed save.
const errorPopupID = "Save failed"

const closeButtonWidth = 120

// CloseState is the state of the quit confirmation flow.
type CloseState int

const (
	CloseIdle CloseState = iota
	CloseConfirmPending
	CloseResolvedSave
	CloseResolvedDiscard
)

func (s CloseState) String() string {
	switch s {
	case CloseIdle:
		return "idle"
	case CloseConfirmPending:
		return "confirm-pending"
	case CloseResolvedSave:
		return "resolved-save"
	case CloseResolvedDiscard:
		return "resolved-discard"
	default:
		return "unknown"
	}
}

// CloseChoice is the user's answer to the confirmation modal.
type CloseChoice int

const (
	ChoiceNone CloseChoice = iota
	ChoiceSave
	ChoiceDiscard
	ChoiceCancel
)

// FileCloseState guards application exit when there are unsaved changes.
// The host polls ShouldClose and saves first when SaveChanges is set.
type FileCloseState struct {
	RequestingClose bool
	UnsavedChanges  bool
	ShouldClose     bool
	SaveChanges     bool
}

// NewFileCloseState returns the startup state. Unsaved changes are assumed
// until the host says otherwise.
func NewFileCloseState() FileCloseState {
	return FileCloseState{UnsavedChanges: true}
}

// State derives the flow state from the flags.
func (s *FileCloseState) State() CloseState {
	switch {
	case s.ShouldClose && s.SaveChanges:
		return CloseResolvedSave
	case s.ShouldClose:
		return CloseResolvedDiscard
	case s.RequestingClose:
		return CloseConfirmPending
	default:
		return CloseIdle
	}
}

// RequestQuit records a quit request. It does nothing once resolved.
func (s *FileCloseState) RequestQuit() {
	if s.ShouldClose {
		return
	}
	s.RequestingClose = true
}

// Resolve advances a pending quit request. Without unsaved changes any call
// resolves straight to exit without saving. With unsaved changes ChoiceNone
// leaves the state untouched, so it can run every frame.
func (s *FileCloseState) Resolve(choice CloseChoice) {
	if !s.RequestingClose {
		return
	}

	if !s.UnsavedChanges {
		s.SaveChanges = false
		s.ShouldClose = true
		s.RequestingClose = false
		return
	}

	switch choice {
	case ChoiceSave:
		s.SaveChanges = true
		s.ShouldClose = true
		s.RequestingClose = false
	case ChoiceDiscard:
		s.SaveChanges = false
		s.ShouldClose = true
		s.RequestingClose = false
	case ChoiceCancel:
		s.SaveChanges = false
		s.ShouldClose = false
		s.RequestingClose = false
	}
}

// Reset rearms the flow for a new session, for hosts that keep running
// after handling a resolved close.
func (s *FileCloseState) Reset(unsaved bool) {
	*s = FileCloseState{UnsavedChanges: unsaved}
}

// ShowClosePopup runs one frame of the confirmation flow. While a quit is
// pending with unsaved changes the modal is opened every frame until the
// user picks an answer.
func ShowClosePopup(v gui.View, s *FileCloseState) {
	if !s.RequestingClose {
		return
	}
	if !s.UnsavedChanges {
		s.Resolve(ChoiceNone)
		return
	}

	v.OpenPopup(closePopupID)
	if !v.BeginPopupModal(closePopupID) {
		return
	}

	v.Text("So you want to save before exiting?\nThis operation cannot be undone!")
	v.Separator()

	choice := ChoiceNone
	if v.Button("Save and Exit", closeButtonWidth) {
		choice = ChoiceSave
	}
	v.SameLine()
	if v.Button("Exit Without Saving", closeButtonWidth) {
		choice = ChoiceDiscard
	}
	v.SameLine()
	if v.Button("Cancel", closeButtonWidth) {
		choice = ChoiceCancel
	}

	if choice != ChoiceNone {
		s.Resolve(choice)
		v.CloseCurrentPopup()
	}
	v.EndPopup()
}

// ShowErrorPopup keeps a modal with *msg open until the user acknowledges
// it, then clears *msg.
func ShowErrorPopup(v gui.View, msg *string) {
	if *msg == "" {
		return
	}

	v.OpenPopup(errorPopupID)
	if !v.BeginPopupModal(errorPopupID) {
		return
	}
	v.Text(*msg)
	v.Separator()
	if v.Button("OK", closeButtonWidth) {
		*msg = ""
		v.CloseCurrentPopup()
	}
	v.EndPopup()
}
