package tui

// SubmitPreviewMsg asks the root model to validate the draft and open the preview
type SubmitPreviewMsg struct{}

// toastExpiredMsg dismisses the toast with the matching sequence number
type toastExpiredMsg struct {
	seq int
}

// printDoneMsg reports that the print request was handed to the host
type printDoneMsg struct{}

// emailDoneMsg carries the delivery collaborator's answer
type emailDoneMsg struct {
	err error
}
