package tui

// Actions holds the optional handlers behind the header affordances.
// A nil handler makes the affordance a no-op.
type Actions struct {
	OnVideoCall func()
	OnCall      func()
	OnSearch    func()
}

// VideoCall runs the video call handler if one is set
func (a Actions) VideoCall() {
	if a.OnVideoCall != nil {
		a.OnVideoCall()
	}
}

// Call runs the voice call handler if one is set
func (a Actions) Call() {
	if a.OnCall != nil {
		a.OnCall()
	}
}

// Search runs the search handler if one is set
func (a Actions) Search() {
	if a.OnSearch != nil {
		a.OnSearch()
	}
}
