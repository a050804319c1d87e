package portfolio

// Session is the per-visitor filter state: at most one active tag.
type Session struct {
	active string
}

// NewSession restores a session from the active tag carried by a request.
func NewSession(active string) Session {
	return Session{active: active}
}

// Active returns the active tag, or "" when no filter is set.
func (s Session) Active() string { return s.active }

// Toggle activates tag, or clears the filter when tag is already active.
func (s Session) Toggle(tag string) Session {
	if s.active == tag {
		return Session{}
	}
	return Session{active: tag}
}

// Select activates tag unconditionally.
func (s Session) Select(tag string) Session {
	return Session{active: tag}
}

// Clear drops the active tag.
func (s Session) Clear() Session {
	return Session{}
}
