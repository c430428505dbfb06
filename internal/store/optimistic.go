package store

// mutation is one optimistic change. apply edits the state and returns the
// revert to run on failure; revert must only restore values captured by apply.
// call performs the request. confirm, when set, adopts the server's answer.
type mutation struct {
	apply   func(st *State) (revert func(st *State))
	call    func() error
	confirm func(st *State)
	failMsg string
}

func (s *Store) optimistic(m mutation) error {
	var revert func(st *State)
	s.update(func(st *State) {
		revert = m.apply(st)
	})

	if err := m.call(); err != nil {
		msg := errorMessage(err, m.failMsg)
		s.update(func(st *State) {
			if revert != nil {
				revert(st)
			}
			st.Error = msg
		})
		return err
	}

	if m.confirm != nil {
		s.update(m.confirm)
	}
	return nil
}
