package wizard

import (
	"fmt"
	"strings"

	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// SubmitPasscode compares the entered code against the generated one.
// Exact string equality, no normalization beyond trimming the form value.
// A wrong code leaves the session untouched so the visitor can retry.
func (s *Service) SubmitPasscode(st *session.State, code string) error {
	if st.Celebrity == nil {
		return ErrNoCelebrity
	}

	if strings.TrimSpace(code) != st.Celebrity.GenCode {
		logger.Log.Warn(fmt.Sprintf("[wizard] Wrong passcode for celebrity %q.", st.Celebrity.Name))
		return ErrWrongPasscode
	}

	st.CelebLocked = true
	logger.Log.Info(fmt.Sprintf("[wizard] Passcode confirmed for %q, client intake unlocked.", st.Celebrity.Name))
	return nil
}
