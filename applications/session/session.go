package session

import (
	"encoding/gob"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// State is the explicit per-visitor wizard state. It is loaded from the
// session cookie at the start of a request, handed to the wizard use cases,
// and written back once at the end. Nothing else carries wizard progress;
// the session predicates are the sole gates between steps.
type State struct {
	Celebrity    *order.Celebrity
	CelebLocked  bool
	PendingOrder *order.Order
}

const (
	sessionName = "fanmeet_session"

	keyCelebrity = "celebrity"
	keyLocked    = "celeb_locked"
	keyPending   = "pending_order"
)

func init() {
	// The cookie store gob-encodes values, so the session-resident types
	// must be registered up front.
	gob.Register(&order.Celebrity{})
	gob.Register(&order.Order{})
}

// Load rebuilds the visitor State from the request cookie. A missing,
// expired or undecodable cookie yields a fresh empty State, never an error
// the visitor has to see.
func Load(c echo.Context) *State {
	s, err := session.Get(sessionName, c)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[session] Undecodable cookie, starting fresh: %v", err))
		return &State{}
	}

	st := &State{}
	if v, ok := s.Values[keyCelebrity].(*order.Celebrity); ok {
		st.Celebrity = v
	}
	if v, ok := s.Values[keyLocked].(bool); ok {
		st.CelebLocked = v
	}
	if v, ok := s.Values[keyPending].(*order.Order); ok {
		st.PendingOrder = v
	}
	return st
}

// Save writes the State back into the cookie. Nil/false entries are removed
// so a cleared value really is absent on the next request.
func Save(c echo.Context, st *State) error {
	s, err := session.Get(sessionName, c)
	if err != nil {
		// Get returns a usable fresh session alongside decode errors.
		logger.Log.Warn(fmt.Sprintf("[session] Replacing undecodable cookie: %v", err))
	}
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	}

	if st.Celebrity != nil {
		s.Values[keyCelebrity] = st.Celebrity
	} else {
		delete(s.Values, keyCelebrity)
	}
	if st.CelebLocked {
		s.Values[keyLocked] = true
	} else {
		delete(s.Values, keyLocked)
	}
	if st.PendingOrder != nil {
		s.Values[keyPending] = st.PendingOrder
	} else {
		delete(s.Values, keyPending)
	}

	if err := s.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
