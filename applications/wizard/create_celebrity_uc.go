package wizard

import (
	"fmt"
	"strings"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// CreateCelebrity starts (or restarts) the wizard. It generates the 4-digit
// passcode, stores the profile in the session, and wipes any previous lock
// and pending order. The celebrity step is the only sanctioned re-entry
// point into the wizard.
func (s *Service) CreateCelebrity(st *session.State, name, imageURL string) order.Celebrity {
	celeb := order.Celebrity{
		Name:     strings.TrimSpace(name),
		ImageURL: imageURL,
		GenCode:  order.NewPasscode(),
	}

	st.Celebrity = &celeb
	st.CelebLocked = false
	st.PendingOrder = nil

	logger.Log.Info(fmt.Sprintf("[wizard] Celebrity profile %q created, passcode generated.", celeb.Name))
	return celeb
}
