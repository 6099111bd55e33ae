package domain

// Principal is the actor behind a request: anonymous, a regular user, or an
// admin. It carries only what authorization decisions need; the full User
// record is always re-read from the store.
type Principal struct {
	ID            string
	Username      string
	Admin         bool
	Authenticated bool
}

// Anonymous is the zero principal used for unauthenticated requests.
var Anonymous = Principal{}

// CanAccess reports whether the principal may read or mutate the target
// user record. Pure function of its inputs; callers must re-evaluate it per
// request rather than cache the answer.
//
// Rules, in order: anonymous principals are always denied, admins may act on
// any target, everyone else only on their own record.
func (p Principal) CanAccess(target *User) bool {
	if !p.Authenticated {
		return false
	}
	if p.Admin {
		return true
	}
	return target != nil && p.ID == target.ID
}
