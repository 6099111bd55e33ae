package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ErrAdminFieldForbidden is the request-level rejection raised when a
// non-admin requester tries to change the admin flag. It is deliberately not
// a FieldErrors entry: the payload can be syntactically valid and still be
// rejected for lack of authorization.
var ErrAdminFieldForbidden = fmt.Errorf("%w: admin field requires an admin requester", ErrForbidden)

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrCommentsDisabled = errors.New("comments are disabled for this post")
var ErrRateLimited = errors.New("too many requests")

// FieldErrors accumulates validation failures keyed by input field so a
// caller can render every problem from one request in a single response.
type FieldErrors map[string][]string

// Add appends a message to the given field's error list.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Empty reports whether no field has accumulated an error.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Error renders the map deterministically, fields in sorted order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], "; "))
	}
	return strings.Join(parts, " | ")
}
