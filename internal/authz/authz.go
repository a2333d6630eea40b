// Package authz holds the pure authorization decision functions. Every gated
// mutation asks here first; nothing in this package touches the database or
// the request.
package authz

import (
	"forum/internal/model"
	"forum/internal/pkg"
)

// Decision is the tagged outcome of an authorization check. Unauthenticated
// (no identity at all) is distinct from Unauthorized (identity present,
// insufficient privilege): the first sends the actor to the login flow, the
// second only produces a notice.
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Unauthorized
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unauthorized"
	}
}

// Err maps a denial onto the boundary error taxonomy; nil when allowed.
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case Unauthenticated:
		return pkg.ErrUnauthenticated
	default:
		return pkg.ErrUnauthorized
	}
}

// CanCreatePost: any authenticated user.
func CanCreatePost(actor *model.User) Decision {
	if actor == nil {
		return Unauthenticated
	}
	return Allowed
}

// CanEditPost: the post's owner or an admin.
func CanEditPost(actor *model.User, post *model.Post) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if post.AuthorID == actor.ID || actor.IsAdmin {
		return Allowed
	}
	return Unauthorized
}

// CanDeletePost: same rule as edit.
func CanDeletePost(actor *model.User, post *model.Post) Decision {
	return CanEditPost(actor, post)
}

// CanEditComment: the comment's owner or an admin. Anonymous comments have no
// owner, so only an admin may edit them.
func CanEditComment(actor *model.User, comment *model.Comment) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if actor.IsAdmin {
		return Allowed
	}
	if comment.AuthorID != nil && *comment.AuthorID == actor.ID {
		return Allowed
	}
	return Unauthorized
}

// CanDeleteComment: the comment's owner, the parent post's owner, or an admin.
func CanDeleteComment(actor *model.User, comment *model.Comment, parent *model.Post) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if actor.IsAdmin || parent.AuthorID == actor.ID {
		return Allowed
	}
	if comment.AuthorID != nil && *comment.AuthorID == actor.ID {
		return Allowed
	}
	return Unauthorized
}

// CanManageRoles: admins only.
func CanManageRoles(actor *model.User) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if !actor.IsAdmin {
		return Unauthorized
	}
	return Allowed
}

// CanRevokeAdmin: an admin may revoke anyone's admin flag except their own.
// Self-revocation is an explicit rejection, not a silent no-op.
func CanRevokeAdmin(actor, target *model.User) Decision {
	if d := CanManageRoles(actor); d != Allowed {
		return d
	}
	if actor.ID == target.ID {
		return Unauthorized
	}
	return Allowed
}

// CanDeleteUser: an admin may delete any account but their own.
func CanDeleteUser(actor, target *model.User) Decision {
	if d := CanManageRoles(actor); d != Allowed {
		return d
	}
	if actor.ID == target.ID {
		return Unauthorized
	}
	return Allowed
}

// CanLikePost: any authenticated user; likes have no ownership rule beyond
// the unique (user, post) pair.
func CanLikePost(actor *model.User) Decision {
	if actor == nil {
		return Unauthenticated
	}
	return Allowed
}

// CanPostAnonymousComment: always allowed, no identity required.
func CanPostAnonymousComment() Decision {
	return Allowed
}
