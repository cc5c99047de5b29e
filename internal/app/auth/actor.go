// Package auth carries the resolved request identity and the role allow-list
// primitives used by the authorization policy.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/aydink/mentorlink/internal/app/models"
)

// actorKey is the gin context key the auth middleware stores the actor under
const actorKey = "actor"

// Actor is the resolved {id, role} attached to every authenticated request.
// Services dispatch on Role through per-variant methods rather than comparing
// raw strings at call sites.
type Actor struct {
	ID       int64
	Role     models.Role
	FullName string
}

// IsStudent reports whether the actor is a student
func (a Actor) IsStudent() bool { return a.Role == models.RoleStudent }

// IsMentor reports whether the actor is a mentor
func (a Actor) IsMentor() bool { return a.Role == models.RoleMentor }

// IsPlacementOfficer reports whether the actor is a placement officer
func (a Actor) IsPlacementOfficer() bool { return a.Role == models.RolePlacementOfficer }

// Attach stores the actor on the request context
func Attach(c *gin.Context, actor Actor) {
	c.Set(actorKey, actor)
}

// FromContext retrieves the actor resolved by the auth middleware
func FromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// RoleSet is an endpoint's role allow-list. An empty set admits any
// authenticated role.
type RoleSet []models.Role

// Allows reports whether the role passes the allow-list
func (s RoleSet) Allows(role models.Role) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}
