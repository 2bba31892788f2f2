// Package access decides, per actor and action, whether an operation on a
// resource is permitted. The rule set is a fixed strategy table keyed by
// (resource, action); list actions are always allowed here because list
// endpoints narrow their queryset to the actor instead of erroring.
package access

// Role is the authorization role carried by an authenticated actor.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
)

// Actor is an authenticated identity performing a request.
type Actor struct {
	ID    int64
	Email string
	Role  Role
}

// IsModerator reports whether the actor has the moderator role.
func (a Actor) IsModerator() bool {
	return a.Role == RoleModerator
}

// Resource identifies the kind of entity an action targets.
type Resource string

const (
	ResourceCourse       Resource = "course"
	ResourceLesson       Resource = "lesson"
	ResourceSubscription Resource = "subscription"
	ResourcePayment      Resource = "payment"
)

// Action identifies the operation performed on a resource.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

type rule func(actor Actor, isOwner bool) bool

func anyActor(Actor, bool) bool { return true }

func nonModerator(actor Actor, _ bool) bool { return !actor.IsModerator() }

func moderatorOrOwner(actor Actor, isOwner bool) bool {
	return actor.IsModerator() || isOwner
}

func ownerOnly(_ Actor, isOwner bool) bool { return isOwner }

var rules = map[Resource]map[Action]rule{
	ResourceCourse: {
		ActionList:     anyActor,
		ActionRetrieve: moderatorOrOwner,
		ActionCreate:   nonModerator,
		ActionUpdate:   moderatorOrOwner,
		ActionDestroy:  ownerOnly,
	},
	ResourceLesson: {
		ActionList:     anyActor,
		ActionRetrieve: moderatorOrOwner,
		ActionCreate:   nonModerator,
		ActionUpdate:   moderatorOrOwner,
		ActionDestroy:  ownerOnly,
	},
	ResourceSubscription: {
		ActionCreate:  nonModerator,
		ActionDestroy: nonModerator,
	},
	ResourcePayment: {
		ActionList:     anyActor,
		ActionRetrieve: anyActor,
		ActionCreate:   anyActor,
	},
}

// Allowed evaluates the policy table for the given actor, action and
// resource. isOwner tells whether the actor owns the target resource;
// it is ignored by rules that do not care about ownership. Unknown
// (resource, action) pairs are denied.
func Allowed(actor Actor, action Action, resource Resource, isOwner bool) bool {
	actions, ok := rules[resource]
	if !ok {
		return false
	}

	r, ok := actions[action]
	if !ok {
		return false
	}

	return r(actor, isOwner)
}
