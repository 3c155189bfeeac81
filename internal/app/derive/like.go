package derive

import "errors"

// ErrSignInRequired is returned by mutation planners invoked without an
// acting user. Callers surface a "must sign in" notice and perform no write.
var ErrSignInRequired = errors.New("sign in required")

// LikeAction tells the caller which write command to emit.
type LikeAction int

const (
	// LikePromote creates a brand-new document under the seed item's own id
	// with all fields snapshotted and the like state below.
	LikePromote LikeAction = iota
	// LikeUpdate writes only the changed count and set back to the existing
	// document.
	LikeUpdate
)

// LikeTarget describes the target at decision time. Seed marks a still-static
// item that has no persisted document yet; the distinction is an explicit
// field rather than an id-prefix convention so the two-path behavior stays a
// visible branch.
type LikeTarget struct {
	ID      string
	Seed    bool
	Likes   int
	LikedBy IDSet
	Views   int
}

// LikeResult is the planned write.
type LikeResult struct {
	Action  LikeAction
	Likes   int
	LikedBy IDSet
	Views   int  // only meaningful for LikePromote (promotion bumps the view counter)
	Liked   bool // whether the actor likes the target after the write
}

// ToggleLike plans the like mutation for actorID against t.
//
// Seed targets are promoted: the resulting document carries likes=1 and a
// liking set of exactly {actorID}; whatever like count the seed copy shipped
// with is discarded. This first-mutation path only turns the like on.
//
// Persisted targets toggle: present ⇒ remove and decrement (floored at zero),
// absent ⇒ add and increment. The invariant likes == len(likedBy) holds on
// every path this client writes.
func ToggleLike(t LikeTarget, actorID string) (LikeResult, error) {
	if actorID == "" {
		return LikeResult{}, ErrSignInRequired
	}

	if t.Seed {
		var set IDSet
		set.Add(actorID)
		return LikeResult{
			Action:  LikePromote,
			Likes:   1,
			LikedBy: set,
			Views:   t.Views + 1,
			Liked:   true,
		}, nil
	}

	set := ParseLikedByList(t.LikedBy.List()) // own copy; never mutate the caller's set
	if set.Has(actorID) {
		set.Remove(actorID)
		likes := t.Likes - 1
		if likes < 0 {
			likes = 0
		}
		return LikeResult{Action: LikeUpdate, Likes: likes, LikedBy: set}, nil
	}

	set.Add(actorID)
	return LikeResult{Action: LikeUpdate, Likes: t.Likes + 1, LikedBy: set, Liked: true}, nil
}
