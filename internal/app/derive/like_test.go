package derive

import "testing"

func TestToggleLike_RequiresActor(t *testing.T) {
	_, err := ToggleLike(LikeTarget{ID: "db1"}, "")
	if err != ErrSignInRequired {
		t.Fatalf("got %v, want ErrSignInRequired", err)
	}
}

func TestToggleLike_SeedPromotionDiscardsSeedCount(t *testing.T) {
	// Seed item ships with a decorative like count; promotion must not carry
	// it forward.
	target := LikeTarget{
		ID:    "static_muf_5",
		Seed:  true,
		Likes: 55,
		Views: 170,
	}

	res, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if res.Action != LikePromote {
		t.Fatalf("got action %v, want LikePromote", res.Action)
	}
	if res.Likes != 1 {
		t.Errorf("likes: got %d, want 1", res.Likes)
	}
	if got := res.LikedBy.List(); len(got) != 1 || got[0] != "u1" {
		t.Errorf("likedBy: got %v, want [u1]", got)
	}
	if res.Views != 171 {
		t.Errorf("views: got %d, want 171 (promotion bumps the counter)", res.Views)
	}
	if !res.Liked {
		t.Error("promotion must report the target as liked")
	}
}

func TestToggleLike_SeedNeverTogglesOff(t *testing.T) {
	// Even if the seed copy somehow lists the actor already, the first
	// mutation path only turns the like on.
	var set IDSet
	set.Add("u1")
	target := LikeTarget{ID: "static_muf_9", Seed: true, Likes: 7, LikedBy: set}

	res, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if res.Action != LikePromote || res.Likes != 1 || !res.Liked {
		t.Errorf("got %+v, want promote with likes=1", res)
	}
}

func TestToggleLike_PersistedToggleOnThenOff(t *testing.T) {
	target := LikeTarget{ID: "db1", Likes: 3, LikedBy: ParseLikedByString("a,b,c")}

	on, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if on.Action != LikeUpdate || on.Likes != 4 || !on.LikedBy.Has("u1") || !on.Liked {
		t.Fatalf("toggle on: got %+v", on)
	}

	// Feed the result back in, as the live subscription echo would.
	target.Likes = on.Likes
	target.LikedBy = on.LikedBy

	off, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if off.Likes != 3 {
		t.Errorf("double toggle: likes got %d, want original 3", off.Likes)
	}
	if off.LikedBy.Has("u1") || off.Liked {
		t.Error("double toggle: actor still in liking set")
	}
	if got := off.LikedBy.Delimited(); got != "a,b,c" {
		t.Errorf("double toggle: set got %q, want original %q", got, "a,b,c")
	}
}

func TestToggleLike_DecrementFloorsAtZero(t *testing.T) {
	// A stored count that disagrees with the set (server-side drift) must not
	// go negative.
	target := LikeTarget{ID: "db1", Likes: 0, LikedBy: ParseLikedByString("u1")}

	res, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if res.Likes != 0 {
		t.Errorf("likes: got %d, want floor at 0", res.Likes)
	}
}

func TestToggleLike_CountMatchesSetCardinality(t *testing.T) {
	target := LikeTarget{ID: "db1", Likes: 2, LikedBy: ParseLikedByString("a,b")}

	res, err := ToggleLike(target, "u1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if res.Likes != res.LikedBy.Len() {
		t.Errorf("likes %d != set cardinality %d", res.Likes, res.LikedBy.Len())
	}
}

func TestToggleLike_DoesNotMutateCallerSet(t *testing.T) {
	set := ParseLikedByString("a,b")
	target := LikeTarget{ID: "db1", Likes: 2, LikedBy: set}

	if _, err := ToggleLike(target, "u1"); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if set.Len() != 2 || set.Has("u1") {
		t.Errorf("caller's set was mutated: %v", set.List())
	}
}
