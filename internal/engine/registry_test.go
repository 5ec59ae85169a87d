package engine

import (
	"testing"

	"rps_arena/internal/domain"
)

func lobbyIDs(r *playerRegistry) []string {
	var out []string
	for _, p := range r.listInRoom(domain.RoomLobby) {
		out = append(out, p.ID)
	}
	return out
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := newPlayerRegistry()
	r.add("a")
	r.add("b")
	r.add("c")

	got := lobbyIDs(r)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lobby order = %v; want %v", got, want)
		}
	}

	// removal and re-add moves the player to the back of the queue
	r.remove("a")
	r.add("a")
	got = lobbyIDs(r)
	want = []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lobby order after re-add = %v; want %v", got, want)
		}
	}
}

func TestRegistrySetRoom(t *testing.T) {
	r := newPlayerRegistry()
	r.add("a")
	r.add("b")
	r.setRoom("a", "s-1234")

	if got := lobbyIDs(r); len(got) != 1 || got[0] != "b" {
		t.Fatalf("lobby = %v; want [b]", got)
	}
	if got := r.listInRoom("s-1234"); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("room s-1234 = %v; want [a]", got)
	}

	// no-ops on absent players
	r.setRoom("ghost", "s-1234")
	if r.remove("ghost") != nil {
		t.Fatal("removing an absent player returned a record")
	}
}

func TestRegistryDuplicateAdd(t *testing.T) {
	r := newPlayerRegistry()
	if !r.add("a") {
		t.Fatal("first add rejected")
	}
	r.setRoom("a", "s-1234")
	if r.add("a") {
		t.Fatal("duplicate add accepted")
	}
	if r.get("a").Room != "s-1234" {
		t.Fatal("duplicate add reset the room")
	}
}
