package facematch

import (
	"reflect"
	"testing"
)

func TestCache_PutAndGet(t *testing.T) {
	c := NewCache()
	c.Put(KnownFace{Name: "alice", Encoding: []float32{1, 2, 3}})

	face, ok := c.Get("alice")
	if !ok {
		t.Fatal("expected alice to be present")
	}
	if !reflect.DeepEqual(face.Encoding, []float32{1, 2, 3}) {
		t.Errorf("unexpected encoding: %v", face.Encoding)
	}

	if _, ok := c.Get("bob"); ok {
		t.Error("expected bob to be absent")
	}
}

func TestCache_PutReplaceKeepsPosition(t *testing.T) {
	c := NewCache()
	c.Put(KnownFace{Name: "alice", Encoding: []float32{1, 1, 1}})
	c.Put(KnownFace{Name: "bob", Encoding: []float32{2, 2, 2}})
	c.Put(KnownFace{Name: "alice", Encoding: []float32{9, 9, 9}})

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}

	names := c.Names()
	if !reflect.DeepEqual(names, []string{"alice", "bob"}) {
		t.Errorf("expected order [alice bob], got %v", names)
	}

	face, _ := c.Get("alice")
	if face.Encoding[0] != 9 {
		t.Errorf("expected updated encoding, got %v", face.Encoding)
	}
}

func TestCache_Delete(t *testing.T) {
	c := NewCache()
	c.Put(KnownFace{Name: "alice"})
	c.Put(KnownFace{Name: "bob"})

	c.Delete("alice")
	if _, ok := c.Get("alice"); ok {
		t.Error("expected alice to be gone")
	}
	if !reflect.DeepEqual(c.Names(), []string{"bob"}) {
		t.Errorf("expected order [bob], got %v", c.Names())
	}

	// Deleting an unknown name is a no-op.
	c.Delete("carol")
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after no-op delete, got %d", c.Len())
	}
}

func TestCache_SnapshotIsolation(t *testing.T) {
	c := NewCache()
	c.Put(KnownFace{Name: "alice", Encoding: []float32{1, 1, 1}})

	snap := c.Snapshot()
	c.Put(KnownFace{Name: "bob", Encoding: []float32{2, 2, 2}})
	c.Delete("alice")

	if len(snap) != 1 || snap[0].Name != "alice" {
		t.Errorf("snapshot changed after cache mutation: %v", snap)
	}
}

func TestCache_Hydrate(t *testing.T) {
	c := NewCache()
	c.Put(KnownFace{Name: "stale"})

	c.Hydrate([]KnownFace{
		{Name: "alice", Encoding: []float32{1, 1, 1}},
		{Name: "bob", Encoding: []float32{2, 2, 2}},
	})

	if !reflect.DeepEqual(c.Names(), []string{"alice", "bob"}) {
		t.Errorf("expected hydrated order [alice bob], got %v", c.Names())
	}
	if _, ok := c.Get("stale"); ok {
		t.Error("expected stale entry to be dropped by hydration")
	}
}
