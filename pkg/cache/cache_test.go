package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	c := New[string, []string]()

	_, ok := c.Get("breaking")
	if ok {
		t.Error("expected ok=false for missing key")
	}

	c.Set("breaking", []string{"Breaking Bad"})
	val, ok := c.Get("breaking")
	if !ok {
		t.Fatal("expected ok=true for existing key")
	}
	if len(val) != 1 || val[0] != "Breaking Bad" {
		t.Errorf("unexpected value %v", val)
	}

	c.Set("breaking", []string{"Breaking Bad", "Breaking In"})
	val, _ = c.Get("breaking")
	if len(val) != 2 {
		t.Errorf("expected overwrite, got %v", val)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1 after overwrite, got %d", c.Size())
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()
	c.Set("key", 1)
	c.Delete("key")
	if _, ok := c.Get("key"); ok {
		t.Error("expected key to be deleted")
	}

	// deleting a missing key is a no-op
	c.Delete("missing")
	if c.Size() != 0 {
		t.Errorf("expected size 0, got %d", c.Size())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n%10)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Size() != 10 {
		t.Errorf("expected size 10, got %d", c.Size())
	}
}
