package catalog

import (
	"sync"
	"testing"

	"github.com/litescript/ls-starfield/internal/astro"
)

func TestStore_NotReady(t *testing.T) {
	s := NewStore()

	if s.Ready() {
		t.Error("new store should not be ready")
	}
	if got := s.StarsByProximity(10); len(got) != 0 {
		t.Errorf("StarsByProximity on empty store = %d stars, want 0", len(got))
	}
	if got := s.AllStars(); len(got) != 0 {
		t.Errorf("AllStars on empty store = %d stars, want 0", len(got))
	}
	if _, ok := s.StarByID(0); ok {
		t.Error("StarByID on empty store should miss")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_LoadReplaces(t *testing.T) {
	s := NewStore()
	s.Load([]Star{{ID: 1}, {ID: 2}})

	if !s.Ready() {
		t.Fatal("store should be ready after Load")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	s.Load([]Star{{ID: 3}})
	if _, ok := s.StarByID(1); ok {
		t.Error("star 1 survived a reload that removed it")
	}
	if _, ok := s.StarByID(3); !ok {
		t.Error("star 3 missing after reload")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	s.Load(DefaultStars())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i%2 == 0 {
					s.Load([]Star{{ID: j, Position: astro.Vec3{X: float64(j)}}})
				} else {
					_ = s.StarsByProximity(5)
					_, _ = s.StarByID(j)
				}
			}
		}(i)
	}
	wg.Wait()

	if !s.Ready() {
		t.Error("store should remain ready")
	}
}

func TestStore_ImplementsAccessor(t *testing.T) {
	var _ Accessor = NewStore()
	var _ Accessor = NewMemory(nil)
}
