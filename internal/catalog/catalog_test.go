package catalog

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

func baseRoster() []roster.Player {
	return []roster.Player{
		roster.MustPlayer("Pérez", 1),
		roster.MustPlayer("Gómez", 2),
		roster.MustPlayer("Ruiz", 3),
	}
}

func TestCatalog_CloneTeamTemplate(t *testing.T) {
	c := New()
	c.PutTeamTemplate("base", baseRoster())

	got, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if !slices.Equal(got, baseRoster()) {
		t.Errorf("clone = %v, want %v", got, baseRoster())
	}
}

func TestCatalog_CloneIsolation(t *testing.T) {
	c := New()
	c.PutTeamTemplate("base", baseRoster())

	first, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	first[0] = roster.MustPlayer("Intruso", 99)
	first = append(first, roster.MustPlayer("Extra", 4))

	second, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if !slices.Equal(second, baseRoster()) {
		t.Errorf("second clone = %v, want untouched template", second)
	}
	if len(first) != 4 {
		t.Errorf("first clone len = %d, want 4", len(first))
	}
}

func TestCatalog_PutStoresCopy(t *testing.T) {
	c := New()
	src := baseRoster()
	c.PutTeamTemplate("base", src)

	src[1] = roster.MustPlayer("Changed", 42)

	got, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if got[1].Name() != "Gómez" {
		t.Errorf("stored template changed through caller slice: %v", got[1])
	}
}

func TestCatalog_PutOverwrites(t *testing.T) {
	c := New()
	c.PutTeamTemplate("base", baseRoster())
	c.PutTeamTemplate("base", []roster.Player{roster.MustPlayer("Solo", 9)})

	got, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if len(got) != 1 || got[0].JerseyNumber() != 9 {
		t.Errorf("clone = %v, want overwritten template", got)
	}
}

func TestCatalog_EmptyTemplateClonesNonNil(t *testing.T) {
	c := New()
	c.PutTeamTemplate("empty", nil)

	got, err := c.CloneTeamTemplate("empty")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("clone = %#v, want empty non-nil slice", got)
	}
}

func TestCatalog_NotFound(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		call     func() error
		resource string
	}{
		{
			name: "team template",
			call: func() error {
				_, err := c.CloneTeamTemplate("missing")
				return err
			},
			resource: "team template",
		},
		{
			name: "player template",
			call: func() error {
				_, err := c.ClonePlayer("missing")
				return err
			},
			resource: "player template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var nf *errors.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("error = %v, want NotFoundError", err)
			}
			if nf.ResourceType != tt.resource || nf.ResourceID != "missing" {
				t.Errorf("NotFoundError = %+v", nf)
			}
			if !errors.Is(err, errors.ErrTemplateNotFound) {
				t.Error("error should wrap ErrTemplateNotFound")
			}
		})
	}
}

func TestCatalog_ClonePlayer(t *testing.T) {
	c := New()
	c.PutPlayerTemplate("keeper", roster.MustPlayer("Casillas", 1))

	p, err := c.ClonePlayer("keeper")
	if err != nil {
		t.Fatalf("ClonePlayer: %v", err)
	}
	if p.Name() != "Casillas" || p.JerseyNumber() != 1 {
		t.Errorf("ClonePlayer = %v", p)
	}
}

func TestCatalog_Keys(t *testing.T) {
	c := New()
	c.PutTeamTemplate("zeta", nil)
	c.PutTeamTemplate("alpha", nil)
	c.PutPlayerTemplate("striker", roster.MustPlayer("A", 9))
	c.PutPlayerTemplate("keeper", roster.MustPlayer("B", 1))

	if got, want := c.TeamTemplateKeys(), []string{"alpha", "zeta"}; !slices.Equal(got, want) {
		t.Errorf("TeamTemplateKeys() = %v, want %v", got, want)
	}
	if got, want := c.PlayerTemplateKeys(), []string{"keeper", "striker"}; !slices.Equal(got, want) {
		t.Errorf("PlayerTemplateKeys() = %v, want %v", got, want)
	}
	if got := c.String(); got != "catalog(2 rosters, 2 players)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCatalog_ReplaceAll(t *testing.T) {
	c := New()
	c.PutTeamTemplate("old", baseRoster())
	c.PutPlayerTemplate("old", roster.MustPlayer("Old", 1))

	teams := map[string][]roster.Player{"new": baseRoster()}
	c.ReplaceAll(teams, map[string]roster.Player{"keeper": roster.MustPlayer("K", 1)})
	teams["new"][0] = roster.MustPlayer("Mutated", 50)

	if _, err := c.CloneTeamTemplate("old"); !errors.Is(err, errors.ErrTemplateNotFound) {
		t.Errorf("old template still present: %v", err)
	}
	if _, err := c.ClonePlayer("old"); !errors.Is(err, errors.ErrTemplateNotFound) {
		t.Errorf("old player template still present: %v", err)
	}
	got, err := c.CloneTeamTemplate("new")
	if err != nil {
		t.Fatalf("CloneTeamTemplate(new): %v", err)
	}
	if got[0].Name() != "Pérez" {
		t.Errorf("ReplaceAll kept a reference to the caller map: %v", got[0])
	}
}

func TestCatalog_ConcurrentClones(t *testing.T) {
	c := New()
	c.PutTeamTemplate("base", baseRoster())

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := c.CloneTeamTemplate("base")
			if err != nil {
				errs <- err
				return
			}
			// each clone is private to its goroutine
			for j := range got {
				got[j] = roster.MustPlayer(fmt.Sprintf("W%d", i), i)
			}
			if i%4 == 0 {
				c.PutPlayerTemplate(fmt.Sprintf("p%d", i), roster.MustPlayer("X", i))
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent clone: %v", err)
	}

	got, err := c.CloneTeamTemplate("base")
	if err != nil {
		t.Fatalf("CloneTeamTemplate: %v", err)
	}
	if !slices.Equal(got, baseRoster()) {
		t.Errorf("template changed by concurrent clones: %v", got)
	}
	if n := len(c.PlayerTemplateKeys()); n != workers/4 {
		t.Errorf("player templates = %d, want %d", n, workers/4)
	}
}
