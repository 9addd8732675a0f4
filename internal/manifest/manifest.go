// Package manifest reads league manifests: YAML files declaring reusable
// roster templates and the teams to register for a season.
//
//	templates:
//	  youth-core:
//	    - {name: Ana, number: 1}
//	    - {template: keeper}
//	player_templates:
//	  keeper: {name: Casillas, number: 13}
//	teams:
//	  - name: Leones FC
//	    division: youth
//	    coach: Carlos Ruiz
//	    template: youth-core
//	    players:
//	      - {name: Bea, number: 7}
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/leagueroster/internal/catalog"
	"github.com/Iron-Ham/leagueroster/internal/division"
	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

// File is a parsed manifest.
type File struct {
	Templates       map[string][]PlayerSpec `yaml:"templates,omitempty"`
	PlayerTemplates map[string]PlayerSpec   `yaml:"player_templates,omitempty"`
	Teams           []TeamSpec              `yaml:"teams,omitempty"`
}

// PlayerSpec is either a literal player (name and number) or a reference
// to a player template.
type PlayerSpec struct {
	Name     string `yaml:"name,omitempty"`
	Number   int    `yaml:"number,omitempty"`
	Template string `yaml:"template,omitempty"`
}

// TeamSpec describes one team to build.
type TeamSpec struct {
	Name     string       `yaml:"name"`
	Division string       `yaml:"division"`
	Coach    string       `yaml:"coach,omitempty"`
	Captain  string       `yaml:"captain,omitempty"`
	Color    string       `yaml:"color,omitempty"`
	Template string       `yaml:"template,omitempty"` // roster template cloned before Players
	Players  []PlayerSpec `yaml:"players,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", path)
	}
	return f, nil
}

// Parse decodes and checks a manifest. Unknown keys are an error.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for key, p := range f.PlayerTemplates {
		if p.Template != "" {
			return errors.NewValidationError(fmt.Sprintf("player template %q cannot reference another template", key)).
				WithField("player_templates").
				WithValue(key).
				WithCause(errors.ErrInvalidInput)
		}
	}
	for key, players := range f.Templates {
		for i, p := range players {
			if err := p.validate(); err != nil {
				return errors.Wrapf(err, "template %q player %d", key, i+1)
			}
		}
	}
	for i, t := range f.Teams {
		for j, p := range t.Players {
			if err := p.validate(); err != nil {
				return errors.Wrapf(err, "team %d (%s) player %d", i+1, t.Name, j+1)
			}
		}
	}
	return nil
}

func (p PlayerSpec) validate() error {
	hasLiteral := p.Name != "" || p.Number != 0
	if p.Template != "" && hasLiteral {
		return errors.NewValidationError("player entry sets both template and name/number").
			WithField("template").
			WithValue(p.Template).
			WithCause(errors.ErrInvalidInput)
	}
	if p.Template == "" && strings.TrimSpace(p.Name) == "" {
		return errors.NewValidationError("player entry needs a name or a template").
			WithField("name").
			WithCause(errors.ErrMissingField)
	}
	return nil
}

// Seed replaces the catalog contents with the manifest's templates. Roster
// templates may reference player templates from the same file. On error the
// catalog is left untouched.
func (f *File) Seed(cat *catalog.Catalog) error {
	players := make(map[string]roster.Player, len(f.PlayerTemplates))
	for key, spec := range f.PlayerTemplates {
		p, err := roster.NewPlayer(spec.Name, spec.Number)
		if err != nil {
			return errors.Wrapf(err, "player template %q", key)
		}
		players[key] = p
	}

	teams := make(map[string][]roster.Player, len(f.Templates))
	for key, specs := range f.Templates {
		resolved := make([]roster.Player, 0, len(specs))
		for _, spec := range specs {
			if spec.Template == "" {
				p, err := roster.NewPlayer(spec.Name, spec.Number)
				if err != nil {
					return errors.Wrapf(err, "template %q", key)
				}
				resolved = append(resolved, p)
				continue
			}
			p, ok := players[spec.Template]
			if !ok {
				return errors.Wrapf(errors.NewNotFoundError("player template", spec.Template).
					WithCause(errors.ErrTemplateNotFound), "template %q", key)
			}
			resolved = append(resolved, p)
		}
		teams[key] = resolved
	}

	cat.ReplaceAll(teams, players)
	return nil
}

// Builder returns a roster builder populated from t: division and
// staff set, the roster template cloned from cat, then each listed player
// added in order. Nothing is built yet; the caller runs Build.
func (t TeamSpec) Builder(cat *catalog.Catalog) (*roster.Builder, error) {
	d, err := division.Parse(t.Division)
	if err != nil {
		return nil, errors.Wrapf(err, "team %q", t.Name)
	}

	b := roster.NewBuilder().
		ForDivision(d).
		Name(t.Name).
		Coach(t.Coach).
		Captain(t.Captain).
		Color(t.Color)

	if t.Template != "" {
		players, err := cat.CloneTeamTemplate(t.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "team %q", t.Name)
		}
		if err := b.AddPlayers(players...); err != nil {
			return nil, errors.Wrapf(err, "team %q template %q", t.Name, t.Template)
		}
	}

	for _, spec := range t.Players {
		if spec.Template != "" {
			p, err := cat.ClonePlayer(spec.Template)
			if err != nil {
				return nil, errors.Wrapf(err, "team %q", t.Name)
			}
			if err := b.AddPlayers(p); err != nil {
				return nil, errors.Wrapf(err, "team %q", t.Name)
			}
			continue
		}
		if err := b.AddPlayer(spec.Name, spec.Number); err != nil {
			return nil, errors.Wrapf(err, "team %q", t.Name)
		}
	}
	return b, nil
}

// Build is Builder followed by Build.
func (t TeamSpec) Build(cat *catalog.Catalog) (*roster.Team, error) {
	b, err := t.Builder(cat)
	if err != nil {
		return nil, err
	}
	team, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "team %q", t.Name)
	}
	return team, nil
}
