// Package seed loads the demo board fixture and backfills board access codes.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"kanban/internal/model"
	"kanban/internal/position"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed demo.yaml
var demo []byte

const dateLayout = "2006-01-02"

type Fixture struct {
	Board   BoardFixture    `yaml:"board"`
	Members []MemberFixture `yaml:"members"`
	Lists   []ListFixture   `yaml:"lists"`
}

type BoardFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Background  string `yaml:"background"`
}

type MemberFixture struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type ListFixture struct {
	Title    string        `yaml:"title"`
	Position int           `yaml:"position"`
	Color    string        `yaml:"color"`
	Cards    []CardFixture `yaml:"cards"`
}

type CardFixture struct {
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Position    int                `yaml:"position"`
	DueDate     string             `yaml:"dueDate"`
	Priority    string             `yaml:"priority"`
	Status      string             `yaml:"status"`
	Assignees   []string           `yaml:"assignees"`
	Checklist   []ChecklistFixture `yaml:"checklist"`
}

type ChecklistFixture struct {
	Content   string `yaml:"content"`
	Completed bool   `yaml:"completed"`
}

// Demo returns the embedded demo fixture.
func Demo() (*Fixture, error) {
	return Load(demo)
}

// Load parses a YAML fixture.
func Load(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Board.Title == "" {
		return nil, fmt.Errorf("fixture board title is required")
	}
	return &f, nil
}

// Graph is a fixture resolved into rows with ids already linked.
type Graph struct {
	Board       model.Board
	Members     []model.TeamMember
	Lists       []model.List
	Cards       []model.Card
	Assignments []model.CardAssignment
	Checklist   []model.ChecklistItem
}

// Build resolves names into ids. Unknown assignees, priorities or statuses are errors.
func (f *Fixture) Build() (*Graph, error) {
	g := &Graph{
		Board: model.Board{
			ID:         uuid.New(),
			Title:      f.Board.Title,
			Background: f.Board.Background,
		},
	}
	if f.Board.Description != "" {
		desc := f.Board.Description
		g.Board.Description = &desc
	}
	if g.Board.Background == "" {
		g.Board.Background = model.DefaultBoardBackground
	}

	members := make(map[string]uuid.UUID, len(f.Members))
	for _, m := range f.Members {
		member := model.TeamMember{ID: uuid.New(), BoardID: g.Board.ID, Name: m.Name, Color: m.Color}
		members[m.Name] = member.ID
		g.Members = append(g.Members, member)
	}

	for li, l := range f.Lists {
		list := model.List{ID: uuid.New(), BoardID: g.Board.ID, Title: l.Title, Position: l.Position}
		if list.Position == 0 {
			list.Position = position.Dense(li)
		}
		if l.Color != "" {
			color := l.Color
			list.Color = &color
		}
		g.Lists = append(g.Lists, list)

		for ci, c := range l.Cards {
			card, err := c.build(list.ID, ci)
			if err != nil {
				return nil, fmt.Errorf("card %q: %w", c.Title, err)
			}
			g.Cards = append(g.Cards, card)

			for _, name := range c.Assignees {
				memberID, ok := members[name]
				if !ok {
					return nil, fmt.Errorf("card %q: unknown assignee %q", c.Title, name)
				}
				g.Assignments = append(g.Assignments, model.CardAssignment{CardID: card.ID, TeamMemberID: memberID})
			}
			for ii, item := range c.Checklist {
				g.Checklist = append(g.Checklist, model.ChecklistItem{
					ID:        uuid.New(),
					CardID:    card.ID,
					Content:   item.Content,
					Completed: item.Completed,
					Position:  position.Dense(ii),
				})
			}
		}
	}
	return g, nil
}

func (c CardFixture) build(listID uuid.UUID, index int) (model.Card, error) {
	card := model.Card{
		ID:       uuid.New(),
		ListID:   listID,
		Title:    c.Title,
		Position: c.Position,
		Priority: model.PriorityMedium,
		Status:   model.StatusActive,
	}
	if card.Position == 0 {
		card.Position = position.Dense(index)
	}
	if c.Description != "" {
		desc := c.Description
		card.Description = &desc
	}
	if c.Priority != "" {
		if !model.ValidPriority(c.Priority) {
			return card, fmt.Errorf("invalid priority %q", c.Priority)
		}
		card.Priority = c.Priority
	}
	if c.Status != "" {
		if !model.ValidStatus(c.Status) {
			return card, fmt.Errorf("invalid status %q", c.Status)
		}
		card.Status = c.Status
	}
	if c.DueDate != "" {
		due, err := time.Parse(dateLayout, c.DueDate)
		if err != nil {
			return card, fmt.Errorf("invalid due date: %w", err)
		}
		card.DueDate = &due
	}
	return card, nil
}

// wipeOrder deletes children before parents.
var wipeOrder = []any{
	&model.CardAssignment{},
	&model.CardLabel{},
	&model.ChecklistItem{},
	&model.Card{},
	&model.List{},
	&model.Label{},
	&model.TeamMember{},
	&model.BoardAccess{},
	&model.Board{},
}

// Apply replaces every board with the fixture in a single transaction.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) (*model.Board, error) {
	g, err := f.Build()
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range wipeOrder {
			if err := wipe.Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}

		inserts := []any{&g.Board, &g.Members, &g.Lists, &g.Cards, &g.Assignments, &g.Checklist}
		for _, rows := range inserts {
			if isEmpty(rows) {
				continue
			}
			if err := tx.Omit(clause.Associations).Create(rows).Error; err != nil {
				return fmt.Errorf("insert %T: %w", rows, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &g.Board, nil
}

func isEmpty(rows any) bool {
	switch r := rows.(type) {
	case *[]model.TeamMember:
		return len(*r) == 0
	case *[]model.List:
		return len(*r) == 0
	case *[]model.Card:
		return len(*r) == 0
	case *[]model.CardAssignment:
		return len(*r) == 0
	case *[]model.ChecklistItem:
		return len(*r) == 0
	}
	return false
}
