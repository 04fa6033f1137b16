package progression

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
)

//go:embed data/skills.yaml
var bundledTree []byte

// Sentinel errors for tree loading
var (
	ErrDuplicateSkill = errors.New("duplicate skill id")
	ErrInvalidTree    = errors.New("invalid skill tree")
)

// TreeConfig is the YAML layout of a skill tree file
type TreeConfig struct {
	Version     string        `yaml:"version"`
	Description string        `yaml:"description"`
	Skills      []SkillConfig `yaml:"skills"`
}

// SkillConfig is one skill entry of a tree file
type SkillConfig struct {
	ID            string  `yaml:"id" validate:"required"`
	Name          string  `yaml:"name" validate:"required"`
	Description   string  `yaml:"description"`
	Cost          int     `yaml:"cost" validate:"gt=0"`
	MaxLevel      int     `yaml:"max_level" validate:"gt=0"`
	Effect        string  `yaml:"effect" validate:"oneof=base_attack base_defense max_hp starting_money money_per_round attack_multiplier defense_multiplier"`
	ValuePerLevel float64 `yaml:"value_per_level" validate:"gt=0"`
}

// Tree is an immutable, validated skill tree
type Tree struct {
	skills []domain.Skill
	byID   map[domain.SkillID]domain.Skill
}

var (
	treeValidator     *validator.Validate
	treeValidatorOnce sync.Once
)

func getTreeValidator() *validator.Validate {
	treeValidatorOnce.Do(func() {
		treeValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return treeValidator
}

// ParseTree decodes and validates a YAML skill tree
func ParseTree(data []byte) (*Tree, error) {
	var cfg TreeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTree, err)
	}
	if err := ValidateTree(&cfg); err != nil {
		return nil, err
	}
	return newTree(cfg.Skills), nil
}

// LoadTree reads a skill tree file from disk
func LoadTree(ctx context.Context, path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTree, err)
	}
	tree, err := ParseTree(data)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgTreeLoaded, "path", path, "skills", tree.Len())
	return tree, nil
}

var (
	defaultTree     *Tree
	defaultTreeOnce sync.Once
)

// DefaultTree returns the bundled skill tree. The bundled file is validated
// by tests, so a parse failure here is a build defect.
func DefaultTree() *Tree {
	defaultTreeOnce.Do(func() {
		tree, err := ParseTree(bundledTree)
		if err != nil {
			panic(err)
		}
		defaultTree = tree
	})
	return defaultTree
}

// ValidateTree checks field rules and id uniqueness
func ValidateTree(cfg *TreeConfig) error {
	if cfg == nil || len(cfg.Skills) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTree, ErrMsgEmptyTree)
	}

	v := getTreeValidator()
	seen := make(map[string]bool, len(cfg.Skills))
	for i := range cfg.Skills {
		s := &cfg.Skills[i]
		if err := v.Struct(s); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				if s.ID == "" {
					return fmt.Errorf("%w: "+ErrMsgSkillAtIndexFmt, ErrInvalidTree, i, verrs[0].Tag(), verrs[0].Field())
				}
				return fmt.Errorf("%w: "+ErrMsgSkillFieldFmt, ErrInvalidTree, s.ID, verrs[0].Tag(), verrs[0].Field())
			}
			return fmt.Errorf("%w: %v", ErrInvalidTree, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateSkill, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

func newTree(configs []SkillConfig) *Tree {
	t := &Tree{
		skills: make([]domain.Skill, 0, len(configs)),
		byID:   make(map[domain.SkillID]domain.Skill, len(configs)),
	}
	for _, c := range configs {
		s := domain.Skill{
			ID:            domain.SkillID(c.ID),
			Name:          c.Name,
			Description:   c.Description,
			Cost:          c.Cost,
			MaxLevel:      c.MaxLevel,
			Effect:        domain.SkillEffectType(c.Effect),
			ValuePerLevel: c.ValuePerLevel,
		}
		t.skills = append(t.skills, s)
		t.byID[s.ID] = s
	}
	return t
}

// Len returns the number of skills
func (t *Tree) Len() int {
	return len(t.skills)
}

// All returns every skill in file order
func (t *Tree) All() []domain.Skill {
	return append([]domain.Skill(nil), t.skills...)
}

// Skill looks up a skill by id
func (t *Tree) Skill(id domain.SkillID) (domain.Skill, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// TotalCost is the number of points needed to max a skill
func TotalCost(s domain.Skill) int {
	return s.Cost * s.MaxLevel
}
