package intent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed tables.yaml
var defaultTables []byte

// Tables holds the immutable keyword tables driving classification.
// Built once at start-up and shared by every request.
type Tables struct {
	navigationPhrases []string
	categories        []Category
	roleKeywords      map[string][]string
	categoryRoleBoost map[string]map[string]float64
	promptKeywords    []string
	promptIndicators  []string
	chatSubtypes      map[string]string

	navReplies      map[string][]string
	categoryReplies map[string][]string
	promptReplies   []string
	topicReplies    []TopicReplies
	roleReplies     map[string][]string
}

// LoadDefaultTables decodes the tables compiled into the binary.
func LoadDefaultTables() (*Tables, error) {
	return LoadTables(defaultTables)
}

// LoadTablesFile decodes tables from a YAML file.
func LoadTablesFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent tables %s: %w", path, err)
	}
	return LoadTables(data)
}

// LoadTables decodes and validates a YAML tables document.
// All phrases are lower-cased so matching can run on a lower-cased message.
func LoadTables(data []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeTables, err)
	}

	if len(f.NavigationPhrases) == 0 {
		return nil, ErrNoNavigation
	}
	if len(f.Categories) == 0 {
		return nil, ErrNoCategories
	}

	t := &Tables{
		navigationPhrases: lowerAll(f.NavigationPhrases),
		categories:        make([]Category, 0, len(f.Categories)),
		roleKeywords:      make(map[string][]string, len(f.RoleKeywords)),
		categoryRoleBoost: make(map[string]map[string]float64, len(f.CategoryRoleBoost)),
		promptKeywords:    lowerAll(f.PromptKeywords),
		promptIndicators:  lowerAll(f.PromptIndicators),
		chatSubtypes:      make(map[string]string, len(f.ChatSubtypes)),
		navReplies:        cloneMap(f.QuickReplies.Navigation),
		categoryReplies:   cloneMap(f.QuickReplies.Categories),
		promptReplies:     append([]string(nil), f.QuickReplies.Prompt...),
		roleReplies:       cloneMap(f.QuickReplies.Roles),
	}

	seen := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = true
		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, c.Name)
		}

		rules := make([]QueryTypeRule, len(c.QueryTypes))
		for i, r := range c.QueryTypes {
			rules[i] = QueryTypeRule{Keyword: strings.ToLower(r.Keyword), QueryType: r.QueryType}
		}
		t.categories = append(t.categories, Category{
			Name:       c.Name,
			Keywords:   lowerAll(c.Keywords),
			QueryTypes: rules,
		})
	}

	for role, kws := range f.RoleKeywords {
		t.roleKeywords[role] = lowerAll(kws)
	}
	for category, boosts := range f.CategoryRoleBoost {
		m := make(map[string]float64, len(boosts))
		for role, v := range boosts {
			m[role] = v
		}
		t.categoryRoleBoost[category] = m
	}
	for role, subtype := range f.ChatSubtypes {
		t.chatSubtypes[role] = subtype
	}
	for _, topic := range f.QuickReplies.Topics {
		t.topicReplies = append(t.topicReplies, TopicReplies{
			Name:     topic.Name,
			Keywords: lowerAll(topic.Keywords),
			Replies:  append([]string(nil), topic.Replies...),
		})
	}

	return t, nil
}

// Categories returns a copy of the category table in declaration order.
func (t *Tables) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{
			Name:       c.Name,
			Keywords:   append([]string(nil), c.Keywords...),
			QueryTypes: append([]QueryTypeRule(nil), c.QueryTypes...),
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}
