package family

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxRecommendations = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateMember(ctx context.Context, userID uuid.UUID, req CreateMemberRequest) (*Member, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Relationship == "" {
		return nil, fmt.Errorf("relationship is required")
	}
	m := &Member{
		UserID:       userID,
		Name:         req.Name,
		Relationship: req.Relationship,
		DateOfBirth:  req.DateOfBirth,
		Notes:        req.Notes,
	}
	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, userID uuid.UUID) ([]*Member, error) {
	return s.repo.ListMembers(ctx, userID)
}

func (s *Service) AddCondition(ctx context.Context, userID, memberID uuid.UUID, req AddConditionRequest) error {
	if req.ConditionName == "" {
		return fmt.Errorf("condition_name is required")
	}
	return s.repo.AddCondition(ctx, userID, memberID, req)
}

var titleCaser = cases.Title(language.English)

// RiskPatterns groups the family's conditions case-insensitively and reports
// any condition seen in two or more relatives, with a screening
// recommendation per pattern.
func (s *Service) RiskPatterns(ctx context.Context, userID uuid.UUID) (*RiskReport, error) {
	conditions, err := s.repo.ListConditions(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := &RiskReport{Patterns: []RiskPattern{}, Recommendations: []string{}}
	if len(conditions) == 0 {
		return report, nil
	}

	type group struct {
		count         int
		relationships []string
		ages          []int
	}
	groups := make(map[string]*group)
	var order []string
	for _, c := range conditions {
		name := strings.ToLower(c.ConditionName)
		g, ok := groups[name]
		if !ok {
			g = &group{}
			groups[name] = g
			order = append(order, name)
		}
		g.count++
		g.relationships = append(g.relationships, c.Relationship)
		if c.AgeAtDiagnosis != nil {
			g.ages = append(g.ages, *c.AgeAtDiagnosis)
		}
	}

	for _, name := range order {
		g := groups[name]
		if g.count < 2 {
			continue
		}
		p := RiskPattern{
			Condition:             titleCaser.String(name),
			FamilyMembersAffected: g.count,
			Relationships:         distinct(g.relationships),
			RiskLevel:             "elevated",
		}
		if len(g.ages) > 0 {
			sum := 0
			for _, a := range g.ages {
				sum += a
			}
			avg := int(math.Round(float64(sum) / float64(len(g.ages))))
			p.AverageAgeAtDiagnosis = &avg
		}
		report.Patterns = append(report.Patterns, p)
		if len(report.Recommendations) < maxRecommendations {
			report.Recommendations = append(report.Recommendations, fmt.Sprintf(
				"Consider discussing %s screening with your doctor due to family history (%d family members affected).",
				name, g.count,
			))
		}
	}
	return report, nil
}

func distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
