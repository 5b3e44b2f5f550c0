package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"renti/internal/models"
)

//go:embed landing.yaml
var landingYAML []byte

type LandingService interface {
	Content() *models.LandingContent
}

type landingService struct {
	content *models.LandingContent
}

// NewLandingService parses the embedded marketing copy once.
func NewLandingService() (LandingService, error) {
	content, err := ParseLandingContent(landingYAML)
	if err != nil {
		return nil, err
	}
	return &landingService{content: content}, nil
}

func ParseLandingContent(data []byte) (*models.LandingContent, error) {
	var content models.LandingContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse landing content: %w", err)
	}
	if content.Hero.Headline == "" || len(content.Features) == 0 {
		return nil, fmt.Errorf("landing content is missing hero or features")
	}
	return &content, nil
}

func (s *landingService) Content() *models.LandingContent {
	return s.content
}
