package intelligence

import (
	"context"
	"fmt"
	"strings"

	"glamora/models"
)

// TextGenerator abstracts the underlying model so the copywriter can be
// tested without a live API key.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// CopywriterService produces short marketing copy for salon owners.
type CopywriterService interface {
	SalonDescription(ctx context.Context, salon *models.Salon) (string, error)
	ServiceBlurb(ctx context.Context, salonName string, svc *models.Service) (string, error)
	PromotionCopy(ctx context.Context, salonName string, promo *models.Promotion) (string, error)
}

type DefaultCopywriterService struct {
	Gen TextGenerator
}

func NewCopywriterService(gen TextGenerator) CopywriterService {
	return &DefaultCopywriterService{Gen: gen}
}

func (s *DefaultCopywriterService) SalonDescription(ctx context.Context, salon *models.Salon) (string, error) {
	var names []string
	for _, svc := range salon.Services {
		names = append(names, svc.Name)
	}
	prompt := fmt.Sprintf(
		"Write a warm, two-sentence description for a beauty salon named %q in %s. Services offered: %s. No hashtags, no emojis.",
		salon.Name, salon.City, strings.Join(names, ", "),
	)
	return s.generate(ctx, prompt)
}

func (s *DefaultCopywriterService) ServiceBlurb(ctx context.Context, salonName string, svc *models.Service) (string, error) {
	prompt := fmt.Sprintf(
		"Write a single enticing sentence advertising the service %q (%.2f) at the salon %q. No hashtags, no emojis.",
		svc.Name, svc.Price, salonName,
	)
	return s.generate(ctx, prompt)
}

func (s *DefaultCopywriterService) PromotionCopy(ctx context.Context, salonName string, promo *models.Promotion) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short promotional announcement for the salon %q. Offer: %s (%d%% off). Keep it under 40 words. No hashtags, no emojis.",
		salonName, promo.Title, promo.DiscountPercent,
	)
	return s.generate(ctx, prompt)
}

func (s *DefaultCopywriterService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("copywriter: %w", err)
	}
	return strings.TrimSpace(text), nil
}
