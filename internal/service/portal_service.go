package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

// ErrBotDetected срабатывание honeypot поля лид-формы. По задумке наружу не показывается:
// боту отдается обычный успешный ответ, запись не создается.
var ErrBotDetected = errors.New("bot detected")

const defaultListLimit = 100

// PortalService обслуживает тонкие разделы портала: рассылки, рефералов и лиды TCF формы.
type PortalService struct {
	newsletterRepo NewsletterRepository
	referralRepo   ReferralRepository
	leadRepo       TCFLeadRepository
}

func NewPortalService(u uow.UOW) (*PortalService, error) {
	newsletterRepo, nErr := uow.GetRepositoryAs[NewsletterRepository](
		u, uow.RepositoryName(repoargs.NewsletterRepoName))
	if nErr != nil {
		return nil, nErr
	}
	referralRepo, rErr := uow.GetRepositoryAs[ReferralRepository](
		u, uow.RepositoryName(repoargs.ReferralRepoName))
	if rErr != nil {
		return nil, rErr
	}
	leadRepo, lErr := uow.GetRepositoryAs[TCFLeadRepository](
		u, uow.RepositoryName(repoargs.TCFLeadRepoName))
	if lErr != nil {
		return nil, lErr
	}
	return &PortalService{
		newsletterRepo: newsletterRepo,
		referralRepo:   referralRepo,
		leadRepo:       leadRepo,
	}, nil
}

func (s *PortalService) CreateNewsletter(ctx context.Context, args repoargs.CreateNewsletter) (*domain.Newsletter, error) {
	newsletter, err := s.newsletterRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating newsletter: %w", err)
	}
	return newsletter, nil
}

func (s *PortalService) PublishedNewsletters(ctx context.Context) ([]domain.Newsletter, error) {
	newsletters, err := s.newsletterRepo.GetPublished(ctx, defaultListLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return newsletters, nil
}

func (s *PortalService) CreateReferral(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error) {
	referral, err := s.referralRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating referral: %w", err)
	}
	return referral, nil
}

func (s *PortalService) Referrals(ctx context.Context) ([]domain.Referral, error) {
	referrals, err := s.referralRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return referrals, nil
}

func (s *PortalService) SetReferralActive(ctx context.Context, id int64, active bool) error {
	if err := s.referralRepo.SetActive(ctx, id, active); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// SubmitTCFLead сохраняет лид публичной формы. Заполненный honeypot означает бота:
// возвращается ErrBotDetected, хендлер молча отвечает успехом.
func (s *PortalService) SubmitTCFLead(
	ctx context.Context,
	args repoargs.CreateTCFLead,
	honeypot string,
) (*domain.TCFLead, error) {
	if honeypot != "" {
		return nil, ErrBotDetected
	}
	lead, err := s.leadRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("submitting tcf lead: %w", err)
	}
	return lead, nil
}

func (s *PortalService) TCFLeads(ctx context.Context) ([]domain.TCFLead, error) {
	leads, err := s.leadRepo.GetAll(ctx, defaultListLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return leads, nil
}
