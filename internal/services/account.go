package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/facades"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
)

// Error variables
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNoProcessorAccount   = errors.New("no payment processor account connected")
	ErrUnknownAccountPolicy = errors.New("unknown account status policy")
)

// Account status policies. Relaxed mirrors the processor's test-mode behavior
// where details may be submitted while charges are still pending review.
const (
	StatusPolicyRelaxed = "relaxed"
	StatusPolicyStrict  = "strict"
)

// ConnectGateway defines the processor onboarding operations.
type ConnectGateway interface {
	CreateAccount(ctx context.Context, email string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	RetrieveAccount(ctx context.Context, accountID string) (*facades.Account, error)
	CreateLoginLink(ctx context.Context, accountID string) (string, error)
}

// UserAccountWriter persists processor account fields on the user.
type UserAccountWriter interface {
	SetProcessorAccountID(ctx context.Context, userID uuid.UUID, accountID string) error
	SetOnboardingComplete(ctx context.Context, userID uuid.UUID, complete bool) error
}

// StatusCache caches account statuses.
type StatusCache interface {
	Get(ctx context.Context, accountID string) (*models.AccountStatus, error)
	Set(ctx context.Context, accountID string, status models.AccountStatus) error
}

// AccountService handles processor account onboarding and status checks.
type AccountService struct {
	reader  UserGetter
	writer  UserAccountWriter
	gateway ConnectGateway
	cache   StatusCache
	policy  string
}

// NewAccountService creates a new AccountService. policy selects how
// "connected" is derived from the account state; an empty value means relaxed.
func NewAccountService(reader UserGetter, writer UserAccountWriter, gateway ConnectGateway, cache StatusCache, policy string) (*AccountService, error) {
	if policy == "" {
		policy = StatusPolicyRelaxed
	}
	if policy != StatusPolicyRelaxed && policy != StatusPolicyStrict {
		return nil, ErrUnknownAccountPolicy
	}
	return &AccountService{
		reader:  reader,
		writer:  writer,
		gateway: gateway,
		cache:   cache,
		policy:  policy,
	}, nil
}

// Connect lazily creates a processor account for the user and mints an
// onboarding link pointing at the given redirect URLs.
func (s *AccountService) Connect(ctx context.Context, userID uuid.UUID, refreshURL, returnURL string) (string, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	accountID := ""
	if user.ProcessorAccountID != nil {
		accountID = *user.ProcessorAccountID
	} else {
		accountID, err = s.gateway.CreateAccount(ctx, user.Email)
		if err != nil {
			logger.Log.Errorw("failed to create processor account", "userID", userID, "error", err)
			return "", err
		}
		if err := s.writer.SetProcessorAccountID(ctx, userID, accountID); err != nil {
			logger.Log.Errorw("failed to persist processor account id", "userID", userID, "account_id", accountID, "error", err)
			return "", err
		}
	}

	link, err := s.gateway.CreateAccountLink(ctx, accountID, refreshURL, returnURL)
	if err != nil {
		logger.Log.Errorw("failed to create account link", "userID", userID, "account_id", accountID, "error", err)
		return "", err
	}
	return link, nil
}

// Dashboard mints a processor dashboard login link for a connected user.
func (s *AccountService) Dashboard(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.ProcessorAccountID == nil {
		return "", ErrNoProcessorAccount
	}

	link, err := s.gateway.CreateLoginLink(ctx, *user.ProcessorAccountID)
	if err != nil {
		logger.Log.Errorw("failed to create login link", "userID", userID, "error", err)
		return "", err
	}
	return link, nil
}

// Status reports whether the user's processor account may accept payments.
// Results are cached; the persisted onboarding flag is refreshed when the
// derived state changes.
func (s *AccountService) Status(ctx context.Context, userID uuid.UUID) (*models.AccountStatus, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.ProcessorAccountID == nil {
		return &models.AccountStatus{Connected: false}, nil
	}
	accountID := *user.ProcessorAccountID

	if cached, err := s.cache.Get(ctx, accountID); err == nil {
		return cached, nil
	}

	acct, err := s.gateway.RetrieveAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to retrieve processor account", "userID", userID, "account_id", accountID, "error", err)
		return nil, err
	}

	connected := acct.DetailsSubmitted
	if s.policy == StatusPolicyStrict {
		connected = acct.DetailsSubmitted && acct.ChargesEnabled
	}

	status := models.AccountStatus{
		Connected:        connected,
		DetailsSubmitted: acct.DetailsSubmitted,
		ChargesEnabled:   acct.ChargesEnabled,
	}

	if connected != user.OnboardingComplete {
		if err := s.writer.SetOnboardingComplete(ctx, userID, connected); err != nil {
			logger.Log.Errorw("failed to persist onboarding flag", "userID", userID, "error", err)
		}
	}

	if err := s.cache.Set(ctx, accountID, status); err != nil {
		logger.Log.Errorw("failed to cache account status", "account_id", accountID, "error", err)
	}

	return &status, nil
}
