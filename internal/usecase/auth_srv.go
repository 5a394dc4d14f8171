package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/mailer"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthService interface {
	RequestOTP(ctx context.Context, req *request.RequestOTPRequest) (*response.OTPRequestedResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	GoogleLogin(ctx context.Context, req *request.GoogleLoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	oauth  *oauth2.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		oauth: &oauth2.Config{
			ClientID:     config.OAuth.GoogleClientID,
			ClientSecret: config.OAuth.GoogleClientSecret,
			RedirectURL:  config.OAuth.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		log: log,
	}
}

func (s *authService) RequestOTP(ctx context.Context, req *request.RequestOTPRequest) (*response.OTPRequestedResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Respect an active lockout before issuing a new code
	latest, err := s.repo.OTP.FindLatestByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check previous OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to request code")
	}
	if latest != nil && latest.BlockedUntil != nil && latest.BlockedUntil.After(time.Now()) {
		return nil, fmt.Errorf("too many attempts, try again later")
	}

	// 3. Generate and hash the code
	code := utils.GenerateOTP(s.config.OTP.Length)
	codeHash, err := utils.HashOTP(code)
	if err != nil {
		s.log.Error("Failed to hash OTP", zap.Error(err))
		return nil, fmt.Errorf("failed to request code")
	}

	expiresAt := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:     email,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
	}

	// 4. Save, invalidating any earlier unused codes
	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to request code")
	}

	// 5. Send the code by email (async)
	go s.sendOTPEmail(email, code)

	s.log.Info("OTP requested",
		zap.String("email", email),
		zap.Time("expires_at", expiresAt))

	return &response.OTPRequestedResponse{
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Load the latest code for the email
	otp, err := s.repo.OTP.FindLatestByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to verify code")
	}
	if otp == nil || otp.IsUsed {
		return nil, fmt.Errorf("invalid or expired code")
	}

	// 3. Reject while the lockout window is open
	if otp.BlockedUntil != nil && otp.BlockedUntil.After(time.Now()) {
		return nil, fmt.Errorf("too many attempts, try again later")
	}

	// 4. Expired codes burn an attempt too
	if otp.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("invalid or expired code")
	}

	// 5. Compare against the stored hash; failures bump the counter
	if !utils.CheckOTPHash(req.Code, otp.CodeHash) {
		bumped, err := s.repo.OTP.IncrementAttempts(ctx, otp.ID,
			s.config.OTP.MaxAttempts,
			time.Duration(s.config.OTP.LockoutMinutes)*time.Minute)
		if err != nil {
			s.log.Error("Failed to record OTP attempt", zap.Error(err), zap.String("email", email))
		}
		if bumped != nil && bumped.BlockedUntil != nil && bumped.BlockedUntil.After(time.Now()) {
			return nil, fmt.Errorf("too many attempts, try again later")
		}
		return nil, fmt.Errorf("invalid or expired code")
	}

	// 6. Single use
	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		return nil, fmt.Errorf("invalid or expired code")
	}

	// 7. Find or create the account
	user, newUser, err := s.findOrCreateUser(ctx, email, "", "")
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	// 8. Open a session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in via OTP",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.Bool("new_user", newUser))

	resp := response.AuthToResponse(user, session, newUser || user.Role == nil)
	return &resp, nil
}

func (s *authService) GoogleLogin(ctx context.Context, req *request.GoogleLoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Google login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Exchange the authorization code
	token, err := s.oauth.Exchange(ctx, req.Code)
	if err != nil {
		s.log.Warn("Google code exchange failed", zap.Error(err))
		return nil, fmt.Errorf("invalid authorization code")
	}

	// 3. Fetch the profile
	info, err := s.fetchGoogleProfile(ctx, token)
	if err != nil {
		s.log.Error("Failed to fetch Google profile", zap.Error(err))
		return nil, fmt.Errorf("failed to load google profile")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google account has no email")
	}

	// 4. Find or create the account
	email := strings.ToLower(info.Email)
	user, newUser, err := s.findOrCreateUser(ctx, email, info.GivenName, info.FamilyName)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	// 5. Open a session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in via Google",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.Bool("new_user", newUser))

	resp := response.AuthToResponse(user, session, newUser || user.Role == nil)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

type googleProfile struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (s *authService) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}

	return &info, nil
}

// findOrCreateUser looks the account up by email and provisions one on
// first login. Email login counts as verification.
func (s *authService) findOrCreateUser(ctx context.Context, email, firstName, lastName string) (*entity.User, bool, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, false, fmt.Errorf("failed to find user")
	}

	if user != nil {
		if !user.EmailVerified {
			user.EmailVerified = true
			user.UpdatedAt = time.Now()
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.log.Warn("Failed to mark email verified", zap.Error(err), zap.String("user_id", user.ID.String()))
			}
		}
		return user, false, nil
	}

	username, err := s.deriveUsername(ctx, email)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	user = &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:         email,
		Username:      username,
		FirstName:     firstName,
		LastName:      lastName,
		EmailVerified: true,
		IsActive:      true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, false, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return user, true, nil
}

// deriveUsername takes the local part of the email and appends the
// first free numeric suffix when it is already taken.
func (s *authService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := strings.Split(email, "@")[0]
	base = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '.' || r == '_' {
			return r
		}
		return -1
	}, strings.ToLower(base))
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 2; ; i++ {
		existing, err := s.repo.User.FindByUsername(ctx, candidate)
		if err != nil {
			s.log.Error("Failed to check username", zap.Error(err), zap.String("username", candidate))
			return "", fmt.Errorf("failed to create account")
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) sendOTPEmail(email, code string) {
	if err := s.mail.SendOTP(email, code, s.config.OTP.ExpiryMinutes); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
	}
}
