package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/users/auth/dto"
	authModel "shiftlink_backend/internals/features/users/auth/model"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*authModel.UserModel, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.UserModel, error)
	FindProfileIDs(ctx context.Context, userID uuid.UUID) (studentID, employerID *uuid.UUID, err error)
	CreateAccount(ctx context.Context, user *authModel.UserModel, student *profileModel.StudentModel, employer *profileModel.EmployerModel) error
	RevokeToken(ctx context.Context, t *authModel.RevokedTokenModel) error
	IsTokenRevoked(ctx context.Context, digest string) (bool, error)
	PurgeExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}

type AuthService struct {
	store  Store
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(store Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: store, secret: secret, ttl: ttl, now: time.Now}
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.store.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !helper.IsNotFound(err) {
		return nil, apperr.Internal("failed to check email", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("password hashing failed", err)
	}

	user := &authModel.UserModel{
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}

	var student *profileModel.StudentModel
	var employer *profileModel.EmployerModel
	switch req.Role {
	case constants.RoleStudent:
		student = &profileModel.StudentModel{
			University: req.University,
			Country:    req.Country,
			VisaType:   req.VisaType,
			Bio:        req.Bio,
		}
	case constants.RoleEmployer:
		employer = &profileModel.EmployerModel{
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
		}
	}

	if err := s.store.CreateAccount(ctx, user, student, employer); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Internal("failed to create account", err)
	}

	var studentID, employerID *uuid.UUID
	if student != nil {
		studentID = &student.ID
	}
	if employer != nil {
		employerID = &employer.ID
	}
	out := dto.ToUserResponse(user, studentID, employerID)
	return &out, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, apperr.Internal("failed to load user", err)
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("account is deactivated")
	}

	studentID, employerID, err := s.store.FindProfileIDs(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load profile", err)
	}

	actor := helperAuth.Actor{
		UserID:     user.ID,
		Role:       user.Role,
		StudentID:  studentID,
		EmployerID: employerID,
	}
	token, exp, err := helperAuth.SignAccessToken(s.secret, actor, s.ttl, s.now())
	if err != nil {
		return nil, apperr.Internal("failed to sign token", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        dto.ToUserResponse(user, studentID, employerID),
	}, nil
}

/* ==========================
   ME
========================== */

func (s *AuthService) Me(ctx context.Context, actor helperAuth.Actor) (*dto.UserResponse, error) {
	user, err := s.store.FindUserByID(ctx, actor.UserID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal("failed to load user", err)
	}
	out := dto.ToUserResponse(user, actor.StudentID, actor.EmployerID)
	return &out, nil
}

// IsActive dipakai middleware auth untuk menolak akun yang dinonaktifkan.
func (s *AuthService) IsActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsActive, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout mencabut access token sampai exp-nya lewat.
func (s *AuthService) Logout(ctx context.Context, actor helperAuth.Actor, rawToken string) error {
	_, exp, err := helperAuth.ParseAccessTokenExpiry(s.secret, rawToken)
	if err != nil {
		return apperr.Unauthorized("invalid token")
	}
	rec := &authModel.RevokedTokenModel{
		Token:     helperAuth.TokenDigest(rawToken, s.secret),
		UserID:    actor.UserID.String(),
		ExpiresAt: exp,
	}
	if err := s.store.RevokeToken(ctx, rec); err != nil {
		return apperr.Internal("failed to revoke token", err)
	}
	return nil
}

// IsRevoked dipakai middleware auth sebelum actor dipasang.
func (s *AuthService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	digest := helperAuth.TokenDigest(rawToken, s.secret)
	if digest == "" {
		return false, nil
	}
	return s.store.IsTokenRevoked(ctx, digest)
}

// PurgeRevoked dijalankan berkala dari main.
func (s *AuthService) PurgeRevoked(ctx context.Context) (int64, error) {
	return s.store.PurgeExpiredTokens(ctx, s.now())
}
