package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid username or password"

// decoyHash is compared against when the username is unknown, so both failures cost one bcrypt round.
var decoyHash = sync.OnceValue(func() string {
	hash, _ := password.Hash("frontdesk-decoy-password")

	return hash
})

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Profile(ctx context.Context, username string) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	users  userRepo.User
	otel   otel.Otel
	tokens jwt.JWT
}

func New(users userRepo.User, otel otel.Otel, tokens jwt.JWT) Auth {
	return &serviceImpl{
		users:  users,
		otel:   otel,
		tokens: tokens,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	username := strings.TrimSpace(req.Username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return res, fmt.Errorf("failed to find user: %w", err)
	}

	hash := user.Password
	if user.ID == 0 {
		hash = decoyHash()
	}

	if err := password.Verify(req.Password, hash); err != nil || user.ID == 0 {
		log.Warn().Str("username", username).Bool("known", user.ID != 0).Msg("rejected login attempt")

		return res, failure.Unauthorized(invalidCredentials)
	}

	pair, err := s.tokens.GenerateTokenPair(strconv.FormatInt(user.ID, 10), user.Username, user.Role)
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	scope.SetAttribute("user.role", user.Role)

	return dto.LoginResponse{
		Token:    dto.NewToken(pair),
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.tokens.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token")
	}

	return dto.RefreshTokenResponse{Token: dto.NewToken(pair)}, nil
}

// Profile reloads the account so a role changed since the token was issued shows up.
func (s *serviceImpl) Profile(ctx context.Context, username string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return res, fmt.Errorf("failed to find user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("user not found")
	}

	return dto.ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email.String,
		Role:     user.Role,
	}, nil
}
