package service_test

import (
	"context"
	"database/sql"
	"errors"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	userMocks "frontdesk/internal/domains/user/mocks"
	userModel "frontdesk/internal/domains/user/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("frontdesk-2024")
	require.NoError(t, err)

	receptionist := userModel.User{ID: 3, Username: "maria", Password: hash, Role: constant.RoleReceptionist}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(*userMocks.MockUser, *jwtMocks.MockJWT)
		want      dto.LoginResponse
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: " maria ", Password: "frontdesk-2024"},
			setupMock: func(repo *userMocks.MockUser, tokens *jwtMocks.MockJWT) {
				repo.EXPECT().FindByUsername(gomock.Any(), "maria").Return(receptionist, nil)
				tokens.EXPECT().
					GenerateTokenPair("3", "maria", constant.RoleReceptionist).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)
			},
			want: dto.LoginResponse{
				Token:    dto.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900},
				Username: "maria",
				Role:     constant.RoleReceptionist,
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "maria", Password: "frontdesk-2024"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().FindByUsername(gomock.Any(), "maria").Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "maria", Password: "guess"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().FindByUsername(gomock.Any(), "maria").Return(receptionist, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository failure",
			req:  dto.LoginRequest{Username: "maria", Password: "frontdesk-2024"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().FindByUsername(gomock.Any(), "maria").Return(userModel.User{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "token generation failure",
			req:  dto.LoginRequest{Username: "maria", Password: "frontdesk-2024"},
			setupMock: func(repo *userMocks.MockUser, tokens *jwtMocks.MockJWT) {
				repo.EXPECT().FindByUsername(gomock.Any(), "maria").Return(receptionist, nil)
				tokens.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("signing failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tokens := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, tokens)

			res, err := service.New(repo, mocks.NewOtel(), tokens).Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "refreshed",
			setupMock: func(tokens *jwtMocks.MockJWT) {
				tokens.EXPECT().RefreshTokens("refresh").Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
		},
		{
			name: "expired refresh token",
			setupMock: func(tokens *jwtMocks.MockJWT) {
				tokens.EXPECT().RefreshTokens("refresh").Return(nil, jwt.ErrExpiredToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(tokens)

			svc := service.New(userMocks.NewMockUser(ctrl), mocks.NewOtel(), tokens)
			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
				assert.Equal(t, "invalid refresh token", failure.GetMessage(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
			assert.Equal(t, "new-refresh", res.RefreshToken)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	tests := []struct {
		name     string
		user     userModel.User
		err      error
		want     dto.ProfileResponse
		wantCode int
	}{
		{
			name: "known user",
			user: userModel.User{ID: 1, Username: "admin", Email: sql.NullString{String: "admin@hotel.test", Valid: true}, Role: constant.RoleAdmin},
			want: dto.ProfileResponse{UserID: 1, Username: "admin", Email: "admin@hotel.test", Role: constant.RoleAdmin},
		},
		{
			name:     "account removed after token was issued",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository failure",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(tt.user, tt.err)

			res, err := service.New(repo, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl)).Profile(context.Background(), "admin")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
